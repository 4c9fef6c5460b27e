package resume

import (
	"fmt"
	"strings"
)

const analysisSystemPrompt = `You are a career advisor reviewing a candidate's resume. Extract the candidate's skills, strengths, and gaps, and suggest roles they are well positioned for. Be factual and base every claim on the resume text.`

func buildAnalysisUserMessage(resumeText string) string {
	var b strings.Builder

	b.WriteString("Resume:\n")
	b.WriteString(resumeText)

	b.WriteString(`

Instructions:
Analyze this resume and produce:
1. A 2-4 sentence professional summary of the candidate.
2. The skills evident from the resume. For each skill assign a level: "beginner", "intermediate", or "advanced". Only include skills the resume supports.
3. Up to five strengths, each one short sentence.
4. Up to five gaps the candidate should address, each one short sentence.
5. Up to five role titles the candidate is a good fit for, ordered best first.

Do not invent experience the resume does not mention.`)

	return b.String()
}

func truncateResume(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	return fmt.Sprintf("%s\n[truncated]", text[:limit])
}
