package career

import (
	"fmt"
	"strings"
)

// demandTier converts a match percentage into its display label. The tier
// is presentation only and never feeds back into scoring.
func demandTier(matchPercent int) string {
	switch {
	case matchPercent > 80:
		return "extremely high"
	case matchPercent > 60:
		return "high"
	default:
		return "moderate"
	}
}

// buildLearningPath returns the fixed 4-step route into a role.
func buildLearningPath(role RoleProfile) []string {
	return []string{
		fmt.Sprintf("Earn an industry-recognized certification relevant to %s", role.Title),
		fmt.Sprintf("Build 2-3 portfolio projects that demonstrate %s skills", role.Title),
		"Network with professionals in the field through meetups and online communities",
		fmt.Sprintf("Apply for entry-level or internship positions as a %s", role.Title),
	}
}

// buildMarketInsights builds the 3 market sentences from the role's
// static growth and salary figures plus the demand tier label.
func buildMarketInsights(role RoleProfile, tier string) []string {
	return []string{
		fmt.Sprintf("Demand for this role is %s based on your profile fit", tier),
		fmt.Sprintf("The field is growing at %.1f%% annually", role.Growth),
		fmt.Sprintf("Average compensation is %s %d per year", role.Salary.Currency, role.Salary.Avg),
	}
}

// traitDisplayName turns a trait-question ID into readable text, e.g.
// "problem-solving" -> "problem solving".
func traitDisplayName(trait string) string {
	return strings.ReplaceAll(trait, "-", " ")
}
