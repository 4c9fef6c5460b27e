package career

// defaultRoles defines the production role catalogue.
// 8 roles covering the main tracks the assessment steers toward.
// Criteria vectors reference the shared trait-question IDs; each role
// covers only the traits that differentiate it.
func defaultRoles() []RoleProfile {
	return []RoleProfile{
		{
			ID:          "software-engineer",
			Title:       "Software Engineer",
			Description: "Designs, builds, and maintains software systems across the stack.",
			Salary:      SalaryRange{Min: 70000, Max: 160000, Avg: 110000, Currency: "USD"},
			Demand:      92,
			Growth:      22.0,
			TechnicalSkills:    []string{"data structures", "system design", "testing", "debugging"},
			InterpersonalSkill: []string{"collaboration", "code review communication"},
			Tooling:            []string{"Git", "Docker", "CI/CD", "Linux"},
			Experience:         ExperienceEntry,
			Education:          []string{"CS degree", "bootcamp", "self-taught"},
			Employers:          []string{"Google", "Stripe", "Shopify"},
			Industries:         []string{"technology", "finance", "healthcare"},
			Remote:             true,
			Criteria: map[string]int{
				"problem-solving":    6,
				"analytical":         5,
				"attention-to-detail": 5,
				"learning-agility":   5,
			},
		},
		{
			ID:          "data-scientist",
			Title:       "Data Scientist",
			Description: "Extracts insight from data with statistics and machine learning.",
			Salary:      SalaryRange{Min: 85000, Max: 170000, Avg: 120000, Currency: "USD"},
			Demand:      88,
			Growth:      35.0,
			TechnicalSkills:    []string{"statistics", "machine learning", "data wrangling", "SQL"},
			InterpersonalSkill: []string{"storytelling with data", "stakeholder communication"},
			Tooling:            []string{"Python", "pandas", "Jupyter", "Spark"},
			Experience:         ExperienceMid,
			Education:          []string{"STEM degree", "masters preferred"},
			Employers:          []string{"Netflix", "Airbnb", "Meta"},
			Industries:         []string{"technology", "retail", "insurance"},
			Remote:             true,
			Criteria: map[string]int{
				"analytical":      6,
				"problem-solving": 5,
				"curiosity":       5,
				"communication":   4,
			},
		},
		{
			ID:          "product-manager",
			Title:       "Product Manager",
			Description: "Owns product direction, balancing user needs, business goals, and delivery.",
			Salary:      SalaryRange{Min: 90000, Max: 180000, Avg: 125000, Currency: "USD"},
			Demand:      80,
			Growth:      19.0,
			TechnicalSkills:    []string{"roadmapping", "market analysis", "metrics definition"},
			InterpersonalSkill: []string{"negotiation", "cross-team alignment", "presentation"},
			Tooling:            []string{"Jira", "Figma", "Amplitude"},
			Experience:         ExperienceMid,
			Education:          []string{"any degree", "MBA optional"},
			Employers:          []string{"Atlassian", "Microsoft", "Spotify"},
			Industries:         []string{"technology", "media", "e-commerce"},
			Remote:             true,
			Criteria: map[string]int{
				"leadership":      6,
				"communication":   6,
				"decision-making": 5,
				"empathy":         4,
			},
		},
		{
			ID:          "ux-designer",
			Title:       "UX Designer",
			Description: "Shapes how products look, feel, and behave for the people using them.",
			Salary:      SalaryRange{Min: 65000, Max: 140000, Avg: 95000, Currency: "USD"},
			Demand:      74,
			Growth:      16.0,
			TechnicalSkills:    []string{"interaction design", "prototyping", "usability testing"},
			InterpersonalSkill: []string{"user interviews", "design critique"},
			Tooling:            []string{"Figma", "Sketch", "Maze"},
			Experience:         ExperienceEntry,
			Education:          []string{"design degree", "portfolio-based"},
			Employers:          []string{"Adobe", "Canva", "IBM"},
			Industries:         []string{"technology", "agencies", "public sector"},
			Remote:             true,
			Criteria: map[string]int{
				"creativity": 6,
				"empathy":    6,
				"attention-to-detail": 5,
				"communication":       4,
			},
		},
		{
			ID:          "devops-engineer",
			Title:       "DevOps Engineer",
			Description: "Keeps delivery pipelines and production infrastructure fast and reliable.",
			Salary:      SalaryRange{Min: 80000, Max: 165000, Avg: 115000, Currency: "USD"},
			Demand:      85,
			Growth:      25.0,
			TechnicalSkills:    []string{"infrastructure as code", "observability", "incident response"},
			InterpersonalSkill: []string{"blameless postmortems", "on-call coordination"},
			Tooling:            []string{"Kubernetes", "Terraform", "Prometheus", "AWS"},
			Experience:         ExperienceMid,
			Education:          []string{"CS degree", "certifications"},
			Employers:          []string{"Amazon", "Datadog", "Cloudflare"},
			Industries:         []string{"technology", "finance", "telecom"},
			Remote:             true,
			Criteria: map[string]int{
				"problem-solving":     6,
				"attention-to-detail": 6,
				"adaptability":        5,
				"analytical":          4,
			},
		},
		{
			ID:          "cybersecurity-analyst",
			Title:       "Cybersecurity Analyst",
			Description: "Monitors, detects, and responds to threats against systems and data.",
			Salary:      SalaryRange{Min: 75000, Max: 150000, Avg: 105000, Currency: "USD"},
			Demand:      90,
			Growth:      32.0,
			TechnicalSkills:    []string{"threat detection", "network security", "forensics"},
			InterpersonalSkill: []string{"incident communication", "security awareness training"},
			Tooling:            []string{"Splunk", "Wireshark", "Nessus"},
			Experience:         ExperienceEntry,
			Education:          []string{"IT degree", "Security+ certification"},
			Employers:          []string{"CrowdStrike", "Deloitte", "government agencies"},
			Industries:         []string{"finance", "defense", "healthcare"},
			Remote:             false,
			Criteria: map[string]int{
				"attention-to-detail": 6,
				"analytical":          5,
				"integrity":           6,
				"adaptability":        4,
			},
		},
		{
			ID:          "marketing-manager",
			Title:       "Marketing Manager",
			Description: "Plans and runs campaigns that grow audience and revenue.",
			Salary:      SalaryRange{Min: 60000, Max: 130000, Avg: 90000, Currency: "USD"},
			Demand:      68,
			Growth:      10.0,
			TechnicalSkills:    []string{"campaign analytics", "SEO", "content strategy"},
			InterpersonalSkill: []string{"persuasion", "brand storytelling", "team leadership"},
			Tooling:            []string{"Google Analytics", "HubSpot", "Canva"},
			Experience:         ExperienceMid,
			Education:          []string{"marketing degree", "any degree with experience"},
			Employers:          []string{"Unilever", "HubSpot", "agencies"},
			Industries:         []string{"consumer goods", "media", "e-commerce"},
			Remote:             true,
			Criteria: map[string]int{
				"creativity":    5,
				"communication": 6,
				"leadership":    5,
				"adaptability":  4,
			},
		},
		{
			ID:          "business-analyst",
			Title:       "Business Analyst",
			Description: "Bridges business problems and technical solutions with analysis and process design.",
			Salary:      SalaryRange{Min: 60000, Max: 125000, Avg: 85000, Currency: "USD"},
			Demand:      72,
			Growth:      11.0,
			TechnicalSkills:    []string{"requirements analysis", "process modeling", "SQL"},
			InterpersonalSkill: []string{"stakeholder interviews", "workshop facilitation"},
			Tooling:            []string{"Excel", "Tableau", "Visio"},
			Experience:         ExperienceEntry,
			Education:          []string{"business degree", "any analytical degree"},
			Employers:          []string{"Accenture", "banks", "consultancies"},
			Industries:         []string{"consulting", "finance", "logistics"},
			Remote:             true,
			Criteria: map[string]int{
				"analytical":      6,
				"communication":   5,
				"decision-making": 4,
				"teamwork":        4,
			},
		},
	}
}
