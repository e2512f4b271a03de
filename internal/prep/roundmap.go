package prep

import (
	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

// RoundMap produces the interview round sequence for the inferred company
// profile. The branch is chosen entirely by intel size (Startup when intel is
// nil); each branch has a fixed base sequence whose focus areas are extended
// by the detected skill categories. Enterprise additionally gets an SQL/data
// round inserted at index 2 when data skills are present, so the sequence
// length is 3 to 5.
func RoundMap(companyIntel *model.CompanyIntel, skills model.ExtractedSkills) []model.Round {
	size := model.SizeStartup
	if companyIntel != nil {
		size = companyIntel.Size
	}

	switch size {
	case model.SizeEnterprise:
		return enterpriseRounds(skills)
	case model.SizeMidSize:
		return midSizeRounds(skills)
	default:
		return startupRounds(skills)
	}
}

func enterpriseRounds(skills model.ExtractedSkills) []model.Round {
	r2Focus := []string{"Data structures", "Algorithms", "Problem decomposition"}
	if skills.Has(taxonomy.CoreCS) {
		r2Focus = []string{"Data structures", "Algorithms", "OS, DBMS, networking"}
	}

	r3Focus := []string{"Deep dive into projects", "Architecture choices"}
	if skills.Has(taxonomy.Web) {
		r3Focus = append(r3Focus, "Frontend/backend stack")
	}
	if skills.Has(taxonomy.Cloud) {
		r3Focus = append(r3Focus, "Cloud & DevOps experience")
	}

	rounds := []model.Round{
		{
			RoundTitle:   "Round 1: Online Assessment",
			FocusAreas:   []string{"Aptitude", "DSA coding (timed)"},
			WhyItMatters: "Screens for logical thinking and coding speed under pressure. Most enterprise companies use this as the first filter to handle high applicant volume.",
		},
		{
			RoundTitle:   "Round 2: Technical — DSA & Core CS",
			FocusAreas:   r2Focus,
			WhyItMatters: "Tests your ability to think algorithmically and apply CS fundamentals. Interviewers evaluate your approach, not just the answer.",
		},
		{
			RoundTitle:   "Round 3: Technical — Projects & Stack",
			FocusAreas:   r3Focus,
			WhyItMatters: `Validates that you can build real systems and make sound engineering decisions. Expect "why did you choose X?" style questions.`,
		},
		{
			RoundTitle:   "Round 4: HR & Managerial",
			FocusAreas:   []string{"Behavioral", "Cultural fit", "Career goals"},
			WhyItMatters: "Assesses communication, teamwork, and alignment with company values. Keep answers structured (use STAR method) and authentic.",
		},
	}

	if skills.Has(taxonomy.Data) {
		sqlRound := model.Round{
			RoundTitle:   "Round 2.5: SQL & Data",
			FocusAreas:   []string{"Live SQL queries", "Database design discussion"},
			WhyItMatters: "For data-heavy roles, companies test your ability to write efficient queries and reason about data relationships.",
		}
		rounds = append(rounds[:2], append([]model.Round{sqlRound}, rounds[2:]...)...)
	}
	return rounds
}

func midSizeRounds(skills model.ExtractedSkills) []model.Round {
	r2Focus := []string{"Primary tech stack"}
	switch {
	case skills.Has(taxonomy.Web):
		r2Focus = []string{"Web technologies", "API design"}
	case skills.Has(taxonomy.Data):
		r2Focus = []string{"Data layer", "Queries", "Schema design"}
	}

	return []model.Round{
		{
			RoundTitle:   "Round 1: Technical Screen",
			FocusAreas:   []string{"Coding", "CS fundamentals (60 min)"},
			WhyItMatters: "Combined round testing both coding fluency and foundational knowledge. Mid-size companies optimize for fewer, more comprehensive rounds.",
		},
		{
			RoundTitle:   "Round 2: Stack Deep-Dive",
			FocusAreas:   r2Focus,
			WhyItMatters: "Evaluates how deeply you understand the tools you will use daily. Be ready to explain trade-offs and real scenarios.",
		},
		{
			RoundTitle:   "Round 3: Culture + Managerial",
			FocusAreas:   []string{"Team fit", "Communication", "Growth mindset"},
			WhyItMatters: "Smaller teams mean each hire matters more. They look for adaptability, collaboration skills, and genuine interest in the domain.",
		},
	}
}

func startupRounds(skills model.ExtractedSkills) []model.Round {
	r1Focus := []string{"Small feature build", "Debug task", "Live coding"}
	if skills.Has(taxonomy.Web) {
		r1Focus = append(r1Focus, "Frontend/fullstack emphasis")
	}

	r2Focus := []string{"Architecture thinking", "Trade-offs", "Scaling"}
	if skills.Has(taxonomy.Cloud) {
		r2Focus = append(r2Focus, "Deployment strategy")
	}

	return []model.Round{
		{
			RoundTitle:   "Round 1: Practical Coding",
			FocusAreas:   r1Focus,
			WhyItMatters: "Startups value shipping speed. This round tests if you can translate requirements into working code quickly and pragmatically.",
		},
		{
			RoundTitle:   "Round 2: System & Design Discussion",
			FocusAreas:   r2Focus,
			WhyItMatters: "Even at a startup, they need engineers who think beyond code — about scale, maintainability, and system boundaries.",
		},
		{
			RoundTitle:   "Round 3: Culture Fit & Founder Chat",
			FocusAreas:   []string{"Values", "Ownership", "Ambiguity tolerance"},
			WhyItMatters: "Startup teams are small and intense. They need people who take ownership, communicate directly, and thrive with less structure.",
		},
	}
}
