// Package taxonomy defines the fixed set of skill categories, their display
// labels, and the lowercase keyword patterns used to detect them in job
// descriptions.
package taxonomy

// Category is one of the seven fixed topic buckets used to classify JD keywords.
type Category string

const (
	CoreCS    Category = "coreCS"
	Languages Category = "languages"
	Web       Category = "web"
	Data      Category = "data"
	Cloud     Category = "cloud"
	Testing   Category = "testing"
	Other     Category = "other"
)

// Categories is the canonical iteration order. Callers must range over this
// slice rather than over a map, so output order is stable.
var Categories = []Category{CoreCS, Languages, Web, Data, Cloud, Testing, Other}

// labels maps each category to its human display label.
var labels = map[Category]string{
	CoreCS:    "Core CS",
	Languages: "Languages",
	Web:       "Web",
	Data:      "Data",
	Cloud:     "Cloud/DevOps",
	Testing:   "Testing",
	Other:     "General",
}

// Label returns the display label for a category. Unknown categories fall
// back to the General label.
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return labels[Other]
}

// FromLabel maps a display label (as written by older persisted records) back
// to its canonical category. The second return is false for unknown labels.
func FromLabel(label string) (Category, bool) {
	for c, l := range labels {
		if l == label {
			return c, true
		}
	}
	return "", false
}

// Keywords holds the lowercase keyword/phrase patterns per category. Multi-word
// phrases match across arbitrary whitespace; matching is whole-word only.
// Other has no keywords of its own — it is populated by the fallback path.
var Keywords = map[Category][]string{
	CoreCS: {
		"dsa", "data structures", "algorithms", "oops", "oop", "object oriented",
		"dbms", "database management", "os", "operating system", "networks",
		"networking", "computer networks", "system design",
	},
	Languages: {
		"java", "python", "javascript", "typescript", "c++", "c#", "golang", "go",
		"ruby", "kotlin", "swift", "scala", "rust", "php",
	},
	Web: {
		"react", "reactjs", "next.js", "nextjs", "angular", "vue", "vuejs",
		"node.js", "nodejs", "express", "expressjs", "rest", "restful", "graphql",
		"html", "css", "tailwind", "django", "flask", "spring", "spring boot",
	},
	Data: {
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis",
		"elasticsearch", "firebase", "dynamodb", "cassandra", "oracle", "sqlite",
	},
	Cloud: {
		"aws", "amazon web services", "azure", "gcp", "google cloud", "docker",
		"kubernetes", "k8s", "ci/cd", "cicd", "jenkins", "terraform", "ansible",
		"linux", "nginx", "devops", "microservices", "serverless",
	},
	Testing: {
		"selenium", "cypress", "playwright", "junit", "pytest", "jest", "mocha",
		"testing", "unit test", "integration test", "tdd", "bdd",
		"automation testing",
	},
}

// FallbackSkills is assigned to Other when a JD yields no keyword match in any
// category, so an extraction result is never entirely empty.
var FallbackSkills = []string{
	"programming fundamentals",
	"problem solving",
	"aptitude",
	"communication",
}
