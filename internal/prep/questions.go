package prep

import (
	"math/rand"

	"github.com/kodnest/prepkit/internal/model"
	"github.com/kodnest/prepkit/internal/taxonomy"
)

// maxQuestions caps the question set per analysis.
const maxQuestions = 10

// perCategory caps how many questions one category contributes before the
// general fill.
const perCategory = 3

// questionBank holds the fixed pool per category. The Other bank doubles as
// the general fill pool.
var questionBank = map[taxonomy.Category][]string{
	taxonomy.CoreCS: {
		"Explain the difference between process and thread.",
		"What is deadlock and how can it be prevented?",
		"Explain normalization forms in DBMS with examples.",
		"What are ACID properties in databases?",
		"Describe how DNS resolution works step by step.",
		"What is virtual memory and why is it needed?",
		"Explain different CPU scheduling algorithms.",
		"What is the difference between TCP and UDP?",
	},
	taxonomy.Languages: {
		"Explain OOP principles with real-world examples.",
		"What is the difference between abstract class and interface?",
		"How does garbage collection work in your primary language?",
		"Explain method overloading vs overriding.",
		"What are generics and why are they useful?",
		"Describe exception handling best practices.",
		"What is the difference between stack and heap memory?",
	},
	taxonomy.Web: {
		"Explain the React component lifecycle.",
		"What is the virtual DOM and how does it improve performance?",
		"How do you manage state in a large React application?",
		"Explain RESTful API design principles.",
		"What is the difference between SSR and CSR?",
		"How would you optimize a slow-loading web page?",
		"Explain CORS and how to handle it.",
		"What is middleware in Express/Node.js?",
	},
	taxonomy.Data: {
		"Explain database indexing and when it helps.",
		"What is the difference between SQL and NoSQL databases?",
		"Write a query to find the second highest salary.",
		"Explain joins: INNER, LEFT, RIGHT, FULL.",
		"What is database sharding and when would you use it?",
		"Explain ACID vs BASE consistency models.",
		"How would you optimize a slow SQL query?",
	},
	taxonomy.Cloud: {
		"What is a Docker container vs a virtual machine?",
		"Explain the CI/CD pipeline you have worked with.",
		"What are the benefits of microservices architecture?",
		"How does Kubernetes orchestrate containers?",
		"Explain auto-scaling in cloud environments.",
		"What is Infrastructure as Code?",
		"Describe your experience with cloud services (AWS/Azure/GCP).",
	},
	taxonomy.Testing: {
		"What is the testing pyramid?",
		"Explain the difference between unit, integration, and e2e tests.",
		"How do you decide what to test and what to skip?",
		"What is TDD and what are its benefits?",
		"How would you test an API endpoint?",
		"Explain mocking and stubbing with examples.",
	},
	taxonomy.Other: {
		"Tell me about a challenging problem you solved.",
		"How do you approach learning a new technology?",
		"Explain a project you are most proud of.",
		"What is your approach to debugging?",
		"How do you handle tight deadlines?",
		"Describe your understanding of software development lifecycle.",
		"What data structures would you use for a search feature?",
		"How would you design a URL shortener?",
		"Explain Big O notation with examples.",
		"What motivates you to pursue this role?",
	},
}

// Questions assembles up to 10 interview questions: up to 3 from each
// populated category's shuffled bank, then a general fill from the shuffled
// Other bank, skipping questions already picked. Selection order is
// intentionally random; rng is injected so callers and tests can fix a seed.
// No question string appears twice.
func Questions(skills model.ExtractedSkills, rng *rand.Rand) []model.Question {
	var qs []model.Question
	picked := make(map[string]bool)

	for _, cat := range taxonomy.Categories {
		if !skills.Has(cat) {
			continue
		}
		shuffled := shuffledBank(cat, rng)
		for i := 0; i < perCategory && i < len(shuffled); i++ {
			if picked[shuffled[i]] {
				continue
			}
			qs = append(qs, model.Question{Category: cat.Label(), Question: shuffled[i]})
			picked[shuffled[i]] = true
		}
	}

	for _, q := range shuffledBank(taxonomy.Other, rng) {
		if len(qs) >= maxQuestions {
			break
		}
		if picked[q] {
			continue
		}
		qs = append(qs, model.Question{Category: taxonomy.Other.Label(), Question: q})
		picked[q] = true
	}

	if len(qs) > maxQuestions {
		qs = qs[:maxQuestions]
	}
	return qs
}

func shuffledBank(cat taxonomy.Category, rng *rand.Rand) []string {
	bank := questionBank[cat]
	out := append([]string(nil), bank...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
