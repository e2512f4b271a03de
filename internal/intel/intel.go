// Package intel infers a company profile (size, industry, hiring focus) from
// a company name using fixed heuristics. No lookups, no network.
package intel

import (
	"regexp"
	"strings"

	"github.com/kodnest/prepkit/internal/model"
)

// knownEnterprise lists name fragments of companies classified as Enterprise.
// Matching is a case-insensitive substring check against the trimmed name.
var knownEnterprise = []string{
	"google", "amazon", "microsoft", "meta", "apple", "netflix", "flipkart",
	"walmart", "oracle", "ibm", "sap", "adobe", "salesforce", "infosys", "tcs",
	"wipro", "hcl", "cognizant", "accenture", "capgemini", "deloitte", "ey",
	"kpmg", "pwc", "mindtree", "mphasis", "ltimindtree", "tech mahindra",
	"zoho", "freshworks", "paytm", "razorpay", "phonepe", "cred", "swiggy",
	"zomato", "ola", "uber", "atlassian", "intuit", "goldman sachs",
	"morgan stanley", "jpmorgan", "barclays", "deutsche bank", "samsung",
	"qualcomm", "intel", "nvidia", "vmware", "cisco", "dell", "hp", "lenovo",
	"bytedance", "tiktok", "spotify", "twitter", "snap", "linkedin", "airbnb",
	"stripe", "shopify", "paypal", "visa", "mastercard",
}

// midSizeSuffix matches generic corporate suffixes that suggest an
// established mid-size company rather than a startup.
var midSizeSuffix = regexp.MustCompile(`(?i)tech|solutions|systems|software|labs|services|global|group|digital`)

// industryRule pairs a name pattern with the industry it implies. Rules are
// evaluated in order and the first match wins, so a name matching several
// patterns resolves to the earliest rule.
type industryRule struct {
	re       *regexp.Regexp
	industry string
}

var industryRules = []industryRule{
	{regexp.MustCompile(`(?i)bank|financ|capital|invest|pay|money`), "Financial Services"},
	{regexp.MustCompile(`(?i)health|med|pharma|care`), "Healthcare & Life Sciences"},
	{regexp.MustCompile(`(?i)ecom|shop|retail|mart|cart|store`), "E-commerce & Retail"},
	{regexp.MustCompile(`(?i)food|swiggy|zomato|delivery`), "Food & Logistics"},
	{regexp.MustCompile(`(?i)game|entertain|media|stream|spotify|netflix`), "Media & Entertainment"},
	{regexp.MustCompile(`(?i)consult|deloitte|ey|kpmg|pwc|accenture|capgemini`), "IT Consulting"},
	{regexp.MustCompile(`(?i)google|microsoft|meta|apple|amazon|oracle|adobe|sap`), "Big Tech / Product"},
}

const defaultIndustry = "Technology Services"

// hiringFocus narratives, fixed per company size.
var hiringFocus = map[string]string{
	model.SizeEnterprise: "Structured process: online aptitude + DSA coding rounds, followed by core computer science fundamentals, project walkthrough, and HR. Emphasis on algorithmic thinking and scalable problem-solving.",
	model.SizeMidSize:    "Balanced process: technical coding round, stack-specific discussion, and cultural fit. Values both fundamentals and practical experience.",
	model.SizeStartup:    "Practical and fast-paced: focus on real-world problem solving, stack depth, shipping speed, and cultural alignment. Less emphasis on theoretical CS, more on what you can build.",
}

// Infer derives company intel from the company name. Returns nil when the
// name is blank or whitespace-only.
func Infer(company string) *model.CompanyIntel {
	cl := strings.ToLower(strings.TrimSpace(company))
	if cl == "" {
		return nil
	}

	size := model.SizeStartup
	if containsAny(cl, knownEnterprise) {
		size = model.SizeEnterprise
	} else if len(cl) > 3 && midSizeSuffix.MatchString(cl) {
		size = model.SizeMidSize
	}

	industry := defaultIndustry
	for _, rule := range industryRules {
		if rule.re.MatchString(cl) {
			industry = rule.industry
			break
		}
	}

	return &model.CompanyIntel{
		Company:     strings.TrimSpace(company),
		Size:        size,
		Industry:    industry,
		HiringFocus: hiringFocus[size],
	}
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
