package segment

import "memoscan/internal/model"

// canonicalHeaders maps cleaned header phrases (lower-cased, punctuation
// stripped except '&') to their section. An exact hit wins outright.
var canonicalHeaders = map[string]model.SectionID{
	"executive summary":                        model.SectionExecutiveSummary,
	"company information":                      model.SectionCompanyInformation,
	"startup stage":                            model.SectionStartupStage,
	"deal summary":                             model.SectionDealSummary,
	"management team":                          model.SectionManagementTeam,
	"key metrics":                              model.SectionKeyMetrics,
	"customer problem":                         model.SectionCustomerProblem,
	"product and service summary":              model.SectionProductServiceSummary,
	"product service summary":                  model.SectionProductServiceSummary,
	"investment themes":                        model.SectionInvestmentThemes,
	"market overview":                          model.SectionMarketOverview,
	"list of competitors":                      model.SectionListOfCompetitors,
	"competitive advantage summary":            model.SectionCompetitiveAdvantage,
	"investment considerations & risk factors": model.SectionInvestmentConsiderations,
	"investment considerations risk factors":   model.SectionInvestmentConsiderations,
}

// sectionPatterns lists alternative phrasings per section, tried when no
// exact header match is found. Longer patterns score higher, so more
// specific phrasings win ties.
var sectionPatterns = map[model.SectionID][]string{
	model.SectionExecutiveSummary: {
		`executive\s+summary`,
		`exec\s+summary`,
		`summary`,
		`overview`,
	},
	model.SectionCompanyInformation: {
		`company\s+information`,
		`company\s+overview`,
		`company\s+description`,
		`company\s+profile`,
		`about\s+the\s+company`,
	},
	model.SectionStartupStage: {
		`startup\s+stage`,
		`funding\s+stage`,
		`stage`,
		`development\s+stage`,
	},
	model.SectionDealSummary: {
		`deal\s+summary`,
		`investment\s+summary`,
		`funding\s+summary`,
		`transaction\s+summary`,
	},
	model.SectionManagementTeam: {
		`management\s+team`,
		`leadership\s+team`,
		`team`,
		`founders`,
		`key\s+personnel`,
	},
	model.SectionKeyMetrics: {
		`key\s+metrics`,
		`metrics`,
		`financial\s+metrics`,
		`performance\s+metrics`,
		`kpis?`,
	},
	model.SectionCustomerProblem: {
		`customer\s+problem`,
		`problem`,
		`customer\s+challenges`,
		`market\s+problem`,
		`pain\s+point`,
	},
	model.SectionProductServiceSummary: {
		`product\s+and\s+service\s+summary`,
		`product.*service.*summary`,
		`product\s+summary`,
		`service\s+summary`,
		`solution`,
		`offering`,
	},
	model.SectionInvestmentThemes: {
		`investment\s+themes`,
		`investment\s+thesis`,
		`thesis`,
	},
	model.SectionMarketOverview: {
		`market\s+overview`,
		`market\s+analysis`,
		`industry\s+overview`,
		`market\s+opportunity`,
	},
	model.SectionListOfCompetitors: {
		`list\s+of\s+competitors`,
		`competitors?\s+list`,
		`competitive\s+landscape`,
		`competition`,
	},
	model.SectionCompetitiveAdvantage: {
		`competitive\s+advantage\s+summary`,
		`competitive\s+advantage`,
		`differentiation`,
	},
	model.SectionInvestmentConsiderations: {
		`investment\s+considerations.*risk\s+factors`,
		`investment\s+considerations\s*[&+]\s*risk\s+factors`,
		`risk\s+factors`,
		`risks?\s+and\s+considerations?`,
	},
}

// headerIndicators are topic keywords a line must contain to be
// considered a potential header at all
var headerIndicators = []string{
	"executive", "summary", "company", "information", "startup", "stage",
	"deal", "management", "team", "metrics", "customer", "problem",
	"product", "service", "investment", "themes", "market", "overview",
	"competitors", "competitive", "advantage", "considerations", "risk", "factors",
}

// definiteHeaders are phrases that, appearing inside a body, terminate
// it early; they guard against headers missed at detection time
var definiteHeaders = []string{
	"executive summary", "company information", "startup stage",
	"deal summary", "management team", "key metrics",
	"customer problem", "product and service summary",
	"investment themes", "market overview", "list of competitors",
	"competitive advantage summary", "investment considerations",
}

// fallbackKeywords drive the keyword-density paragraph search for
// sections whose headers were never detected. Distinct from
// headerIndicators: these describe body content, not header phrasing.
var fallbackKeywords = map[model.SectionID][]string{
	model.SectionExecutiveSummary:         {"executive", "summary", "overview", "brief"},
	model.SectionCompanyInformation:       {"company", "business", "organization", "firm"},
	model.SectionStartupStage:             {"stage", "funding", "round", "series"},
	model.SectionDealSummary:              {"deal", "transaction", "investment", "funding"},
	model.SectionManagementTeam:           {"team", "management", "leadership", "founders", "ceo", "cto"},
	model.SectionKeyMetrics:               {"metrics", "kpi", "performance", "financial", "revenue"},
	model.SectionCustomerProblem:          {"problem", "challenge", "pain", "issue", "customer"},
	model.SectionProductServiceSummary:    {"product", "service", "solution", "offering"},
	model.SectionInvestmentThemes:         {"investment", "themes", "thesis", "rationale"},
	model.SectionMarketOverview:           {"market", "industry", "sector", "opportunity"},
	model.SectionListOfCompetitors:        {"competitors", "competition", "competitive"},
	model.SectionCompetitiveAdvantage:     {"advantage", "differentiation", "unique"},
	model.SectionInvestmentConsiderations: {"risk", "considerations", "factors", "challenges"},
}
