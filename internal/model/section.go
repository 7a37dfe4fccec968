package model

// SectionID identifies one of the fixed memo sections
type SectionID string

const (
	SectionExecutiveSummary         SectionID = "executive_summary"
	SectionCompanyInformation       SectionID = "company_information"
	SectionStartupStage             SectionID = "startup_stage"
	SectionDealSummary              SectionID = "deal_summary"
	SectionManagementTeam           SectionID = "management_team"
	SectionKeyMetrics               SectionID = "key_metrics"
	SectionCustomerProblem          SectionID = "customer_problem"
	SectionProductServiceSummary    SectionID = "product_service_summary"
	SectionInvestmentThemes         SectionID = "investment_themes"
	SectionMarketOverview           SectionID = "market_overview"
	SectionListOfCompetitors        SectionID = "list_of_competitors"
	SectionCompetitiveAdvantage     SectionID = "competitive_advantage_summary"
	SectionInvestmentConsiderations SectionID = "investment_considerations_risk_factors"
)

// Sections returns all memo sections in canonical memo order.
// Every segmentation and verification pass covers exactly this set.
func Sections() []SectionID {
	return []SectionID{
		SectionExecutiveSummary,
		SectionCompanyInformation,
		SectionStartupStage,
		SectionDealSummary,
		SectionManagementTeam,
		SectionKeyMetrics,
		SectionCustomerProblem,
		SectionProductServiceSummary,
		SectionInvestmentThemes,
		SectionMarketOverview,
		SectionListOfCompetitors,
		SectionCompetitiveAdvantage,
		SectionInvestmentConsiderations,
	}
}
