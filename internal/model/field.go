package model

// FieldID identifies one of the structured company-profile fields
// extracted from the frontend and verified against the source documents.
type FieldID string

const (
	FieldCompanyName     FieldID = "company_name"
	FieldIndustry        FieldID = "industry"
	FieldLocation        FieldID = "location"
	FieldFounders        FieldID = "founders"
	FieldFounderEmail    FieldID = "founder_email"
	FieldYearFounded     FieldID = "year_founded"
	FieldFundingStage    FieldID = "funding_stage"
	FieldLatestValuation FieldID = "latest_valuation"
	FieldFundRaiseTarget FieldID = "fund_raise_target"
	FieldAmountRaised    FieldID = "amount_raised"
	FieldRevenue         FieldID = "revenue"
	FieldListOfInvestors FieldID = "list_of_investors"
	FieldLeadInvestor    FieldID = "lead_investor"
	FieldVerticals       FieldID = "verticals"
)

// Fields returns all profile fields in verification order
func Fields() []FieldID {
	return []FieldID{
		FieldCompanyName,
		FieldIndustry,
		FieldLocation,
		FieldFounders,
		FieldFounderEmail,
		FieldYearFounded,
		FieldFundingStage,
		FieldLatestValuation,
		FieldFundRaiseTarget,
		FieldAmountRaised,
		FieldRevenue,
		FieldListOfInvestors,
		FieldLeadInvestor,
		FieldVerticals,
	}
}
