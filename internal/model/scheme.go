package model

// SchemeCategory groups government schemes by the kind of support offered.
type SchemeCategory string

const (
	SchemeCategoryDirectBenefit SchemeCategory = "direct_benefit"
	SchemeCategoryInsurance     SchemeCategory = "insurance"
	SchemeCategoryCredit        SchemeCategory = "credit"
)

// Scheme is one entry in the government scheme directory.
type Scheme struct {
	ID          int            `json:"id" yaml:"id"`
	Category    SchemeCategory `json:"category" yaml:"category"`
	Amount      string         `json:"amount" yaml:"amount"`
	Title       Localized      `json:"title" yaml:"title"`
	Description Localized      `json:"description" yaml:"description"`
	Eligibility LocalizedList  `json:"eligibility" yaml:"eligibility"`
}

// ListSchemesResponse is the response for listing schemes.
type ListSchemesResponse struct {
	Schemes []Scheme `json:"schemes"`
	Total   int      `json:"total"`
}
