package entity

// service input model
type LoanQuoteInput struct {
	Principal  float64
	AnnualRate float64
	TermMonths int
}

// controller model
type LoanQuoteOutputModel struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annualRate"`
	TermMonths     int     `json:"termMonths"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
}
