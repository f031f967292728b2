package service

import (
	"math"

	"dealership-api/internal/entity"
)

type LoanService struct{}

func NewLoanService() *LoanService {
	return &LoanService{}
}

// Quote computes a fixed monthly payment over the loan term. A zero rate
// degenerates to straight division of the principal.
func (s *LoanService) Quote(input *entity.LoanQuoteInput) (*entity.LoanQuoteOutputModel, error) {
	if input.Principal <= 0 || input.TermMonths <= 0 || input.AnnualRate < 0 {
		return nil, ErrInvalidLoanTerms
	}

	monthlyRate := input.AnnualRate / 100 / 12
	n := float64(input.TermMonths)

	var monthly float64
	if monthlyRate == 0 {
		monthly = input.Principal / n
	} else {
		factor := math.Pow(1+monthlyRate, n)
		monthly = input.Principal * monthlyRate * factor / (factor - 1)
	}

	monthly = roundCents(monthly)
	total := roundCents(monthly * n)

	return &entity.LoanQuoteOutputModel{
		Principal:      input.Principal,
		AnnualRate:     input.AnnualRate,
		TermMonths:     input.TermMonths,
		MonthlyPayment: monthly,
		TotalInterest:  roundCents(total - input.Principal),
		TotalCost:      total,
	}, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
