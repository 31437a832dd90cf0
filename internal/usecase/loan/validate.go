package loan

import (
	"fmt"

	domain "loan-pricing-approval/internal/domain/loan"
)

// validateForSubmit gates a loan leaving DRAFT. Fails fast on the first
// violated rule; rules are checked in a fixed order.
func validateForSubmit(l *domain.Loan) error {
	if l.ClientName == "" {
		return fmt.Errorf("%w: client name required", domain.ErrValidation)
	}
	if l.LoanType == "" {
		return fmt.Errorf("%w: loan type required", domain.ErrValidation)
	}
	if l.RequestedAmount == nil || *l.RequestedAmount <= 0 {
		return fmt.Errorf("%w: requested amount required", domain.ErrValidation)
	}
	if l.TenureMonths == nil || *l.TenureMonths <= 0 {
		return fmt.Errorf("%w: tenure required", domain.ErrValidation)
	}
	if l.Financials == nil {
		return fmt.Errorf("%w: financials required", domain.ErrValidation)
	}
	if l.Financials.Revenue == nil {
		return fmt.Errorf("%w: revenue required", domain.ErrValidation)
	}
	if l.Financials.Ebitda == nil {
		return fmt.Errorf("%w: ebitda required", domain.ErrValidation)
	}
	if l.Financials.Rating == "" {
		return fmt.Errorf("%w: rating required", domain.ErrValidation)
	}
	return nil
}
