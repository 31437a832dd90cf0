package loan

import "context"

// Filter narrows FindPage. CreatedBy wins over Status when both are set;
// the usecase only ever populates one of them.
type Filter struct {
	Status    *Status
	CreatedBy string
}

type PageRequest struct {
	Page int
	Size int
}

type Page struct {
	Content       []Loan
	TotalElements int64
	TotalPages    int
	Page          int
	Size          int
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	// GetByLoanID returns the row even when soft-deleted; callers decide
	// how a deleted loan is surfaced.
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// Save persists the loan with an optimistic version check and fails
	// with ErrVersionConflict when the row changed underneath.
	Save(ctx context.Context, l *Loan) error
	// FindPage lists non-deleted loans, newest first.
	FindPage(ctx context.Context, f Filter, p PageRequest) (*Page, error)
}
