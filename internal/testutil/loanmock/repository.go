package loanmock

import (
	"context"

	domain "loan-pricing-approval/internal/domain/loan"
)

// Repo is a function-backed mock satisfying domain.Repository. Unstubbed
// methods fail loudly via the domain sentinel.
type Repo struct {
	CreateFn      func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn        func(ctx context.Context, l *domain.Loan) error
	FindPageFn    func(ctx context.Context, f domain.Filter, p domain.PageRequest) (*domain.Page, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) FindPage(ctx context.Context, f domain.Filter, p domain.PageRequest) (*domain.Page, error) {
	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, f, p)
	}
	return &domain.Page{Page: p.Page, Size: p.Size}, nil
}
