package mysql

import (
	"context"
	"errors"

	loanDomain "loan-pricing-approval/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

// Save writes the loan back with an optimistic version check: the update
// only lands if the stored version still matches the one the loan was
// loaded with. A lost race surfaces as ErrVersionConflict and the caller's
// in-memory version is left untouched.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	prev := l.Version
	l.Version = prev + 1

	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ? AND version = ?", l.ID, prev).
		Select("*").
		Omit("id", "created_at").
		Updates(l)
	if res.Error != nil {
		l.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		l.Version = prev
		return loanDomain.ErrVersionConflict
	}
	return nil
}

func (r *LoanRepository) FindPage(ctx context.Context, f loanDomain.Filter, p loanDomain.PageRequest) (*loanDomain.Page, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("deleted = ?", false)

	// creator filter wins; at most one filter applies
	if f.CreatedBy != "" {
		q = q.Where("created_by = ?", f.CreatedBy)
	} else if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []loanDomain.Loan
	err := q.Order("created_at DESC, id DESC").
		Limit(p.Size).
		Offset(p.Page * p.Size).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if p.Size > 0 {
		totalPages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return &loanDomain.Page{
		Content:       rows,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          p.Page,
		Size:          p.Size,
	}, nil
}
