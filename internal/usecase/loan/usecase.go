package loan

import (
	"context"
	"time"

	domain "loan-pricing-approval/internal/domain/loan"
	"loan-pricing-approval/internal/domain/user"
	"loan-pricing-approval/pkg/id"
)

// Usecase is the loan workflow service. It owns every Loan mutation:
// create, update, status change, soft delete. Each operation appends
// exactly one audit action and persists entity plus log in one write.
type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Create builds a new loan in DRAFT, or validates and submits it right
// away when the request's intent is SUBMIT. The proposed interest rate is
// priced at submission time. Nothing is persisted when validation fails.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput, actorID string) (*LoanDTO, error) {
	now := time.Now().UTC()

	l := &domain.Loan{
		LoanID:          id.NewID32(),
		ClientName:      in.ClientName,
		LoanType:        in.LoanType,
		RequestedAmount: in.RequestedAmount,
		TenureMonths:    in.TenureMonths,
		Financials:      toFinancials(in.Financials),
		Status:          domain.StatusDraft,
		CreatedBy:       actorID,
		UpdatedBy:       actorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if in.Action == ActionSubmit {
		if err := validateForSubmit(l); err != nil {
			return nil, err
		}
		l.Status = domain.StatusSubmitted
		rate := Price(*l.RequestedAmount, l.Financials.Rating)
		l.ProposedInterestRate = &rate
		l.AppendAction(actorID, domain.ActionSubmitted, "", now)
	} else {
		l.AppendAction(actorID, domain.ActionSavedDraft, "", now)
	}

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Update rewrites the editable fields of a loan. A USER may only touch
// loans still in DRAFT; an ADMIN may also set the sanctioned amount and
// approved interest rate, with no status gate (intentionally permissive).
func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateLoanInput, actorID string, role user.Role) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.Deleted {
		return nil, domain.ErrDeleted
	}
	if role == user.RoleUser && l.Status != domain.StatusDraft {
		return nil, domain.ErrInvalidState
	}

	l.ClientName = in.ClientName
	l.LoanType = in.LoanType
	l.RequestedAmount = in.RequestedAmount
	l.TenureMonths = in.TenureMonths
	l.Financials = toFinancials(in.Financials)

	if role == user.RoleAdmin {
		l.SanctionedAmount = in.SanctionedAmount
		l.ApprovedInterestRate = in.ApprovedInterestRate
	}

	now := time.Now().UTC()
	l.UpdatedBy = actorID
	l.UpdatedAt = now
	l.AppendAction(actorID, domain.ActionUpdated, "", now)

	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// ChangeStatus applies a role-gated status transition. USER submissions
// re-run the submit validation; admin approve/reject stamps the approver.
func (u *Usecase) ChangeStatus(ctx context.Context, loanID string, in ChangeStatusInput, actorID string, role user.Role) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.Deleted {
		return nil, domain.ErrDeleted
	}

	to := domain.Status(in.Status)
	if !to.Valid() || !domain.CanTransition(role, l.Status, to) {
		return nil, domain.ErrInvalidTransition
	}

	if role == user.RoleUser && to == domain.StatusSubmitted {
		if err := validateForSubmit(l); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if to == domain.StatusApproved || to == domain.StatusRejected {
		l.ApprovedBy = actorID
		l.ApprovedAt = &now
	}

	l.Status = to
	l.UpdatedBy = actorID
	l.UpdatedAt = now
	l.AppendAction(actorID, domain.StatusAction(to), in.Comments, now)

	if err := u.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// Get returns the view projection of one loan. Soft-deleted loans are gone.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if l.Deleted {
		return nil, domain.ErrDeleted
	}
	return toDTO(l), nil
}

// List pages through non-deleted loans, newest first. A creator filter
// takes precedence over a status filter; only one is ever applied.
func (u *Usecase) List(ctx context.Context, page, size int, status *domain.Status, createdBy string) (*PagedLoans, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	var f domain.Filter
	if createdBy != "" {
		f.CreatedBy = createdBy
	} else if status != nil {
		f.Status = status
	}

	p, err := u.repo.FindPage(ctx, f, domain.PageRequest{Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	out := &PagedLoans{
		Content:       make([]LoanDTO, 0, len(p.Content)),
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		Size:          p.Size,
	}
	for i := range p.Content {
		out.Content = append(out.Content, *toDTO(&p.Content[i]))
	}
	return out, nil
}

// SoftDelete marks a loan deleted. Deleting an already-deleted loan is a
// silent no-op; no second DELETED action is appended.
func (u *Usecase) SoftDelete(ctx context.Context, loanID, actorID string) error {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return err
	}
	if l.Deleted {
		return nil
	}

	now := time.Now().UTC()
	l.Deleted = true
	l.DeletedAt = &now
	l.UpdatedBy = actorID
	l.UpdatedAt = now
	l.AppendAction(actorID, domain.ActionDeleted, "", now)

	return u.repo.Save(ctx, l)
}

func toFinancials(in *FinancialsInput) *domain.Financials {
	if in == nil {
		return nil
	}
	return &domain.Financials{Revenue: in.Revenue, Ebitda: in.Ebitda, Rating: in.Rating}
}

func toDTO(l *domain.Loan) *LoanDTO {
	var fin *FinancialsInput
	if l.Financials != nil {
		fin = &FinancialsInput{Revenue: l.Financials.Revenue, Ebitda: l.Financials.Ebitda, Rating: l.Financials.Rating}
	}
	actions := make([]ActionDTO, 0, len(l.Actions))
	for _, a := range l.Actions {
		actions = append(actions, ActionDTO{By: a.By, Action: a.Action, Comments: a.Comments, Timestamp: a.Timestamp})
	}
	return &LoanDTO{
		LoanID:               l.LoanID,
		ClientName:           l.ClientName,
		LoanType:             l.LoanType,
		RequestedAmount:      l.RequestedAmount,
		ProposedInterestRate: l.ProposedInterestRate,
		TenureMonths:         l.TenureMonths,
		Financials:           fin,
		Status:               string(l.Status),
		SanctionedAmount:     l.SanctionedAmount,
		ApprovedInterestRate: l.ApprovedInterestRate,
		CreatedBy:            l.CreatedBy,
		UpdatedBy:            l.UpdatedBy,
		ApprovedBy:           l.ApprovedBy,
		ApprovedAt:           l.ApprovedAt,
		Actions:              actions,
		Deleted:              l.Deleted,
		CreatedAt:            l.CreatedAt,
	}
}
