package loan

import (
	"errors"
	"time"
)

type Status string

const (
	StatusDraft       Status = "DRAFT"
	StatusSubmitted   Status = "SUBMITTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal statuses admit no further transitions.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Action labels recorded in the audit trail. Status changes use
// "STATUS_" + target status.
const (
	ActionSavedDraft = "SAVED_DRAFT"
	ActionSubmitted  = "SUBMITTED"
	ActionUpdated    = "UPDATED"
	ActionDeleted    = "DELETED"

	statusActionPrefix = "STATUS_"
)

func StatusAction(to Status) string { return statusActionPrefix + string(to) }

var (
	ErrNotFound          = errors.New("loan not found")
	ErrDeleted           = errors.New("loan is deleted")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("invalid loan state")
	ErrValidation        = errors.New("loan not ready for submission")
	ErrVersionConflict   = errors.New("loan was modified concurrently")
)

// Financials is the borrower snapshot required before submission.
// Nullable as a whole; revenue and ebitda are pointers so "missing"
// is distinguishable from zero.
type Financials struct {
	Revenue *int64 `json:"revenue"`
	Ebitda  *int64 `json:"ebitda"`
	Rating  string `json:"rating"`
}

// Action is one immutable audit entry. Entries are only ever appended,
// in operation order, and persist atomically with the loan row.
type Action struct {
	By        string    `json:"by"`
	Action    string    `json:"action"`
	Comments  string    `json:"comments,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Loan is the aggregate the workflow service operates on. Financials and
// Actions are stored JSON-serialized in the loan row so every mutation is
// a single atomic write, like the document store this schema descends from.
type Loan struct {
	ID                   uint64      `gorm:"primaryKey;column:id" json:"-"`
	LoanID               string      `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	ClientName           string      `gorm:"size:255" json:"client_name"`
	LoanType             string      `gorm:"size:64" json:"loan_type"`
	RequestedAmount      *int64      `json:"requested_amount"`
	ProposedInterestRate *float64    `gorm:"type:decimal(6,2)" json:"proposed_interest_rate"`
	TenureMonths         *int        `json:"tenure_months"`
	Financials           *Financials `gorm:"serializer:json;type:text" json:"financials"`
	Status               Status      `gorm:"size:16;index:idx_loans_status" json:"status"`
	SanctionedAmount     *int64      `json:"sanctioned_amount"`
	ApprovedInterestRate *float64    `gorm:"type:decimal(6,2)" json:"approved_interest_rate"`
	CreatedBy            string      `gorm:"size:32;index:idx_loans_created_by" json:"created_by"`
	UpdatedBy            string      `gorm:"size:32" json:"updated_by"`
	ApprovedBy           string      `gorm:"size:32" json:"approved_by"`
	ApprovedAt           *time.Time  `json:"approved_at"`
	Actions              []Action    `gorm:"serializer:json;type:text" json:"actions"`
	Version              uint64      `json:"-"`
	CreatedAt            time.Time   `gorm:"autoCreateTime;index:idx_loans_created_at" json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
	Deleted              bool        `json:"deleted"`
	DeletedAt            *time.Time  `json:"-"`
}

func (Loan) TableName() string { return "loans" }

// AppendAction adds one audit entry at the end of the log.
func (l *Loan) AppendAction(by, action, comments string, at time.Time) {
	l.Actions = append(l.Actions, Action{By: by, Action: action, Comments: comments, Timestamp: at})
}
