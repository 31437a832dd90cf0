package loan

import "time"

// Create intent tokens carried in the request body.
const (
	ActionSave   = "SAVE"
	ActionSubmit = "SUBMIT"
)

type FinancialsInput struct {
	Revenue *int64 `json:"revenue"`
	Ebitda  *int64 `json:"ebitda"`
	Rating  string `json:"rating"`
}

type CreateLoanInput struct {
	ClientName      string           `json:"client_name"`
	LoanType        string           `json:"loan_type"`
	RequestedAmount *int64           `json:"requested_amount"`
	TenureMonths    *int             `json:"tenure_months"`
	Financials      *FinancialsInput `json:"financials"`
	Action          string           `json:"action" validate:"required,oneof=SAVE SUBMIT"`
}

type UpdateLoanInput struct {
	ClientName      string           `json:"client_name"`
	LoanType        string           `json:"loan_type"`
	RequestedAmount *int64           `json:"requested_amount"`
	TenureMonths    *int             `json:"tenure_months"`
	Financials      *FinancialsInput `json:"financials"`

	// Admin-only fields; ignored for USER callers.
	SanctionedAmount     *int64   `json:"sanctioned_amount"`
	ApprovedInterestRate *float64 `json:"approved_interest_rate"`
}

type ChangeStatusInput struct {
	Status   string `json:"status" validate:"required,oneof=DRAFT SUBMITTED UNDER_REVIEW APPROVED REJECTED"`
	Comments string `json:"comments"`
}

type ActionDTO struct {
	By        string    `json:"by"`
	Action    string    `json:"action"`
	Comments  string    `json:"comments,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type LoanDTO struct {
	LoanID               string           `json:"loan_id"`
	ClientName           string           `json:"client_name"`
	LoanType             string           `json:"loan_type"`
	RequestedAmount      *int64           `json:"requested_amount"`
	ProposedInterestRate *float64         `json:"proposed_interest_rate,omitempty"`
	TenureMonths         *int             `json:"tenure_months"`
	Financials           *FinancialsInput `json:"financials"`
	Status               string           `json:"status"`
	SanctionedAmount     *int64           `json:"sanctioned_amount,omitempty"`
	ApprovedInterestRate *float64         `json:"approved_interest_rate,omitempty"`
	CreatedBy            string           `json:"created_by"`
	UpdatedBy            string           `json:"updated_by"`
	ApprovedBy           string           `json:"approved_by,omitempty"`
	ApprovedAt           *time.Time       `json:"approved_at,omitempty"`
	Actions              []ActionDTO      `json:"actions"`
	Deleted              bool             `json:"deleted"`
	CreatedAt            time.Time        `json:"created_at"`
}

type PagedLoans struct {
	Content       []LoanDTO `json:"content"`
	TotalElements int64     `json:"total_elements"`
	TotalPages    int       `json:"total_pages"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
}
