package loan

import "loan-pricing-approval/internal/domain/user"

type transition struct {
	Role user.Role
	From Status
	To   Status
}

// allowedTransitions is the full legal-transition set, keyed by
// (role, from, to). Anything not listed is denied. USER may only submit
// a draft; ADMIN may pull any non-terminal loan into review and decide
// loans under review.
var allowedTransitions = map[transition]bool{
	{user.RoleUser, StatusDraft, StatusSubmitted}: true,

	{user.RoleAdmin, StatusDraft, StatusUnderReview}:       true,
	{user.RoleAdmin, StatusSubmitted, StatusUnderReview}:   true,
	{user.RoleAdmin, StatusUnderReview, StatusUnderReview}: true,
	{user.RoleAdmin, StatusUnderReview, StatusApproved}:    true,
	{user.RoleAdmin, StatusUnderReview, StatusRejected}:    true,
}

// CanTransition reports whether role may move a loan from one status to
// another. It only covers status legality; submission validation and the
// deleted check belong to the caller.
func CanTransition(role user.Role, from, to Status) bool {
	return allowedTransitions[transition{Role: role, From: from, To: to}]
}
