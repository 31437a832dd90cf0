package http

import (
	"errors"
	"net/http"

	loanDomain "loan-pricing-approval/internal/domain/loan"
	userDomain "loan-pricing-approval/internal/domain/user"
	"loan-pricing-approval/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

// principal reads the authenticated actor set by the JWT middleware.
func principal(c echo.Context) (actorID string, role userDomain.Role) {
	actorID, _ = c.Get(middleware.CtxUserID).(string)
	r, _ := c.Get(middleware.CtxRole).(string)
	return actorID, userDomain.Role(r)
}

// writeDomainError maps domain errors onto HTTP responses. Soft-deleted
// loans are gone; conflicts cover transition, state and version failures.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound), errors.Is(err, userDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrDeleted):
		return c.JSON(http.StatusGone, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrInvalidState),
		errors.Is(err, loanDomain.ErrVersionConflict),
		errors.Is(err, userDomain.ErrEmailExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, userDomain.ErrBadCredentials), errors.Is(err, userDomain.ErrInactive):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Errorf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
