package http

import (
	"net/http"

	loanDomain "loan-pricing-approval/internal/domain/loan"
	usecase "loan-pricing-approval/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

// AdminLoanHandler serves the admin-only loan surface: the unscoped list,
// status decisions and soft deletes. Routes are guarded by RequireRole(ADMIN).
type AdminLoanHandler struct{ uc *usecase.Usecase }

func NewAdminLoanHandler(uc *usecase.Usecase) *AdminLoanHandler { return &AdminLoanHandler{uc: uc} }

// GET /api/admin/loans?page&size&status
func (h *AdminLoanHandler) List(c echo.Context) error {
	page, size := pageParams(c)

	var status *loanDomain.Status
	if s := c.QueryParam("status"); s != "" {
		st := loanDomain.Status(s)
		if !st.Valid() {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status " + s})
		}
		status = &st
	}

	dto, err := h.uc.List(c.Request().Context(), page, size, status, "")
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// PATCH /api/admin/loans/:id/status
func (h *AdminLoanHandler) ChangeStatus(c echo.Context) error {
	var req usecase.ChangeStatusInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	actorID, role := principal(c)
	dto, err := h.uc.ChangeStatus(c.Request().Context(), c.Param("id"), req, actorID, role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// DELETE /api/admin/loans/:id
func (h *AdminLoanHandler) Delete(c echo.Context) error {
	actorID, _ := principal(c)
	if err := h.uc.SoftDelete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
