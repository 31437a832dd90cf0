package http

import (
	"net/http"
	"strconv"

	loanDomain "loan-pricing-approval/internal/domain/loan"
	usecase "loan-pricing-approval/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *usecase.Usecase }

func NewLoanHandler(uc *usecase.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

// POST /api/loans
func (h *LoanHandler) Create(c echo.Context) error {
	var req usecase.CreateLoanInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	actorID, _ := principal(c)
	dto, err := h.uc.Create(c.Request().Context(), req, actorID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// GET /api/loans?page&size&status&my
func (h *LoanHandler) List(c echo.Context) error {
	page, size := pageParams(c)

	var status *loanDomain.Status
	if s := c.QueryParam("status"); s != "" {
		st := loanDomain.Status(s)
		if !st.Valid() {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status " + s})
		}
		status = &st
	}

	createdBy := ""
	if c.QueryParam("my") == "true" {
		createdBy, _ = principal(c)
	}

	dto, err := h.uc.List(c.Request().Context(), page, size, status, createdBy)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// GET /api/loans/:id
func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// PUT /api/loans/:id
func (h *LoanHandler) Update(c echo.Context) error {
	var req usecase.UpdateLoanInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	actorID, role := principal(c)
	dto, err := h.uc.Update(c.Request().Context(), c.Param("id"), req, actorID, role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// PATCH /api/loans/:id/status
func (h *LoanHandler) ChangeStatus(c echo.Context) error {
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

func pageParams(c echo.Context) (page, size int) {
	page, size = 0, 10
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page = n
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}
	return page, size
}
