package http

import (
	"net/http"

	usecase "loan-pricing-approval/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

// AdminUserHandler serves account management. Guarded by RequireRole(ADMIN).
type AdminUserHandler struct{ uc *usecase.Usecase }

func NewAdminUserHandler(uc *usecase.Usecase) *AdminUserHandler { return &AdminUserHandler{uc: uc} }

// GET /api/admin/users
func (h *AdminUserHandler) List(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// POST /api/admin/users
func (h *AdminUserHandler) Create(c echo.Context) error {
	var req usecase.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// PUT /api/admin/users/:id/status
func (h *AdminUserHandler) SetActive(c echo.Context) error {
	var req usecase.SetActiveInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.SetActive(c.Request().Context(), c.Param("id"), *req.Active)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
