package http

import (
	"net/http"

	usecase "loan-pricing-approval/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *usecase.Usecase }

func NewAuthHandler(uc *usecase.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	actorID, _ := principal(c)
	dto, err := h.uc.CurrentUser(c.Request().Context(), actorID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
