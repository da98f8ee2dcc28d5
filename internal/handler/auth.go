package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Autenticar usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.TokenEnvelope
// @Failure 400 {object} apierror.Body
// @Failure 401 {object} apierror.Body
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	res, err := h.svc.AuthenticateUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenEnvelope{
		StatusCode: http.StatusOK,
		Token:      res.Token,
		Message:    "Usuário autenticado com sucesso",
		Data:       res.User,
	})
}
