package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/apierror"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/middleware"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/service"
)

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler { return &UsersHandler{svc: svc} }

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.NewEnvelope(status, message, data))
}

// Create godoc
// @Summary Registar usuário
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.CreateUserRequest true "Dados do usuário"
// @Success 201 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} apierror.Body
// @Failure 409 {object} apierror.Body
// @Router /users/create [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusCreated, "Usuário criado com sucesso", resp)
}

// List godoc
// @Summary Listar usuários
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=[]dto.UserResponse}
// @Failure 401 {object} apierror.Body
// @Router /users/all [get]
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.svc.GetUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Usuários encontrados", users)
}

// GetByID godoc
// @Summary Obter usuário por ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 404 {object} apierror.Body
// @Router /users/{id} [get]
func (h *UsersHandler) GetByID(c *gin.Context) {
	id, valid := userIDParam(c)
	if !valid {
		return
	}
	user, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Usuário encontrado", user)
}

// Online godoc
// @Summary Dados do usuário autenticado
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 401 {object} apierror.Body
// @Failure 404 {object} apierror.Body
// @Router /user/online [get]
func (h *UsersHandler) Online(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		_ = c.Error(apierror.Unauthorized("Usuário não autenticado"))
		return
	}
	user, err := h.svc.GetOnlineUserDetails(c.Request.Context(), claims.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Usuário online encontrado", user)
}

// Update godoc
// @Summary Atualizar dados pessoais
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param body body dto.UpdateUserRequest true "Campos a alterar"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} apierror.Body
// @Failure 404 {object} apierror.Body
// @Router /users/{id} [put]
func (h *UsersHandler) Update(c *gin.Context) {
	id, valid := userIDParam(c)
	if !valid {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Dados pessoais atualizados com sucesso", user)
}

// UpdatePassword godoc
// @Summary Alterar senha
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param body body dto.UpdatePasswordRequest true "Senha atual e nova"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} apierror.Body
// @Failure 404 {object} apierror.Body
// @Router /users/{id}/password [put]
func (h *UsersHandler) UpdatePassword(c *gin.Context) {
	id, valid := userIDParam(c)
	if !valid {
		return
	}
	var req dto.UpdatePasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdatePassword(c.Request.Context(), id, req); err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Senha atualizada com sucesso", nil)
}

// UpdateEmail godoc
// @Summary Alterar email
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param body body dto.UpdateEmailRequest true "Novo email"
// @Success 200 {object} dto.Envelope{data=dto.UserResponse}
// @Failure 400 {object} apierror.Body
// @Failure 404 {object} apierror.Body
// @Failure 409 {object} apierror.Body
// @Router /users/{id}/email [put]
func (h *UsersHandler) UpdateEmail(c *gin.Context) {
	id, valid := userIDParam(c)
	if !valid {
		return
	}
	var req dto.UpdateEmailRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.UpdateEmail(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Email atualizado com sucesso", user)
}

// Deactivate godoc
// @Summary Desativar usuário (soft delete)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} apierror.Body
// @Router /users/{id} [delete]
func (h *UsersHandler) Deactivate(c *gin.Context) {
	id, valid := userIDParam(c)
	if !valid {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Usuário desativado com sucesso", nil)
}

// Activate godoc
// @Summary Ativar usuário
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} apierror.Body
// @Router /users/{id}/activate [put]
func (h *UsersHandler) Activate(c *gin.Context) {
	id, valid := userIDParam(c)
	if !valid {
		return
	}
	if err := h.svc.Activate(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, "Usuário ativado com sucesso", nil)
}
