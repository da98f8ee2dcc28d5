package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/apierror"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/service"
)

type EnumsHandler struct{ svc service.EnumService }

func NewEnumsHandler(svc service.EnumService) *EnumsHandler { return &EnumsHandler{svc: svc} }

// Provinces GET /enums/provinces
func (h *EnumsHandler) Provinces(c *gin.Context) {
	respond(c, http.StatusOK, "Províncias de Moçambique encontradas", h.svc.Provinces())
}

// Districts godoc
// @Summary Distritos de uma província
// @Tags enums
// @Produce json
// @Param province query string true "Código da província (ex.: Maputo)"
// @Success 200 {object} dto.Envelope{data=[]dto.DistrictItem}
// @Failure 400 {object} apierror.Body
// @Router /enums/districts [get]
func (h *EnumsHandler) Districts(c *gin.Context) {
	province := c.Query("province")
	if province == "" {
		province = c.Query("provinceCode")
	}
	if province == "" {
		_ = c.Error(apierror.BadRequest("O parâmetro province é obrigatório"))
		return
	}
	respond(c, http.StatusOK, fmt.Sprintf("Distritos da província de %s encontrados", province), h.svc.DistrictsByProvince(province))
}

// Genders GET /enums/genders
func (h *EnumsHandler) Genders(c *gin.Context) {
	respond(c, http.StatusOK, "Gêneros encontrados", h.svc.Genders())
}

// MaritalStatuses GET /enums/marital-statuses
func (h *EnumsHandler) MaritalStatuses(c *gin.Context) {
	respond(c, http.StatusOK, "Estados civis encontrados", h.svc.MaritalStatuses())
}

// Roles GET /enums/roles
func (h *EnumsHandler) Roles(c *gin.Context) {
	respond(c, http.StatusOK, "Perfis encontrados", h.svc.Roles())
}

// Nationalities GET /enums/nationalities
func (h *EnumsHandler) Nationalities(c *gin.Context) {
	respond(c, http.StatusOK, "Nacionalidades encontradas", h.svc.Nationalities())
}

// PaymentMethods GET /enums/payment-methods
func (h *EnumsHandler) PaymentMethods(c *gin.Context) {
	respond(c, http.StatusOK, "Métodos de pagamento encontrados", h.svc.PaymentMethods())
}
