package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/apierror"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/validation"
)

// bindAndValidate binds the JSON body and runs the validator tags.
// On failure it records the error for the ErrorHandler middleware and
// returns false; the caller should return without writing a response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(apierror.BadRequest("JSON inválido"))
		return false
	}
	if err := validation.Struct(req); err != nil {
		_ = c.Error(err)
		return false
	}
	return true
}

// userIDParam reads :id and rejects values that are not UUIDs before they
// reach the database.
func userIDParam(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apierror.BadRequest("ID de usuário inválido"))
		return "", false
	}
	return id.String(), true
}
