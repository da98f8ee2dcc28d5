package service

import (
	"time"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/model"
)

// Timestamps are shown in Mozambique local time (CAT, UTC+2, no DST).
var localZone = time.FixedZone("CAT", 2*60*60)

const (
	timestampLayout = "02-01-2006 15:04"
	birthDateLayout = "02-01-2006"
)

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(localZone).Format(timestampLayout)
}

// toUserResponse is the single projection from model to wire; the password
// hash has no field to land in.
func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:                     u.ID,
		FullName:               u.FullName,
		Email:                  u.Email,
		Code:                   u.Code,
		NUIT:                   u.NUIT,
		MSISDN:                 u.MSISDN,
		Address:                u.Address,
		Role:                   string(u.Role),
		Notes:                  u.Notes,
		IsActive:               u.IsActive,
		Nationality:            u.Nationality,
		MaritalStatus:          u.MaritalStatus,
		Occupation:             u.Occupation,
		PreferredPaymentMethod: string(u.PreferredPaymentMethod),
		LoyaltyPoints:          u.LoyaltyPoints,
		CreatedAt:              formatTimestamp(u.CreatedAt),
		UpdatedAt:              formatTimestamp(u.UpdatedAt),
	}
	if u.DateOfBirth != nil {
		// a calendar date has no zone; print it as stored
		resp.DateOfBirth = u.DateOfBirth.UTC().Format(birthDateLayout)
	}
	if u.Gender != nil {
		resp.Gender = string(*u.Gender)
	}
	if u.RegistrationDate.IsZero() {
		resp.RegistrationDate = resp.CreatedAt
	} else {
		resp.RegistrationDate = formatTimestamp(u.RegistrationDate)
	}
	return resp
}

func toUserResponses(users []model.User) []dto.UserResponse {
	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}
