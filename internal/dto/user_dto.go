package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────
// Custom tags (fullname, hasletter, hasdigit, nuit, msisdn, isodate, pastdate)
// are registered by the validation package.

type CreateUserRequest struct {
	FullName               string  `json:"fullName"               validate:"required,min=3,max=100,fullname"`
	Email                  string  `json:"email"                  validate:"required,email"`
	Password               string  `json:"password"               validate:"required,min=8,hasletter,hasdigit"`
	Code                   string  `json:"code"                   validate:"required,min=3,max=20,alphanum"`
	NUIT                   string  `json:"nuit"                   validate:"required,nuit"`
	MSISDN                 string  `json:"msisdn"                 validate:"required,msisdn"`
	Address                string  `json:"address"                validate:"required,min=5,max=200"`
	DateOfBirth            *string `json:"dateOfBirth"            validate:"omitempty,pastdate"`
	Gender                 *string `json:"gender"                 validate:"omitempty,oneof=M F Other"`
	Role                   *string `json:"role"                   validate:"omitempty,oneof=Cliente Funcionario Administrador"`
	Notes                  *string `json:"notes"                  validate:"omitempty,max=500"`
	IsActive               *bool   `json:"isActive"`
	RegistrationDate       *string `json:"registrationDate"       validate:"omitempty,isodate"`
	Nationality            *string `json:"nationality"            validate:"omitempty,max=50"`
	MaritalStatus          *string `json:"maritalStatus"          validate:"omitempty,max=30"`
	Occupation             *string `json:"occupation"             validate:"omitempty,max=50"`
	PreferredPaymentMethod *string `json:"preferredPaymentMethod" validate:"omitempty,oneof='M-pesa' 'E-mola' 'M-kesh' 'Millenium Bim' 'BCI'"`
	LoyaltyPoints          *int    `json:"loyaltyPoints"          validate:"omitempty,min=0"`
}

// UpdateUserRequest carries only the mutable profile fields; nil means "leave as is".
type UpdateUserRequest struct {
	FullName               *string `json:"fullName"               validate:"omitempty,min=3,max=100,fullname"`
	Address                *string `json:"address"                validate:"omitempty,min=5,max=200"`
	DateOfBirth            *string `json:"dateOfBirth"            validate:"omitempty,pastdate"`
	Gender                 *string `json:"gender"                 validate:"omitempty,oneof=M F Other"`
	Notes                  *string `json:"notes"                  validate:"omitempty,max=500"`
	IsActive               *bool   `json:"isActive"`
	Nationality            *string `json:"nationality"            validate:"omitempty,max=50"`
	MaritalStatus          *string `json:"maritalStatus"          validate:"omitempty,max=30"`
	Occupation             *string `json:"occupation"             validate:"omitempty,max=50"`
	PreferredPaymentMethod *string `json:"preferredPaymentMethod" validate:"omitempty,oneof='M-pesa' 'E-mola' 'M-kesh' 'Millenium Bim' 'BCI'"`
}

type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdatePasswordRequest keeps the registration password rules for the new
// password; the current one only has to be present.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,hasletter,hasdigit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserResponse is the only shape a user leaves the service in. It has no
// password field, so no projection path can leak the hash.
type UserResponse struct {
	ID                     string `json:"id"`
	FullName               string `json:"fullName"`
	Email                  string `json:"email"`
	Code                   string `json:"code"`
	NUIT                   string `json:"nuit"`
	MSISDN                 string `json:"msisdn"`
	Address                string `json:"address"`
	DateOfBirth            string `json:"dateOfBirth,omitempty"`
	Gender                 string `json:"gender,omitempty"`
	Role                   string `json:"role"`
	Notes                  string `json:"notes"`
	IsActive               bool   `json:"isActive"`
	RegistrationDate       string `json:"registrationDate"`
	Nationality            string `json:"nationality"`
	MaritalStatus          string `json:"maritalStatus"`
	Occupation             string `json:"occupation"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod"`
	LoyaltyPoints          int    `json:"loyaltyPoints"`
	CreatedAt              string `json:"createdAt"`
	UpdatedAt              string `json:"updatedAt"`
}
