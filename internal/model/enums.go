package model

// Gender is stored as its short code.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "Other"
)

// Role of the account holder. Cliente is the default for new registrations.
type Role string

const (
	RoleCliente       Role = "Cliente"
	RoleFuncionario   Role = "Funcionario"
	RoleAdministrador Role = "Administrador"
)

// PaymentMethod is a closed set; the empty value means "not informed".
type PaymentMethod string

const (
	PaymentMPesa         PaymentMethod = "M-pesa"
	PaymentEMola         PaymentMethod = "E-mola"
	PaymentMKesh         PaymentMethod = "M-kesh"
	PaymentMillenniumBim PaymentMethod = "Millenium Bim"
	PaymentBCI           PaymentMethod = "BCI"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)
