// Package validation wraps go-playground/validator with the rules used by the
// user DTOs and renders failures as field errors keyed by JSON name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/apierror"
)

// DateLayout is the wire format for calendar dates (dateOfBirth, registrationDate).
const DateLayout = "2006-01-02"

var (
	fullNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	nuitRe     = regexp.MustCompile(`^\d{9}$`)
	msisdnRe   = regexp.MustCompile(`^8\d{8}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so clients can map errors to inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "fullname", func(fl validator.FieldLevel) bool {
		return fullNameRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "hasletter", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsLetter) >= 0
	})
	mustRegister(v, "hasdigit", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsDigit) >= 0
	})
	mustRegister(v, "nuit", func(fl validator.FieldLevel) bool {
		return nuitRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "msisdn", func(fl validator.FieldLevel) bool {
		return msisdnRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	mustRegister(v, "pastdate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil && d.Before(time.Now())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates s and returns a 400 *apierror.Error listing every
// violated field, or nil when s is valid.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]apierror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apierror.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return apierror.Validation(fields)
}

// ParseDate parses a wire date; callers run it after Struct has accepted the value.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", label(field))
	case "email":
		return "Email inválido"
	case "min":
		if field == "password" || field == "newPassword" {
			return fmt.Sprintf("A senha deve ter pelo menos %s caracteres", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter pelo menos %s caracteres", label(field), fe.Param())
		}
		return fmt.Sprintf("%s deve ser maior ou igual a %s", label(field), fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", label(field), fe.Param())
	case "alphanum":
		return "Código deve conter apenas letras e números"
	case "fullname":
		return "Nome deve conter apenas letras e espaços"
	case "hasletter":
		return "A senha deve conter pelo menos uma letra"
	case "hasdigit":
		return "A senha deve conter pelo menos um número"
	case "nuit":
		return "NUIT deve ter exatamente 9 dígitos"
	case "msisdn":
		return "MSISDN deve começar com 8 e ter 9 dígitos"
	case "isodate":
		return fmt.Sprintf("%s deve estar no formato AAAA-MM-DD", label(field))
	case "pastdate":
		return "Data de nascimento deve ser no passado"
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", label(field), fe.Param())
	default:
		return fmt.Sprintf("%s é inválido", label(field))
	}
}

var labels = map[string]string{
	"fullName":               "Nome completo",
	"email":                  "Email",
	"password":               "Senha",
	"currentPassword":        "Senha atual",
	"newPassword":            "Nova senha",
	"code":                   "Código",
	"nuit":                   "NUIT",
	"msisdn":                 "MSISDN",
	"address":                "Endereço",
	"dateOfBirth":            "Data de nascimento",
	"gender":                 "Gênero",
	"role":                   "Perfil",
	"notes":                  "Observações",
	"registrationDate":       "Data de registo",
	"nationality":            "Nacionalidade",
	"maritalStatus":          "Estado civil",
	"occupation":             "Ocupação",
	"preferredPaymentMethod": "Método de pagamento",
	"loyaltyPoints":          "Pontos de fidelidade",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	return field
}
