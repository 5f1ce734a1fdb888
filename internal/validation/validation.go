// Package validation holds the field rules shared by every request DTO:
// password complexity, employee full names and CPF shape.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	PasswordMinLength = 8
	PasswordMaxLength = 20
	FullNameMinLength = 10
	FullNameMaxLength = 50
	CPFLength         = 11

	// PasswordSymbols is the fixed set a password must draw one symbol from.
	PasswordSymbols = "!@#$%^&*()_+"
)

var (
	cpfPunctuation  = regexp.MustCompile(`[.\-]`)
	fullNameRegex   = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ]+(?: [A-Za-zÀ-ÖØ-öø-ÿ]+)+$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*()_+]+$`)
	digitsOnly      = regexp.MustCompile(`^[0-9]+$`)
)

// NormalizeCPF strips the dots and dashes of a formatted CPF.
// Applying it to an already normalised value is a no-op.
func NormalizeCPF(cpf string) string {
	return cpfPunctuation.ReplaceAllString(strings.TrimSpace(cpf), "")
}

// IsCPF reports whether cpf is exactly 11 digits.
func IsCPF(cpf string) bool {
	return len(cpf) == CPFLength && digitsOnly.MatchString(cpf)
}

// IsFullName accepts two or more space separated words of letters
// (accented Latin-1 included), 10 to 50 characters in total.
func IsFullName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < FullNameMinLength || n > FullNameMaxLength {
		return false
	}
	return fullNameRegex.MatchString(name)
}

// IsStrongPassword requires 8-20 characters with at least one upper case
// letter, one lower case letter, one digit and one of PasswordSymbols.
func IsStrongPassword(password string) bool {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return false
	}
	if !passwordCharset.MatchString(password) {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			upper = true
		case unicode.IsLower(ch):
			lower = true
		case unicode.IsDigit(ch):
			digit = true
		case strings.ContainsRune(PasswordSymbols, ch):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// New returns a validator with the custom rules registered:
//
//	password  IsStrongPassword
//	fullname  IsFullName
//	cpf       IsCPF (after NormalizeCPF)
//
// Field errors are reported under their json names.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// decimal.Decimal is validated as a float so min/max/required apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	mustRegister(v, "fullname", func(fl validator.FieldLevel) bool {
		return IsFullName(fl.Field().String())
	})
	mustRegister(v, "cpf", func(fl validator.FieldLevel) bool {
		return IsCPF(NormalizeCPF(fl.Field().String()))
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Fields flattens validator errors into field -> failed rule.
func Fields(err error) map[string]string {
	fields := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fields
	}
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fe.Tag()
	}
	return fields
}

// fieldPath drops the top-level struct name from the namespace so nested and
// slice errors read like "[1].food_attach".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexAny(ns, ".["); i > 0 && ns[i] == '.' {
		return ns[i+1:]
	}
	if i := strings.Index(ns, "["); i > 0 {
		return ns[i:]
	}
	return ns
}
