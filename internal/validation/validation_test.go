package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Abcdef1!", true},
		{"Zz9_Zz9_Zz9_", true},
		{"abcdefgh", false},  // no upper, digit, symbol
		{"Ab1!", false},      // too short
		{"ABCDEFG1!", false}, // no lower
		{"Abcdefgh!", false}, // no digit
		{"Abcdefg12", false}, // no symbol
		{"Abcdef1!-", false}, // '-' is outside the allowed set
		{"Abcdéf1!", false},  // non-ASCII letter
	}
	for _, tc := range cases {
		t.Run(tc.password, func(t *testing.T) {
			assert.Equal(t, tc.want, IsStrongPassword(tc.password))
		})
	}
}

func TestIsStrongPassword_LengthBounds(t *testing.T) {
	twenty := "Aa1!" + strings.Repeat("a", 16)
	require.Len(t, twenty, 20)
	assert.True(t, IsStrongPassword(twenty))
	assert.False(t, IsStrongPassword(twenty+"a"))
}

func TestIsFullName(t *testing.T) {
	assert.True(t, IsFullName("Maria Silva"))
	assert.True(t, IsFullName("João da Conceição"))
	assert.False(t, IsFullName("Mariasilva"), "single token")
	assert.False(t, IsFullName("Ana Lu"), "shorter than 10")
	assert.False(t, IsFullName("Maria  Silva"), "double space")
	assert.False(t, IsFullName("Maria Silva2"), "digit")
	assert.False(t, IsFullName(strings.Repeat("Abcde ", 9)+"Abcdef"), "longer than 50")
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "12345678901", NormalizeCPF("123.456.789-01"))
	assert.Equal(t, "12345678901", NormalizeCPF(" 123.456.789-01 "))

	once := NormalizeCPF("123.456.789-01")
	assert.Equal(t, once, NormalizeCPF(once), "normalising twice changes nothing")
}

func TestIsCPF(t *testing.T) {
	assert.True(t, IsCPF("12345678901"))
	assert.False(t, IsCPF("1234567890"))
	assert.False(t, IsCPF("123456789012"))
	assert.False(t, IsCPF("1234567890a"))
}

type sample struct {
	Password string          `json:"password" validate:"required,password"`
	FullName string          `json:"full_name" validate:"required,fullname"`
	CPF      string          `json:"cpf" validate:"required,cpf"`
	Value    decimal.Decimal `json:"value" validate:"required,min=1"`
	Ratio    *float64        `json:"ratio" validate:"required,min=0,max=1"`
}

func TestNew_RegistersRules(t *testing.T) {
	v := New()
	ratio := 1.0

	ok := sample{
		Password: "Abcdef1!",
		FullName: "Maria Silva",
		CPF:      "123.456.789-01",
		Value:    decimal.NewFromInt(1),
		Ratio:    &ratio,
	}
	require.NoError(t, v.Struct(ok))

	over := 1.01
	bad := sample{
		Password: "abcdefgh",
		FullName: "Maria",
		CPF:      "123",
		Value:    decimal.RequireFromString("0.99"),
		Ratio:    &over,
	}
	fields := Fields(v.Struct(bad))
	assert.Equal(t, map[string]string{
		"password":  "password",
		"full_name": "fullname",
		"cpf":       "cpf",
		"value":     "min",
		"ratio":     "max",
	}, fields)
}

func TestNew_ZeroRatioIsPresent(t *testing.T) {
	zero := 0.0
	s := sample{
		Password: "Abcdef1!",
		FullName: "Maria Silva",
		CPF:      "12345678901",
		Value:    decimal.NewFromInt(10),
		Ratio:    &zero,
	}
	assert.NoError(t, New().Struct(s))

	s.Ratio = nil
	assert.Equal(t, map[string]string{"ratio": "required"}, Fields(New().Struct(s)))
}
