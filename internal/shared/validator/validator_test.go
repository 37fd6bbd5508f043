package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/changhyeonkim/contact-intake/go-api-server/internal/shared/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "simple address", email: "ana@example.com", want: true},
		{name: "plus and dots in local part", email: "ana.maria+news@mail.example.ec", want: true},
		{name: "hyphenated domain", email: "soporte_1@mi-empresa.com.ec", want: true},
		{name: "multi-dot domain is tolerated", email: "a@b..c", want: true},
		{name: "empty", email: "", want: false},
		{name: "missing at sign", email: "ana.example.com", want: false},
		{name: "missing domain dot", email: "ana@localhost", want: false},
		{name: "empty local part", email: "@example.com", want: false},
		{name: "space in local part", email: "ana maria@example.com", want: false},
		{name: "two at signs", email: "ana@@example.com", want: false},
		{name: "trailing newline", email: "ana@example.com\n", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validator.IsValidEmail(tc.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "mobile", phone: "0991234567", want: true},
		{name: "Quito landline", phone: "0212345678", want: true},
		{name: "Guayaquil landline", phone: "0412345678", want: true},
		{name: "area code 07", phone: "0712345678", want: true},
		{name: "too short", phone: "123", want: false},
		{name: "invalid prefix 08", phone: "0812345678", want: false},
		{name: "invalid prefix 01", phone: "0112345678", want: false},
		{name: "nine digit landline", phone: "021234567", want: false},
		{name: "eleven digits", phone: "09912345678", want: false},
		{name: "with dashes", phone: "099-123-4567", want: false},
		{name: "international format", phone: "+593991234567", want: false},
		{name: "letters", phone: "09912345ab", want: false},
		{name: "empty", phone: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validator.IsValidPhone(tc.phone))
		})
	}
}

func TestIsValidNationalID(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want bool
	}{
		{name: "published sample", id: "1710034065", want: true},
		{name: "remainder zero gives check digit zero", id: "0109000000", want: true},
		{name: "province 24", id: "2400000002", want: true},
		{name: "province 30", id: "3000000004", want: true},
		{name: "province 31", id: "3100000003", want: true},
		{name: "third digit 6", id: "0160000006", want: true},
		{name: "wrong check digit", id: "1710034066", want: false},
		{name: "too short", id: "171003406", want: false},
		{name: "too long", id: "17100340655", want: false},
		{name: "empty", id: "", want: false},
		{name: "contains letter", id: "17100340a5", want: false},
		{name: "contains dash", id: "171003406-5", want: false},
		{name: "surrounding whitespace", id: " 1710034065", want: false},
		{name: "province 00", id: "0000000000", want: false},
		{name: "province 25 with matching checksum", id: "2500000001", want: false},
		{name: "province 29", id: "2900000007", want: false},
		{name: "province 32", id: "3200000002", want: false},
		{name: "third digit 7 with matching checksum", id: "0170000004", want: false},
		{name: "non-ascii digits", id: "١٧١٠٠٣٤٠٦٥", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, validator.IsValidNationalID(tc.id))
		})
	}
}

func TestIsValidNationalID_EveryCheckDigitHasOneValidValue(t *testing.T) {
	// Given: a fixed nine digit prefix
	prefix := "171003406"

	// When: every possible check digit is appended
	valid := 0
	for d := '0'; d <= '9'; d++ {
		if validator.IsValidNationalID(prefix + string(d)) {
			valid++
		}
	}

	// Then: exactly one of them is accepted
	assert.Equal(t, 1, valid)
}

func TestValidators_AreIdempotent(t *testing.T) {
	inputs := []string{"ana@example.com", "0991234567", "1710034065", "", "not valid"}

	for _, in := range inputs {
		assert.Equal(t, validator.IsValidEmail(in), validator.IsValidEmail(in))
		assert.Equal(t, validator.IsValidPhone(in), validator.IsValidPhone(in))
		assert.Equal(t, validator.IsValidNationalID(in), validator.IsValidNationalID(in))
	}
}

func TestNew_RegistersTags(t *testing.T) {
	v, err := validator.New()
	require.NoError(t, err)

	assert.NoError(t, v.Var("ana@example.com", validator.EmailTag))
	assert.Error(t, v.Var("ana@", validator.EmailTag))
	assert.NoError(t, v.Var("0991234567", validator.PhoneTag))
	assert.Error(t, v.Var("0812345678", validator.PhoneTag))
	assert.NoError(t, v.Var("1710034065", validator.NationalIDTag))
	assert.Error(t, v.Var("1710034066", validator.NationalIDTag))
}

func TestToErrorResponse(t *testing.T) {
	v, err := validator.New()
	require.NoError(t, err)

	type request struct {
		Name  string `validate:"required"`
		Phone string `validate:"ec_phone"`
	}

	// Given: a struct failing two rules
	validationErr := v.Struct(request{Phone: "123"})
	require.Error(t, validationErr)

	// When: converting the error
	resp, ok := validator.ToErrorResponse(validationErr)

	// Then: only the first failure is reported
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "ERROR-001", resp.Code)
	assert.Equal(t, "El campo 'Name' es obligatorio.", resp.Message)
}

func TestToErrorResponse_NotValidationError(t *testing.T) {
	resp, ok := validator.ToErrorResponse(assert.AnError)

	assert.False(t, ok)
	assert.Nil(t, resp)
}

func TestFieldMessage(t *testing.T) {
	v, err := validator.New()
	require.NoError(t, err)

	maxErr := v.Var(strings.Repeat("a", 5), "max=3")
	require.Error(t, maxErr)

	resp, ok := validator.ToErrorResponse(maxErr)
	require.True(t, ok)
	assert.Contains(t, resp.Message, "como máximo 3 caracteres")
}
