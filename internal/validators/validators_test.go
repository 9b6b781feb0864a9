package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+5511987654321", NormalizePhone(" +55 (11) 98765-4321 "))
	assert.Equal(t, "9876543210", NormalizePhone("98765 43210"))
	assert.Equal(t, "", NormalizePhone("12-34"))
	assert.Equal(t, "", NormalizePhone("1234567890123456"))
	assert.Equal(t, "1234567", NormalizePhone("12+34567"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ana@clinic.example"))
	assert.False(t, IsEmail("Ana <ana@clinic.example>"))
	assert.False(t, IsEmail("ana@localhost"))
	assert.False(t, IsEmail("not-an-email"))
}

func TestSimpleRules(t *testing.T) {
	assert.True(t, IsGender("female"))
	assert.False(t, IsGender("Female"))
	assert.True(t, IsBloodGroup("AB-"))
	assert.True(t, IsHHMM("08:30"))
	assert.False(t, IsHHMM("8:30"))
	assert.False(t, IsHHMM("24:00"))
	assert.True(t, IsDate("2026-02-28"))
	assert.False(t, IsDate("2026-02-30"))
}

type bindTarget struct {
	Start  string `binding:"required,hhmm"`
	Gender string `binding:"omitempty,gender"`
	Phone  string `binding:"phone"`
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register())

	ok := bindTarget{Start: "09:00", Gender: "male", Phone: "+1 555 0100 200"}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	bad := bindTarget{Start: "9am", Phone: "123"}
	assert.Error(t, binding.Validator.ValidateStruct(&bad))
}

type patientTarget struct {
	Gender      *string `json:"gender" binding:"omitempty,gender"`
	BloodGroup  *string `json:"blood_group" binding:"omitempty,blood_group"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,date"`
}

func TestRegister_PointerFieldsAndJSONNames(t *testing.T) {
	require.NoError(t, Register())

	s := func(v string) *string { return &v }

	ok := patientTarget{Gender: s(" Female "), BloodGroup: s("ab+"), DateOfBirth: s(" ")}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))
	assert.NoError(t, binding.Validator.ValidateStruct(&patientTarget{}))

	err := binding.Validator.ValidateStruct(&patientTarget{DateOfBirth: s("1990-02-30")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "date_of_birth", verrs[0].Field())
	assert.Equal(t, "date", verrs[0].Tag())
}
