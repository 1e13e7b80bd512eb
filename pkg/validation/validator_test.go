package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Name     string `json:"name" binding:"required,fullname"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Address  string `json:"address" binding:"address"`
	Role     string `json:"role" binding:"omitempty,role"`
}

func engine(t *testing.T) *validator.Validate {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestAliases_ValidForm(t *testing.T) {
	v := engine(t)
	err := v.Struct(registerForm{
		Name:     "Bartholomew Montgomery Fisk",
		Email:    "bart@example.com",
		Password: "Str0ng!pass",
		Address:  "221B Baker Street",
		Role:     "store_owner",
	})
	assert.NoError(t, err)
}

func TestAliases_Violations(t *testing.T) {
	v := engine(t)

	cases := []struct {
		name  string
		form  registerForm
		field string
	}{
		{"short name", registerForm{Name: "Too Short", Email: "a@b.co", Password: "Str0ng!pass"}, "name"},
		{"bad email", registerForm{Name: "Bartholomew Montgomery Fisk", Email: "nope", Password: "Str0ng!pass"}, "email"},
		{"weak password", registerForm{Name: "Bartholomew Montgomery Fisk", Email: "a@b.co", Password: "alllowercase"}, "password"},
		{"long password", registerForm{Name: "Bartholomew Montgomery Fisk", Email: "a@b.co", Password: "Way!TooLongPassword1"}, "password"},
		{"unknown role", registerForm{Name: "Bartholomew Montgomery Fisk", Email: "a@b.co", Password: "Str0ng!pass", Role: "superuser"}, "role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.form)
			require.Error(t, err)
			details := ToDetails(err)
			assert.Contains(t, details, tc.field)
		})
	}
}

func TestToDetails_NilAndUnknown(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(assert.AnError))
}
