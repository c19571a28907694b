package dto

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/baechuer/user-account-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("username_format", validateUserNameFormat)
}

// validateUserNameFormat allows letters, numbers and underscores only.
func validateUserNameFormat(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}
	for _, ch := range name {
		if !unicode.IsLetter(ch) && !unicode.IsNumber(ch) && ch != '_' {
			return false
		}
	}
	return true
}

// checkStruct runs validator and flattens failures into one
// ValidationFailed whose message lists every offending field as
// "<reason>: <field>", comma separated.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrInternal(err)
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", reasonFor(fe), fieldName(fe)))
	}
	return domain.ErrValidationFailed(strings.Join(parts, ", "))
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "UserName":
		return "user_name"
	case "Email":
		return "email"
	case "Password":
		return "password"
	default:
		return strings.ToLower(fe.Field())
	}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email"
	case "min":
		return fmt.Sprintf("min length %s", fe.Param())
	case "max":
		return fmt.Sprintf("max length %s", fe.Param())
	case "username_format":
		return "letters, numbers and underscores only"
	default:
		return "invalid value"
	}
}

// LoginRequest carries the login form. The username field holds the
// email address; that is what the deployed clients send.
// No field validation on purpose: a blank or missing credential must
// fail exactly like a wrong one, through the uniform login error.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	return nil
}

// RegisterRequest creates an account. Role is accepted so that older
// clients sending it keep working, but it is never honored: the flow
// forces every registration to the user role.
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=64,username_format"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Role     string `json:"role,omitempty" validate:"-"`
}

func (r *RegisterRequest) Validate() error {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(r.Email)
	return checkStruct(r)
}

// UpdateUserRequest is the self-service profile patch. Absent fields
// stay untouched.
type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=2,max=64,username_format"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(*r.Email)
		r.Email = &v
	}
	if r.UserName == nil && r.Email == nil {
		return domain.ErrValidationFailed("at least one field required: user_name, email")
	}
	return checkStruct(r)
}

func (r *UpdateUserRequest) Patch() domain.UserPatch {
	return domain.UserPatch{
		UserName: r.UserName,
		Email:    r.Email,
	}
}
