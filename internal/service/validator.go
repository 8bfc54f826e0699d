package service

import (
	"control-plane-backend/internal/database/models"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the service's custom tags registered.
// org_role accepts owner, admin, member and viewer.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("org_role", func(fl validator.FieldLevel) bool {
		return models.OrganisationRole(fl.Field().String()).IsValid()
	})
	return v
}
