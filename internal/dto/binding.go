package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// RegisterCustomValidators installs the domain-specific binding validators
// on gin's validator engine. Called once at startup.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currencycode", validCurrencyCode)
	_ = v.RegisterValidation("plan", validPlan)
}

// validCurrencyCode accepts the two pricing currencies plus the
// inquire-only marker used by listing forms.
func validCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	return domain.ValidCurrency(code) || code == domain.CurrencyInquire
}

func validPlan(fl validator.FieldLevel) bool {
	return domain.Plan(fl.Field().String()).Valid()
}
