package handlers

import (
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// iataCode checks a three-letter uppercase IATA location code.
func iataCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// paymentMode checks the value against the known payment modes.
func paymentMode(fl validator.FieldLevel) bool {
	return domain.PaymentMode(fl.Field().String()).IsValid()
}

// RegisterCustomValidators attaches domain validators to gin's binding engine.
// Must run before the first request is bound.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("iata", iataCode); err != nil {
		return err
	}
	return v.RegisterValidation("paymentmode", paymentMode)
}
