package queries

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

const (
	// MaxTargetQuantity bounds the quantity and time period of a request
	MaxTargetQuantity = 1e12

	// MaxRequiredPerMinute bounds the rate derived from a request
	MaxRequiredPerMinute = 1e12
)

type inputMessage struct {
	field    string
	message  string
	tooLarge string
}

// Messages shown to the user for rejected input, keyed by struct field name
var inputMessages = map[string]inputMessage{
	"ItemID": {field: "item_id", message: "No item selected."},
	"TargetQuantity": {
		field:    "target_quantity",
		message:  "Production quantity must be a positive number.",
		tooLarge: fmt.Sprintf("Production quantity must not exceed %.0f.", MaxTargetQuantity),
	},
	"TimePeriodMinutes": {
		field:    "time_period_minutes",
		message:  "Time period must be a positive number.",
		tooLarge: fmt.Sprintf("Time period must not exceed %.0f minutes.", MaxTargetQuantity),
	},
}

var requestValidator = mustNewRequestValidator()

func mustNewRequestValidator() *validator.Validate {
	v := validator.New()

	// gt=0 alone lets +Inf through
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}); err != nil {
		panic(fmt.Sprintf("failed to register finite validation: %v", err))
	}

	return v
}

// validateRequest checks the validate tags of a request struct and reports the first
// failing field as an ErrInvalidRateInput
func validateRequest(request interface{}) error {
	err := requestValidator.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	first := validationErrs[0]
	known, ok := inputMessages[first.Field()]
	if !ok {
		return &production.ErrInvalidRateInput{Field: first.Field(), Message: first.Error()}
	}
	if first.Tag() == "lte" && known.tooLarge != "" {
		return &production.ErrInvalidRateInput{Field: known.field, Message: known.tooLarge}
	}
	return &production.ErrInvalidRateInput{Field: known.field, Message: known.message}
}

// validateRate rejects a derived rate too large to expand into whole machine counts
func validateRate(requiredPerMinute float64) error {
	if requiredPerMinute > MaxRequiredPerMinute {
		return &production.ErrInvalidRateInput{
			Field:   "time_period_minutes",
			Message: fmt.Sprintf("Production rate must not exceed %.0f per minute.", MaxRequiredPerMinute),
		}
	}
	return nil
}
