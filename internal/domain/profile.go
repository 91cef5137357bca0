package domain

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// TouristProfile holds the validated traveller preferences for one
// itinerary request. Construct it through NewTouristProfile; the pipeline
// treats it as immutable afterwards.
type TouristProfile struct {
	Age                int      `json:"age" validate:"min=18,max=100"`
	Interests          []string `json:"interests"`
	AccessibilityNeeds bool     `json:"accessibility_needs"`
	PreferredDuration  int      `json:"preferred_duration" validate:"min=1"`
	BudgetPreference   string   `json:"budget_preference" validate:"required,oneof=Budget Mid-range Luxury"`
	ClimatePreference  string   `json:"climate_preference" validate:"omitempty,oneof=Cold Temperate Warm"`
	SeasonPreference   string   `json:"season_preference" validate:"omitempty,oneof=Spring Summer Autumn Winter"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func profileValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report errors under the wire/json field names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// NewTouristProfile validates the raw fields and returns the profile, or a
// *ValidationError naming the offending field and the violated bound.
func NewTouristProfile(p TouristProfile) (TouristProfile, error) {
	if err := profileValidator().Struct(p); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return TouristProfile{}, &ValidationError{
				Field: first.Field(),
				Bound: boundText(first),
				Value: first.Value(),
			}
		}
		return TouristProfile{}, err
	}
	return p, nil
}

func boundText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("minimum %s", fe.Param())
	case "max":
		return fmt.Sprintf("maximum %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("one of [%s]", fe.Param())
	case "required":
		return "required"
	default:
		return fe.Tag()
	}
}
