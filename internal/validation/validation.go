package validation

import (
	"regexp"

	validatorv10 "github.com/go-playground/validator/v10"
)

// usZipRe matches the 5-digit postal codes of the only country this
// deployment ships to. Anything else is rejected before a network call.
var usZipRe = regexp.MustCompile(`^\d{5}$`)

// New returns a configured validator with the storefront's custom rules
// registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// registration cannot fail for a non-empty tag with a valid func
	_ = v.RegisterValidation("us_zip", func(fl validatorv10.FieldLevel) bool {
		return usZipRe.MatchString(fl.Field().String())
	})

	return v
}

// ErrorsToMap flattens validator errors into a field → message map for
// 400 responses.
func ErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
	} else if err != nil {
		out["error"] = err.Error()
	}
	return out
}
