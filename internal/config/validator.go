package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	rtoerrors "github.com/alexisbeaulieu97/rto/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report yaml key names instead of Go field names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks settings after defaults, file values and flags are merged.
func Validate(s Settings) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Field(), ve.Tag())
		return rtoerrors.NewValidationError(ve.Field(), msg, err)
	}

	return rtoerrors.NewValidationError("settings", err.Error(), err)
}
