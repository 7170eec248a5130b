package catalog

import (
	"fmt"
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

		// Names must be non-blank and cannot start with the negation marker,
		// otherwise "!Name" would be ambiguous inside a formula.
		_ = v.RegisterValidation("item_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return strings.TrimSpace(name) != "" && !strings.HasPrefix(name, NegationMarker)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateItems checks every item against its schema and rejects duplicate
// names (compared case-insensitively).
func ValidateItems(items []Item) error {
	v := validatorInstance()
	seen := make(map[string]int, len(items))

	for i, item := range items {
		if err := v.Struct(item); err != nil {
			return convertValidationError(i, err)
		}

		if first, exists := seen[item.Key()]; exists {
			return rtoerrors.NewValidationError(fieldForItem(i, "name"),
				fmt.Sprintf("duplicate item name %q (first declared at items[%d])", item.Name, first), nil)
		}
		seen[item.Key()] = i
	}

	return nil
}

func convertValidationError(index int, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldForItem(index, strings.ToLower(ve.StructField()))
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return rtoerrors.NewValidationError(field, msg, err)
	}

	return rtoerrors.NewValidationError(fmt.Sprintf("items[%d]", index), err.Error(), err)
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}
