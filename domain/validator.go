package domain

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"potluck/errors"
)

var validate = validator.New()

// Payload is the untyped inbound record for create and update requests.
// Client-supplied ids and timestamps are never accepted from input.
type Payload struct {
	Name    string `json:"name"`
	Dish    string `json:"dish"`
	Section string `json:"section"`
}

// Fields is a normalized payload, safe to hand to the store.
type Fields struct {
	Name    string  `validate:"required"`
	Dish    string  `validate:"required"`
	Section Section `validate:"required,oneof=appetizers entree dessert beverages"`
}

// ValidatePayload checks shape and normalizes a payload: name and dish are
// trimmed, section is trimmed and lowercased. Rules apply in order and the
// first failure wins.
func ValidatePayload(payload Payload) (Fields, error) {
	section, _ := ParseSection(payload.Section)
	fields := Fields{
		Name:    strings.TrimSpace(payload.Name),
		Dish:    strings.TrimSpace(payload.Dish),
		Section: section,
	}
	if err := validate.Struct(fields); err != nil {
		var failed validator.ValidationErrors
		if !stderrors.As(err, &failed) {
			return Fields{}, err
		}
		return Fields{}, firstRuleError(failed)
	}
	return fields, nil
}

// firstRuleError maps validator field errors back to the ordered domain
// taxonomy: name, then dish, then section.
func firstRuleError(failed validator.ValidationErrors) error {
	byField := map[string]bool{}
	for _, fe := range failed {
		byField[fe.Field()] = true
	}
	switch {
	case byField["Name"]:
		return errors.ErrNameRequired
	case byField["Dish"]:
		return errors.ErrDishRequired
	default:
		return errors.ErrInvalidSection
	}
}
