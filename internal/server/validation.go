package server

import (
	"fmt"
	"math"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"showbench/internal/db"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
	maxSettingValue      = 500
)

// registerValidations hooks domain checks into gin's binding validator so
// enum-valued fields fail at bind time. Safe to call more than once:
// re-registering a tag replaces the previous function.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return db.ValidRole(fl.Field().String())
	})
}

// Update payloads arrive as JSON objects. Rather than accepting arbitrary
// field maps, every update operation declares the fields it may touch and
// anything else is rejected before it reaches the data layer.
var (
	modelUpdateFields = map[string]string{
		"name":        "name",
		"description": "description",
		"categoryId":  "category_id",
		"teamId":      "team_id",
		"imageUrl":    "image_url",
	}
	eventUpdateFields = map[string]string{
		"name":        "name",
		"description": "description",
		"status":      "status",
		"location":    "location",
	}
	categoryUpdateFields = map[string]string{
		"name":        "name",
		"description": "description",
	}
	registrationReviewFields = map[string]string{
		"status":     "status",
		"modelId":    "model_id",
		"categoryId": "category_id",
	}
)

// filterFields maps allow-listed JSON keys onto their column names. Unknown
// keys fail the whole update.
func filterFields(payload map[string]any, allowed map[string]string) (map[string]any, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	updates := make(map[string]any, len(payload))
	for key, value := range payload {
		column, ok := allowed[key]
		if !ok {
			return nil, fmt.Errorf("field %q cannot be updated", key)
		}
		updates[column] = value
	}
	return updates, nil
}

func validateName(name string) (string, error) {
	trimmed := normalizeText(name)
	if trimmed == "" {
		return "", fmt.Errorf("name is required")
	}
	if len(trimmed) > maxNameLength {
		return "", fmt.Errorf("name must be %d characters or fewer", maxNameLength)
	}
	return trimmed, nil
}

func validateDescription(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) > maxDescriptionLength {
		return "", fmt.Errorf("description must be %d characters or fewer", maxDescriptionLength)
	}
	return trimmed, nil
}

// numericID reads an id out of a decoded JSON update payload, where numbers
// arrive as float64. Fractional, zero and negative values are rejected.
func numericID(value any) (uint, bool) {
	f, ok := value.(float64)
	if !ok || f < 1 || f != math.Trunc(f) {
		return 0, false
	}
	return uint(f), true
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}
