package catalog

import (
	"strings"

	"MedSupply/pkg/kit"
)

// ValidateInsert checks an InsertProduct and returns one error per failing
// field. An empty slice means the input is acceptable as-is.
func ValidateInsert(in InsertProduct) []kit.FieldError {
	var errs []kit.FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, kit.FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, kit.FieldError{Field: "description", Message: "description is required"})
	}
	if !ValidCategory(in.Category) {
		errs = append(errs, kit.FieldError{Field: "category", Message: "unknown category"})
	}
	if in.Price < 0 {
		errs = append(errs, kit.FieldError{Field: "price", Message: "price must not be negative"})
	}

	return errs
}

// ValidatePatch checks only the fields an update actually sets.
func ValidatePatch(patch ProductPatch) []kit.FieldError {
	var errs []kit.FieldError

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		errs = append(errs, kit.FieldError{Field: "name", Message: "name must not be empty"})
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		errs = append(errs, kit.FieldError{Field: "description", Message: "description must not be empty"})
	}
	if patch.Category != nil && !ValidCategory(*patch.Category) {
		errs = append(errs, kit.FieldError{Field: "category", Message: "unknown category"})
	}
	if patch.Price != nil && *patch.Price < 0 {
		errs = append(errs, kit.FieldError{Field: "price", Message: "price must not be negative"})
	}

	return errs
}
