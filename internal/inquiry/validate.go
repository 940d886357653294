package inquiry

import (
	"fmt"
	"net/mail"
	"strings"

	"MedSupply/internal/catalog"
	"MedSupply/pkg/kit"
)

const minPhoneLen = 10

// ValidateInsert checks a submitted inquiry and returns one error per
// failing field. Field names match the JSON input so callers can surface
// them directly.
func ValidateInsert(in InsertInquiry) []kit.FieldError {
	var errs []kit.FieldError

	if strings.TrimSpace(in.CustomerName) == "" {
		errs = append(errs, kit.FieldError{Field: "customerName", Message: "name is required"})
	}
	if !validEmail(in.Email) {
		errs = append(errs, kit.FieldError{Field: "email", Message: "valid email is required"})
	}
	if len(strings.TrimSpace(in.Phone)) < minPhoneLen {
		errs = append(errs, kit.FieldError{Field: "phone", Message: "valid phone number is required"})
	}
	if strings.TrimSpace(in.Message) == "" {
		errs = append(errs, kit.FieldError{Field: "message", Message: "message is required"})
	}
	if in.Products == nil {
		errs = append(errs, kit.FieldError{Field: "products", Message: "products is required"})
	}
	if in.TotalAmount == nil {
		errs = append(errs, kit.FieldError{Field: "totalAmount", Message: "total amount is required"})
	} else if *in.TotalAmount < 0 {
		errs = append(errs, kit.FieldError{Field: "totalAmount", Message: "total must not be negative"})
	}

	for i, item := range in.Products {
		errs = append(errs, validateItem(i, item)...)
	}

	return errs
}

func validateItem(i int, item CartItem) []kit.FieldError {
	var errs []kit.FieldError

	field := func(name string) string {
		return fmt.Sprintf("products[%d].%s", i, name)
	}

	if strings.TrimSpace(item.ProductID) == "" {
		errs = append(errs, kit.FieldError{Field: field("productId"), Message: "product id is required"})
	}
	if item.Quantity < 1 {
		errs = append(errs, kit.FieldError{Field: field("quantity"), Message: "quantity must be at least 1"})
	}
	if strings.TrimSpace(item.Product.ID) == "" {
		errs = append(errs, kit.FieldError{Field: field("product.id"), Message: "product snapshot is required"})
	}
	if !catalog.ValidCategory(item.Product.Category) {
		errs = append(errs, kit.FieldError{Field: field("product.category"), Message: "unknown category"})
	}

	return errs
}

// validEmail accepts a bare RFC 5322 address. Display-name forms like
// "Doe <a@b.example>" are rejected, matching the single-address form input.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
