package inquiry

import "testing"

func ptr[T any](v T) *T { return &v }

func validInsert() InsertInquiry {
	return InsertInquiry{
		CustomerName: "Dr. Amara Osei",
		Email:        "a.osei@clinic.example",
		Phone:        "0123456789",
		Company:      "Osei Family Clinic",
		Message:      "Please quote for the items below.",
		Products: []CartItem{
			{
				ProductID: "1",
				Quantity:  2,
				Product:   ProductRef{ID: "1", Name: "Digital Blood Pressure Monitor", Price: 2500, Category: "Diagnostic Equipment"},
			},
		},
		TotalAmount: ptr(5000.0),
	}
}

func TestValidateInsert_AcceptsWellFormedInput(t *testing.T) {
	if errs := ValidateInsert(validInsert()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestValidateInsert_ExplicitlyEmptyCartIsAllowed(t *testing.T) {
	in := validInsert()
	in.Products = []CartItem{}
	in.TotalAmount = ptr(0.0)

	if errs := ValidateInsert(in); len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestValidateInsert_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*InsertInquiry)
		wantField string
	}{
		{"missing name", func(in *InsertInquiry) { in.CustomerName = " " }, "customerName"},
		{"missing email", func(in *InsertInquiry) { in.Email = "" }, "email"},
		{"malformed email", func(in *InsertInquiry) { in.Email = "not-an-email" }, "email"},
		{"display-name email", func(in *InsertInquiry) { in.Email = "Dr Osei <a@b.example>" }, "email"},
		{"short phone", func(in *InsertInquiry) { in.Phone = "12345" }, "phone"},
		{"missing message", func(in *InsertInquiry) { in.Message = "" }, "message"},
		{"absent products", func(in *InsertInquiry) { in.Products = nil }, "products"},
		{"absent total", func(in *InsertInquiry) { in.TotalAmount = nil }, "totalAmount"},
		{"negative total", func(in *InsertInquiry) { in.TotalAmount = ptr(-1.0) }, "totalAmount"},
		{"zero quantity", func(in *InsertInquiry) { in.Products[0].Quantity = 0 }, "products[0].quantity"},
		{"missing product id", func(in *InsertInquiry) { in.Products[0].ProductID = "" }, "products[0].productId"},
		{"missing snapshot", func(in *InsertInquiry) { in.Products[0].Product.ID = "" }, "products[0].product.id"},
		{"bad snapshot category", func(in *InsertInquiry) { in.Products[0].Product.Category = "Gadgets" }, "products[0].product.category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInsert()
			tt.mutate(&in)

			errs := ValidateInsert(in)
			if len(errs) == 0 {
				t.Fatalf("expected a validation error")
			}
			for _, e := range errs {
				if e.Field == tt.wantField {
					if e.Message == "" {
						t.Fatalf("empty message for field %s", e.Field)
					}
					return
				}
			}
			t.Fatalf("no error for field %s, got %+v", tt.wantField, errs)
		})
	}
}
