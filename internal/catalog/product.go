package catalog

import "context"

// Categories is the fixed set of instrument categories a product may carry.
var Categories = []string{
	"Surgical Instruments",
	"Diagnostic Equipment",
	"Patient Monitoring",
	"Laboratory Equipment",
	"Sterilization",
	"Orthopedic Instruments",
	"Cardiovascular",
	"Respiratory Equipment",
	"Emergency Medicine",
	"Dental Equipment",
}

func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	ImageURL       string   `json:"imageUrl,omitempty"`
	InStock        bool     `json:"inStock"`
	Specifications []string `json:"specifications,omitempty"`
}

// InsertProduct is the input for adding a product. InStock is a pointer so
// an omitted field defaults to true rather than false.
type InsertProduct struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	ImageURL       string   `json:"imageUrl"`
	InStock        *bool    `json:"inStock"`
	Specifications []string `json:"specifications"`
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Category       *string  `json:"category"`
	Price          *float64 `json:"price"`
	ImageURL       *string  `json:"imageUrl"`
	InStock        *bool    `json:"inStock"`
	Specifications []string `json:"specifications"`
}

// Filter combines every optional listing predicate conjunctively. Price
// bounds are inclusive; a nil bound is unbounded on that side.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (f Filter) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// Store holds the product catalog. Listing order is insertion order and is
// stable for the life of the process. Lookups report absence via the bool,
// not the error.
type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context, f Filter) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
	Add(ctx context.Context, in InsertProduct) (Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (Product, bool, error)
}
