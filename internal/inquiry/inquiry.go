package inquiry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductRef is the denormalized snapshot of a product taken when a cart
// line was added. Inquiries keep these copies; later catalog edits never
// reach back into a submitted inquiry.
type ProductRef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type CartItem struct {
	ProductID string     `json:"productId"`
	Quantity  int        `json:"quantity"`
	Product   ProductRef `json:"product"`
}

type Inquiry struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customerName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Company      string     `json:"company,omitempty"`
	Message      string     `json:"message"`
	Products     []CartItem `json:"products"`
	TotalAmount  float64    `json:"totalAmount"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// InsertInquiry is the submission input. Products and TotalAmount are
// required; a nil Products slice or nil TotalAmount means the field was
// absent from the request (an explicit empty products array decodes
// non-nil and is acceptable).
type InsertInquiry struct {
	CustomerName string     `json:"customerName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Company      string     `json:"company"`
	Message      string     `json:"message"`
	Products     []CartItem `json:"products"`
	TotalAmount  *float64   `json:"totalAmount"`
}

// newInquiry builds the stored record from validated input: generated id,
// UTC creation stamp, and a copied cart snapshot.
func newInquiry(in InsertInquiry) Inquiry {
	var total float64
	if in.TotalAmount != nil {
		total = *in.TotalAmount
	}

	return Inquiry{
		ID:           "q_" + uuid.NewString(),
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Company:      in.Company,
		Message:      in.Message,
		Products:     append([]CartItem(nil), in.Products...),
		TotalAmount:  total,
		CreatedAt:    time.Now().UTC(),
	}
}

// Store is an append-only log of inquiries for the process lifetime.
// Create assigns the id and creation timestamp; nothing updates or deletes.
type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, in InsertInquiry) (Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	Get(ctx context.Context, id string) (Inquiry, bool, error)
}
