package inquiry

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore backs the inquiry log with an inquiries table:
// (seq bigserial, id text pk, customer_name, email, phone, company,
// message text, products jsonb, total_amount double precision,
// created_at timestamptz). Cart snapshots live in the jsonb column;
// there is no relation back to products on purpose.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Create(ctx context.Context, in InsertInquiry) (Inquiry, error) {
	q := newInquiry(in)

	products, err := json.Marshal(q.Products)
	if err != nil {
		return Inquiry{}, err
	}

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO inquiries (id, customer_name, email, phone, company, message, products, total_amount, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, q.ID, q.CustomerName, q.Email, q.Phone, q.Company, q.Message, products, q.TotalAmount, q.CreatedAt)
		return err
	})

	if err != nil {
		return Inquiry{}, err
	}
	return q, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Inquiry, error) {
	var out []Inquiry

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, customer_name, email, phone, company, message, products, total_amount, created_at
			FROM inquiries
			ORDER BY seq ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Inquiry, 0, 16)
		for rows.Next() {
			q, err := scanInquiry(rows)
			if err != nil {
				return err
			}
			out = append(out, q)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Inquiry, bool, error) {
	var (
		q   Inquiry
		err error
	)

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `
			SELECT id, customer_name, email, phone, company, message, products, total_amount, created_at
			FROM inquiries
			WHERE id = $1
		`, id)
		q, err = scanInquiry(row)
		return err
	})

	if err == sql.ErrNoRows {
		return Inquiry{}, false, nil
	}
	if err != nil {
		return Inquiry{}, false, err
	}
	return q, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInquiry(row rowScanner) (Inquiry, error) {
	var (
		q        Inquiry
		products []byte
	)
	if err := row.Scan(&q.ID, &q.CustomerName, &q.Email, &q.Phone, &q.Company, &q.Message, &products, &q.TotalAmount, &q.CreatedAt); err != nil {
		return Inquiry{}, err
	}
	if len(products) > 0 {
		if err := json.Unmarshal(products, &q.Products); err != nil {
			return Inquiry{}, err
		}
	}
	return q, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
