package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore backs the catalog with a products table:
// (seq bigserial, id text pk, name, description, category text,
// price double precision, image_url text, in_stock boolean,
// specifications jsonb). seq preserves insertion order.
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

func (s *PostgresStore) List(ctx context.Context, f Filter) ([]Product, error) {
	q := `
		SELECT id, name, description, category, price, image_url, in_stock, specifications
		FROM products
	`
	var (
		where []string
		args  []any
	)
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		where = append(where, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		where = append(where, fmt.Sprintf("price <= $%d", len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			q += " WHERE " + cond
		} else {
			q += " AND " + cond
		}
	}
	q += " ORDER BY seq ASC"

	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Product, bool, error) {
	var (
		p   Product
		err error
	)

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `
			SELECT id, name, description, category, price, image_url, in_stock, specifications
			FROM products
			WHERE id = $1
		`, id)
		p, err = scanProduct(row)
		return err
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

func (s *PostgresStore) Add(ctx context.Context, in InsertProduct) (Product, error) {
	p := Product{
		ID:             "p_" + uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		Category:       in.Category,
		Price:          in.Price,
		ImageURL:       in.ImageURL,
		InStock:        in.InStock == nil || *in.InStock,
		Specifications: in.Specifications,
	}

	specs, err := marshalSpecs(p.Specifications)
	if err != nil {
		return Product{}, err
	}

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO products (id, name, description, category, price, image_url, in_stock, specifications)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, p.ID, p.Name, p.Description, p.Category, p.Price, p.ImageURL, p.InStock, specs)
		return err
	})

	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, patch ProductPatch) (Product, bool, error) {
	var specs any
	if patch.Specifications != nil {
		b, err := marshalSpecs(patch.Specifications)
		if err != nil {
			return Product{}, false, err
		}
		specs = b
	}

	var (
		p   Product
		err error
	)

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `
			UPDATE products SET
				name           = COALESCE($2, name),
				description    = COALESCE($3, description),
				category       = COALESCE($4, category),
				price          = COALESCE($5, price),
				image_url      = COALESCE($6, image_url),
				in_stock       = COALESCE($7, in_stock),
				specifications = COALESCE($8, specifications)
			WHERE id = $1
			RETURNING id, name, description, category, price, image_url, in_stock, specifications
		`, id, patch.Name, patch.Description, patch.Category, patch.Price, patch.ImageURL, patch.InStock, specs)
		p, err = scanProduct(row)
		return err
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p     Product
		specs []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL, &p.InStock, &specs); err != nil {
		return Product{}, err
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.Specifications); err != nil {
			return Product{}, err
		}
	}
	return p, nil
}

func marshalSpecs(specs []string) ([]byte, error) {
	if specs == nil {
		return nil, nil
	}
	return json.Marshal(specs)
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
