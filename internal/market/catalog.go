package market

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sproutly/internal/models"
)

const IncompleteMessage = "Please fill all product details and upload an image."

var ErrIncompleteListing = errors.New("listing is missing required fields")

// SellForm is the user input of the Sell sub-tab
type SellForm struct {
	Name  string           `validate:"required"`
	Price string           `validate:"required"`
	Image *models.ImageRef `validate:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Normalize trims the text fields and drops an image reference without a path
func (f SellForm) Normalize() SellForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Price = strings.TrimSpace(f.Price)
	if f.Image != nil && f.Image.Path == "" {
		f.Image = nil
	}
	return f
}

// Validate reports ErrIncompleteListing naming every missing field
func (f SellForm) Validate() error {
	err := validatorInstance().Struct(f.Normalize())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate listing: %w", err)
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s", ErrIncompleteListing, strings.Join(missing, ", "))
}

// Catalog stores user listings for the lifetime of one session. The database
// lives in memory and disappears on Close.
type Catalog struct {
	db      *sql.DB
	samples []models.Listing
}

// Open creates a session catalog seeded with read-only sample listings
func Open(ctx context.Context, samples []models.Listing) (*Catalog, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	// every pooled connection would get its own empty memory database
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping catalog: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS listings (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			price TEXT NOT NULL,
			image_path TEXT NOT NULL,
			image_name TEXT NOT NULL,
			image_size INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create catalog schema: %w", err)
		}
	}

	fixed := make([]models.Listing, len(samples))
	copy(fixed, samples)
	return &Catalog{db: db, samples: fixed}, nil
}

// Samples returns a copy of the constant sample listings
func (c *Catalog) Samples() []models.Listing {
	out := make([]models.Listing, len(c.samples))
	copy(out, c.samples)
	return out
}

// Add validates the form and appends a new listing. Duplicates are allowed.
func (c *Catalog) Add(ctx context.Context, form SellForm) (models.Listing, error) {
	if err := form.Validate(); err != nil {
		return models.Listing{}, err
	}
	form = form.Normalize()

	listing := models.Listing{
		ID:    uuid.NewString(),
		Name:  form.Name,
		Price: form.Price,
		Image: *form.Image,
	}
	_, err := c.db.ExecContext(ctx,
		"INSERT INTO listings(id, name, price, image_path, image_name, image_size, created_at) VALUES(?, ?, ?, ?, ?, ?, ?)",
		listing.ID,
		listing.Name,
		listing.Price,
		listing.Image.Path,
		listing.Image.Name,
		listing.Image.Size,
		time.Now().Unix(),
	)
	if err != nil {
		return models.Listing{}, fmt.Errorf("insert listing: %w", err)
	}
	return listing, nil
}

// Listings returns user listings in submission order
func (c *Catalog) Listings(ctx context.Context) ([]models.Listing, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT id, name, price, image_path, image_name, image_size FROM listings ORDER BY seq ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	items := []models.Listing{}
	for rows.Next() {
		var it models.Listing
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Image.Path, &it.Image.Name, &it.Image.Size); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return items, nil
}

// Count returns the number of user listings
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM listings").Scan(&n); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

// Close discards the session database
func (c *Catalog) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
