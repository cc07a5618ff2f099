package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// StateKey names the single durable cart record.
const StateKey = "fuego-cart"

// Repository persists the cart's durable slice as one named record.
type Repository interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
}

type repository struct {
	db  *sql.DB
	key string
}

// NewRepository returns a Postgres-backed repository storing the item
// list as a JSON payload in the cart_state table.
func NewRepository(db *sql.DB) Repository {
	return &repository{db: db, key: StateKey}
}

func (r *repository) Load(ctx context.Context) ([]Item, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT payload FROM cart_state WHERE name = $1
	`, r.key).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart state: %w", err)
	}

	var state persistedState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("decode cart state: %w", err)
	}
	return state.Items, nil
}

func (r *repository) Save(ctx context.Context, items []Item) error {
	payload, err := json.Marshal(persistedState{Items: items})
	if err != nil {
		return fmt.Errorf("encode cart state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_state (name, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`, r.key, payload)
	if err != nil {
		return fmt.Errorf("save cart state: %w", err)
	}
	return nil
}
