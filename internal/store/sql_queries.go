package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mkhalitov/shoplist/models"
)

const (
	createUser = `INSERT INTO users (id, username, password_hash, created_at)
    VALUES ($1, $2, $3, $4);`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	createItem = `INSERT INTO items (id, name, quantity, purchased, created_at, updated_at, user_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	getItemsByUser = `SELECT id, name, quantity, purchased, created_at, updated_at, user_id
    FROM items
    WHERE user_id = $1
    ORDER BY created_at DESC, id DESC;`

	getItem = `SELECT id, name, quantity, purchased, created_at, updated_at, user_id
    FROM items
    WHERE id = $1 AND user_id = $2;`

	deleteItem = `DELETE FROM items
    WHERE id = $1 AND user_id = $2;`
)

// buildUpdateItemQuery builds the partial UPDATE statement for an item.
// Only the non-nil fields of update contribute SET clauses; updated_at is
// always refreshed, so an empty partial update still advances the
// timestamp. The WHERE predicate is scoped by both id and user_id, which is
// what enforces ownership at the storage layer.
func buildUpdateItemQuery(update models.ItemUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update(models.Item{}.TableName()).
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", now)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}

	if update.Quantity != nil {
		builder = builder.Set("quantity", *update.Quantity)
	}

	if update.Purchased != nil {
		builder = builder.Set("purchased", *update.Purchased)
	}

	builder = builder.Where(sq.Eq{"id": update.ID, "user_id": update.UserID})

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
