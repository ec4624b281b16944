package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository]. It
// executes all item CRUD operations against the "items" table using the
// embedded [*DB] connection.
//
// Every predicate that touches an item carries `user_id = ?` next to the
// item id. There is no way to reach another user's rows through this type,
// which is the data-isolation contract the rest of the application relies on.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem persists a new item record with the caller-assigned identifier
// and timestamps.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, createItem,
		item.ID,
		item.Name,
		item.Quantity,
		item.Purchased,
		item.CreatedAt,
		item.UpdatedAt,
		item.UserID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.CreateItem").
			Str("user_id", item.UserID).
			Str("item_id", item.ID).
			Msg("failed to insert item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetItemsByUser retrieves every item owned by the given user, most
// recently created first. Ties on created_at fall back to id order; ids are
// time-ordered UUIDs, so the combined order follows creation order.
//
// Returns an empty slice when no records are found.
func (r *itemRepository) GetItemsByUser(ctx context.Context, userID string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getItemsByUser, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "itemRepository.GetItemsByUser").
			Str("user_id", userID).
			Msg("failed to execute query for getting user items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 20)

	for rows.Next() {
		var item models.Item

		scanErr := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Quantity,
			&item.Purchased,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.UserID,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.GetItemsByUser").
				Str("user_id", userID).
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.GetItemsByUser").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// GetItem retrieves a single item scoped by owner. A row that exists but
// belongs to a different user produces the same [ErrItemNotFound] as a row
// that does not exist at all.
func (r *itemRepository) GetItem(ctx context.Context, userID, itemID string) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.DB.QueryRowContext(ctx, getItem, itemID, userID)

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&item.Purchased,
		&item.CreatedAt,
		&item.UpdatedAt,
		&item.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).
			Str("func", "itemRepository.GetItem").
			Str("user_id", userID).
			Str("item_id", itemID).
			Msg("failed to scan item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpdateItem applies the non-nil fields of update to the owner-scoped row
// and always refreshes updated_at. Zero affected rows means the item was
// deleted between the caller's existence check and this write; that race is
// surfaced as [ErrItemNotFound] rather than guaranteed away.
func (r *itemRepository) UpdateItem(ctx context.Context, update models.ItemUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(update, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Str("user_id", update.UserID).
			Str("item_id", update.ID).
			Msg("failed to build update query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Str("user_id", update.UserID).
			Str("item_id", update.ID).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem removes the owner-scoped row. Zero affected rows surfaces as
// [ErrItemNotFound], covering both absent and foreign items.
func (r *itemRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteItem, itemID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Str("user_id", userID).
			Str("item_id", itemID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
