package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/store"
	"github.com/mkhalitov/shoplist/internal/validators"
	"github.com/mkhalitov/shoplist/models"
)

// itemService is the concrete implementation of ItemService. Every
// operation takes the resolved caller identifier and passes it down to the
// owner-scoped repository queries; the service itself never branches on
// ownership because the storage layer cannot return a foreign item.
type itemService struct {
	itemRepository store.ItemRepository
	validator      validators.ItemPayloadValidator
	idGenerator    IDGenerator

	logger *logger.Logger
}

// NewItemService constructs an ItemService wired to the given repository,
// payload validator, and identifier generator.
func NewItemService(itemRepository store.ItemRepository, validator validators.ItemPayloadValidator, idGenerator IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		validator:      validator,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// List returns every item owned by the caller, most recently created first.
func (s *itemService) List(ctx context.Context, userID string) ([]models.Item, error) {
	return s.itemRepository.GetItemsByUser(ctx, userID)
}

// Create validates the payload (name required) and persists a new item with
// purchased=false and both timestamps set to now. The item is re-read after
// the insert so the caller receives the canonical persisted record.
func (s *itemService) Create(ctx context.Context, userID string, payload models.ItemPayload) (models.Item, error) {
	log := logger.FromContext(ctx)

	update, fieldErrors := s.validator.ValidateItemPayload(payload, true)
	if len(fieldErrors) > 0 {
		log.Error().Str("user_id", userID).Any("details", fieldErrors).Msg("item creation payload rejected")
		return models.Item{}, &ValidationError{Fields: fieldErrors}
	}

	now := time.Now().UTC()
	item := models.Item{
		ID:        s.idGenerator.Generate(),
		Name:      *update.Name,
		Purchased: false,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
	}
	if update.Quantity != nil {
		item.Quantity = *update.Quantity
	}

	if err := s.itemRepository.CreateItem(ctx, item); err != nil {
		log.Err(err).Str("user_id", userID).Msg("item creation ended with error")
		return models.Item{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	log.Info().Str("user_id", userID).Str("item_id", item.ID).Msg("item created")

	return s.itemRepository.GetItem(ctx, userID, item.ID)
}

// Get returns the caller's item or store.ErrItemNotFound. A foreign item
// yields the same not-found result as a missing one.
func (s *itemService) Get(ctx context.Context, userID, itemID string) (models.Item, error) {
	return s.itemRepository.GetItem(ctx, userID, itemID)
}

// Update applies a partial update to the caller's item.
//
// The existence-and-ownership check runs first and short-circuits before
// validation, so probing another user's item never reveals whether the
// payload was well-formed. Only the fields present in the payload are
// validated and applied; the repository refreshes updated_at even when no
// field is supplied. If the row vanishes between the check and the write,
// the zero-row update surfaces as store.ErrItemNotFound.
func (s *itemService) Update(ctx context.Context, userID, itemID string, payload models.ItemPayload) (models.Item, error) {
	log := logger.FromContext(ctx)

	if _, err := s.itemRepository.GetItem(ctx, userID, itemID); err != nil {
		return models.Item{}, err
	}

	update, fieldErrors := s.validator.ValidateItemPayload(payload, false)
	if len(fieldErrors) > 0 {
		log.Error().Str("user_id", userID).Str("item_id", itemID).Any("details", fieldErrors).Msg("item update payload rejected")
		return models.Item{}, &ValidationError{Fields: fieldErrors}
	}

	update.ID = itemID
	update.UserID = userID

	if err := s.itemRepository.UpdateItem(ctx, update); err != nil {
		log.Err(err).Str("user_id", userID).Str("item_id", itemID).Msg("item update ended with error")
		return models.Item{}, err
	}

	log.Info().Str("user_id", userID).Str("item_id", itemID).Msg("item updated")

	return s.itemRepository.GetItem(ctx, userID, itemID)
}

// Delete removes the caller's item after the same existence-and-ownership
// check as Update. A zero-row delete is reported as not-found.
func (s *itemService) Delete(ctx context.Context, userID, itemID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.itemRepository.GetItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := s.itemRepository.DeleteItem(ctx, userID, itemID); err != nil {
		log.Err(err).Str("user_id", userID).Str("item_id", itemID).Msg("item deletion ended with error")
		return err
	}

	log.Info().Str("user_id", userID).Str("item_id", itemID).Msg("item deleted")

	return nil
}
