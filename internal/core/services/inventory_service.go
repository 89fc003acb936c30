package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parishworks/parish_management_app/internal/apperrors"
	"github.com/parishworks/parish_management_app/internal/core/domain"
	portsrepo "github.com/parishworks/parish_management_app/internal/core/ports/repositories"
	portssvc "github.com/parishworks/parish_management_app/internal/core/ports/services"
	"github.com/parishworks/parish_management_app/internal/dto"
)

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepository
}

// NewInventoryService builds the inventory service.
func NewInventoryService(inventoryRepo portsrepo.InventoryRepository, userRepo portsrepo.UserRepository) portssvc.InventorySvcFacade {
	return &inventoryService{
		BaseService:   BaseService{userRepo: userRepo},
		inventoryRepo: inventoryRepo,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, creatorUserID string) (*domain.InventoryItem, error) {
	if _, err := s.requirePermission(ctx, creatorUserID, domain.PermManageContent); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: item name is required", apperrors.ErrValidation)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", apperrors.ErrValidation)
	}

	item := domain.InventoryItem{
		ItemID:      uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
		Quantity:    req.Quantity,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save inventory item", slog.String("item_id", item.ItemID))
		return nil, err
	}
	return &item, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	return s.inventoryRepo.FindItemByID(ctx, itemID)
}

func (s *inventoryService) ListItems(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error) {
	limit, offset = normalizePage(limit, offset)
	return s.inventoryRepo.ListItems(ctx, limit, offset)
}

func (s *inventoryService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: item name cannot be empty", apperrors.ErrValidation)
		}
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	item.Touch(userID, time.Now())

	if err := s.inventoryRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update inventory item", slog.String("item_id", itemID))
		return nil, err
	}
	return item, nil
}

// AdjustQuantity applies a signed delta to the item count. The delta is
// applied in the database, never computed from a prior read, so concurrent
// adjustments cannot lose each other; the repository refuses deltas that
// would take the count below zero.
func (s *inventoryService) AdjustQuantity(ctx context.Context, itemID string, delta int, userID string) (*domain.InventoryItem, error) {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return nil, err
	}
	if delta == 0 {
		return nil, fmt.Errorf("%w: delta must be non-zero", apperrors.ErrValidation)
	}

	item, err := s.inventoryRepo.AdjustItemQuantity(ctx, itemID, delta, userID, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to adjust item quantity", slog.String("item_id", itemID))
		return nil, err
	}
	s.LogInfo(ctx, "Inventory quantity adjusted",
		slog.String("item_id", itemID),
		slog.Int("delta", delta),
		slog.Int("quantity", item.Quantity),
	)
	return item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	if _, err := s.requirePermission(ctx, userID, domain.PermManageContent); err != nil {
		return err
	}
	if err := s.inventoryRepo.DeleteItem(ctx, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete inventory item", slog.String("item_id", itemID))
		return err
	}
	return nil
}
