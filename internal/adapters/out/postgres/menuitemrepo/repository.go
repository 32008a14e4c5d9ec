package menuitemrepo

import (
	"context"
	"errors"

	"tavern/internal/adapters/out/postgres/pgerr"
	"tavern/internal/core/domain/model/menuitem"
	"tavern/internal/pkg/errs"

	"gorm.io/gorm"
)

type commitTracker interface {
	TrackCommit(hook func())
}

// GormMenuItemRepository implements ports.MenuItemRepository. The generated id
// is applied to the aggregate through a commit hook so a rolled-back write
// leaves the aggregate unpersisted.
type GormMenuItemRepository struct {
	db      *gorm.DB
	tracker commitTracker
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB, tracker commitTracker) *GormMenuItemRepository {
	return &GormMenuItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new menu item.
func (r *GormMenuItemRepository) Add(ctx context.Context, aggregate *menuitem.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsPersisted() {
		return menuitem.ErrMenuItemAlreadyPersisted
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("menu item create", err)
	}

	r.tracker.TrackCommit(func() {
		_ = aggregate.MarkPersisted(dto.ID)
	})
	return nil
}

// Update rewrites an existing catalog entry. Line items written earlier keep
// their frozen snapshot of the previous attributes.
func (r *GormMenuItemRepository) Update(ctx context.Context, aggregate *menuitem.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsPersisted() {
		return errs.NewValueIsRequiredError("menu item id")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":           dto.Name,
			"item_type":      dto.ItemType,
			"price":          dto.Price,
			"vat_percentage": dto.VatPercentage,
			"vat":            dto.Vat,
		})
	if result.Error != nil {
		return pgerr.Classify("menu item update", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItemId", dto.ID)
	}
	return nil
}

// Get retrieves a menu item by id.
func (r *GormMenuItemRepository) Get(ctx context.Context, id int64) (*menuitem.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItemId", id)
		}
		return nil, pgerr.Classify("menu item get", err)
	}
	return toDomain(dto)
}

// Delete removes a menu item. While order line items still reference it the
// foreign key rejects the delete and a constraint violation is returned.
func (r *GormMenuItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, id)
	if result.Error != nil {
		return pgerr.Classify("menu item delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItemId", id)
	}
	return nil
}

func fromDomain(aggregate *menuitem.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:            aggregate.ID(),
		Name:          aggregate.Name(),
		ItemType:      string(aggregate.Type()),
		Price:         aggregate.Price(),
		VatPercentage: aggregate.VatPercentage(),
		Vat:           aggregate.Vat(),
	}
}

func toDomain(dto MenuItemDTO) (*menuitem.MenuItem, error) {
	return menuitem.RestoreMenuItem(dto.ID, dto.Name, menuitem.ItemType(dto.ItemType), dto.Price, dto.VatPercentage, dto.Vat)
}
