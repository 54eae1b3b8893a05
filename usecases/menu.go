package usecases

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mvegadev/comanda/models"
)

// CreateMenuItemInput carries everything needed for a new catalog entry.
type CreateMenuItemInput struct {
	Name            string                  `json:"name" binding:"required"`
	Description     string                  `json:"description"`
	Price           float64                 `json:"price"`
	Category        models.MenuItemCategory `json:"category" binding:"required"`
	ImageURL        *string                 `json:"image_url,omitempty"`
	PreparationTime int                     `json:"preparation_time"`
	Ingredients     []string                `json:"ingredients"`
}

// MenuUseCases orchestrates the menu catalog.
type MenuUseCases struct {
	menu   models.MenuItemRepository
	events models.EventSink
	clock  models.Clock
}

func NewMenuUseCases(menu models.MenuItemRepository, events models.EventSink, clock models.Clock) *MenuUseCases {
	return &MenuUseCases{menu: menu, events: events, clock: clock}
}

func (uc *MenuUseCases) Create(input CreateMenuItemInput) (*models.MenuItem, error) {
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrValidation, input.Category)
	}

	item, err := models.NewMenuItem(uuid.NewString(), input.Name, input.Description, input.Price,
		input.Category, input.ImageURL, input.PreparationTime, input.Ingredients, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	saved, err := uc.menu.Save(item)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventMenuItemCreated, saved)
	return saved, nil
}

func (uc *MenuUseCases) get(itemID string) (*models.MenuItem, error) {
	item, err := uc.menu.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %s", models.ErrNotFound, itemID)
	}
	return item, nil
}

func (uc *MenuUseCases) Update(itemID string, patch models.MenuItemPatch) (*models.MenuItem, error) {
	item, err := uc.get(itemID)
	if err != nil {
		return nil, err
	}

	if err := item.Update(patch, uc.clock.Now()); err != nil {
		return nil, err
	}

	updated, err := uc.menu.Update(item)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventMenuItemUpdated, updated)
	return updated, nil
}

func (uc *MenuUseCases) ToggleAvailability(itemID string) (*models.MenuItem, error) {
	item, err := uc.get(itemID)
	if err != nil {
		return nil, err
	}

	item.ToggleAvailability(uc.clock.Now())

	updated, err := uc.menu.Update(item)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventMenuItemAvailabilityChanged, updated)
	return updated, nil
}

func (uc *MenuUseCases) Delete(itemID string) error {
	if _, err := uc.get(itemID); err != nil {
		return err
	}

	if err := uc.menu.Delete(itemID); err != nil {
		return err
	}
	uc.events.Emit(models.EventMenuItemDeleted, map[string]string{"id": itemID})
	return nil
}

func (uc *MenuUseCases) Get(itemID string) (*models.MenuItem, error) {
	return uc.get(itemID)
}

func (uc *MenuUseCases) ListAll() ([]*models.MenuItem, error) {
	return uc.menu.FindAll()
}

func (uc *MenuUseCases) ListAvailable() ([]*models.MenuItem, error) {
	return uc.menu.FindAvailable()
}

func (uc *MenuUseCases) ListByCategory(category models.MenuItemCategory) ([]*models.MenuItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", models.ErrValidation, category)
	}
	return uc.menu.FindByCategory(category)
}
