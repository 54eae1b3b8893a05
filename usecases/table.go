package usecases

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mvegadev/comanda/models"
)

// TablePatch is a partial update for a table.
type TablePatch struct {
	Capacity *int    `json:"capacity,omitempty"`
	Location *string `json:"location,omitempty"`
}

// TableUseCases orchestrates the table lifecycle.
type TableUseCases struct {
	tables models.TableRepository
	events models.EventSink
	clock  models.Clock
}

func NewTableUseCases(tables models.TableRepository, events models.EventSink, clock models.Clock) *TableUseCases {
	return &TableUseCases{tables: tables, events: events, clock: clock}
}

// Create adds a new table. Table numbers are unique across the room, enforced
// here by querying before saving.
func (uc *TableUseCases) Create(number, capacity int, location string) (*models.Table, error) {
	existing, err := uc.tables.FindByNumber(number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: table number %d already exists", models.ErrConflict, number)
	}

	table, err := models.NewTable(uuid.NewString(), number, capacity, location, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	saved, err := uc.tables.Save(table)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventTableCreated, saved)
	return saved, nil
}

func (uc *TableUseCases) get(tableID string) (*models.Table, error) {
	table, err := uc.tables.FindByID(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: table %s", models.ErrNotFound, tableID)
	}
	return table, nil
}

func (uc *TableUseCases) Update(tableID string, patch TablePatch) (*models.Table, error) {
	table, err := uc.get(tableID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if patch.Capacity != nil {
		if err := table.UpdateCapacity(*patch.Capacity, now); err != nil {
			return nil, err
		}
	}
	if patch.Location != nil {
		table.Location = *patch.Location
		table.UpdatedAt = now
	}

	updated, err := uc.tables.Update(table)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventTableUpdated, updated)
	return updated, nil
}

// Free sends the table to CLEANING and clears its order reference.
func (uc *TableUseCases) Free(tableID string) (*models.Table, error) {
	table, err := uc.get(tableID)
	if err != nil {
		return nil, err
	}

	table.Free(uc.clock.Now())
	freed, err := uc.tables.Update(table)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventTableFreed, freed)
	return freed, nil
}

// MarkAsAvailable returns a cleaned table to service.
func (uc *TableUseCases) MarkAsAvailable(tableID string) (*models.Table, error) {
	table, err := uc.get(tableID)
	if err != nil {
		return nil, err
	}

	table.MarkAsAvailable(uc.clock.Now())
	available, err := uc.tables.Update(table)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventTableAvailable, available)
	return available, nil
}

func (uc *TableUseCases) Reserve(tableID string) (*models.Table, error) {
	table, err := uc.get(tableID)
	if err != nil {
		return nil, err
	}

	if err := table.Reserve(uc.clock.Now()); err != nil {
		return nil, err
	}
	reserved, err := uc.tables.Update(table)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventTableReserved, reserved)
	return reserved, nil
}

// Delete removes a table. Occupied tables must be freed first.
func (uc *TableUseCases) Delete(tableID string) error {
	table, err := uc.get(tableID)
	if err != nil {
		return err
	}

	if table.IsOccupied() {
		return fmt.Errorf("%w: cannot delete an occupied table, free it first", models.ErrConflict)
	}

	if err := uc.tables.Delete(tableID); err != nil {
		return err
	}
	uc.events.Emit(models.EventTableDeleted, map[string]string{"id": tableID})
	return nil
}

func (uc *TableUseCases) Get(tableID string) (*models.Table, error) {
	return uc.get(tableID)
}

func (uc *TableUseCases) ListAll() ([]*models.Table, error) {
	return uc.tables.FindAll()
}

func (uc *TableUseCases) ListAvailable() ([]*models.Table, error) {
	return uc.tables.FindByStatus(models.TableAvailable)
}
