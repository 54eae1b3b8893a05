package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvegadev/comanda/models"
)

func newMenuItem(t *testing.T) *models.MenuItem {
	t.Helper()
	item, err := models.NewMenuItem("m1", "Caesar Salad", "romaine, parmesan", 12.5,
		models.CategoryAppetizer, nil, 10, []string{"romaine", "parmesan", "croutons"}, t0)
	require.NoError(t, err)
	return item
}

func TestNewMenuItemValidation(t *testing.T) {
	_, err := models.NewMenuItem("m1", "Salad", "", -1, models.CategoryAppetizer, nil, 0, nil, t0)
	assert.ErrorIs(t, err, models.ErrValidation)

	item, err := models.NewMenuItem("m1", "Salad", "", 5, models.CategoryAppetizer, nil, 0, nil, t0)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreparationTime, item.PreparationTime)
	assert.True(t, item.IsAvailable)
}

func TestMenuItemUpdatePrice(t *testing.T) {
	item := newMenuItem(t)

	require.NoError(t, item.UpdatePrice(15, t0.Add(time.Minute)))
	assert.Equal(t, 15.0, item.Price)
	assert.Equal(t, t0.Add(time.Minute), item.UpdatedAt)

	err := item.UpdatePrice(-2, t0)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, 15.0, item.Price)
}

func TestMenuItemToggleAvailability(t *testing.T) {
	item := newMenuItem(t)

	item.ToggleAvailability(t0)
	assert.False(t, item.IsAvailable)
	item.ToggleAvailability(t0)
	assert.True(t, item.IsAvailable)
}

func TestMenuItemPatchAppliedFieldByField(t *testing.T) {
	item := newMenuItem(t)

	name := "Greek Salad"
	price := 14.0
	category := models.CategoryMainCourse
	require.NoError(t, item.Update(models.MenuItemPatch{
		Name:        &name,
		Price:       &price,
		Category:    &category,
		Ingredients: []string{"feta", "olives"},
	}, t0.Add(time.Minute)))

	assert.Equal(t, "Greek Salad", item.Name)
	assert.Equal(t, 14.0, item.Price)
	assert.Equal(t, models.CategoryMainCourse, item.Category)
	assert.Equal(t, []string{"feta", "olives"}, item.Ingredients)
	// untouched fields survive
	assert.Equal(t, "romaine, parmesan", item.Description)
	assert.Equal(t, 10, item.PreparationTime)
}

func TestMenuItemPatchRejectsBadValues(t *testing.T) {
	item := newMenuItem(t)

	bad := -3.0
	assert.ErrorIs(t, item.Update(models.MenuItemPatch{Price: &bad}, t0), models.ErrValidation)

	unknown := models.MenuItemCategory("SIDE")
	assert.ErrorIs(t, item.Update(models.MenuItemPatch{Category: &unknown}, t0), models.ErrValidation)
}

func TestUserCapabilities(t *testing.T) {
	now := t0
	admin := models.NewUser("u1", "Ana", "ana@example.com", "hash", models.RoleAdmin, now)
	waiter := models.NewUser("u2", "Ben", "ben@example.com", "hash", models.RoleWaiter, now)
	chef := models.NewUser("u3", "Caro", "caro@example.com", "hash", models.RoleChef, now)

	assert.True(t, admin.CanManageOrders())
	assert.True(t, admin.CanPrepareOrders())

	assert.True(t, waiter.CanManageOrders())
	assert.False(t, waiter.CanPrepareOrders())

	assert.False(t, chef.CanManageOrders())
	assert.True(t, chef.CanPrepareOrders())
}

func TestUserPatch(t *testing.T) {
	user := models.NewUser("u1", "Ana", "ana@example.com", "hash", models.RoleWaiter, t0)

	inactive := false
	name := "Ana Maria"
	user.Update(models.UserPatch{Name: &name, IsActive: &inactive}, t0.Add(time.Minute))

	assert.Equal(t, "Ana Maria", user.Name)
	assert.False(t, user.IsActive)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, t0.Add(time.Minute), user.UpdatedAt)
}
