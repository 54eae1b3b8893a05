package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
)

type MenuController struct {
	menu *usecases.MenuUseCases
}

func NewMenuController(menu *usecases.MenuUseCases) *MenuController {
	return &MenuController{menu: menu}
}

func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var input usecases.CreateMenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ctrl.menu.Create(input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (%s)", item.Name, item.Category)
	utils.RespondJSON(c, http.StatusCreated, "Menu item created successfully", item)
}

// GetAllMenuItems supports ?available=true and ?category= filters.
func (ctrl *MenuController) GetAllMenuItems(c *gin.Context) {
	if c.Query("available") == "true" {
		items, err := ctrl.menu.ListAvailable()
		if err != nil {
			respondDomainError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Available menu items", items)
		return
	}
	if category := c.Query("category"); category != "" {
		items, err := ctrl.menu.ListByCategory(models.MenuItemCategory(category))
		if err != nil {
			respondDomainError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Menu items by category", items)
		return
	}

	items, err := ctrl.menu.ListAll()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

func (ctrl *MenuController) GetMenuItem(c *gin.Context) {
	item, err := ctrl.menu.Get(c.Param("menu_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ctrl.menu.Update(c.Param("menu_id"), patch)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// ToggleAvailability -> flip an item in or out of the orderable menu
func (ctrl *MenuController) ToggleAvailability(c *gin.Context) {
	item, err := ctrl.menu.ToggleAvailability(c.Param("menu_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item availability changed", item)
}

func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	if err := ctrl.menu.Delete(c.Param("menu_id")); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}
