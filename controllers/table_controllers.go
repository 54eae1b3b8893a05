package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
)

type TableController struct {
	tables *usecases.TableUseCases
}

func NewTableController(tables *usecases.TableUseCases) *TableController {
	return &TableController{tables: tables}
}

// CreateTable -> add a new table to the room
func (ctrl *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   int    `json:"number" binding:"required"`
		Capacity int    `json:"capacity" binding:"required"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := ctrl.tables.Create(req.Number, req.Capacity, req.Location)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %d (%s)", table.Number, table.Location)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

func (ctrl *TableController) GetAllTables(c *gin.Context) {
	if c.Query("available") == "true" {
		tables, err := ctrl.tables.ListAvailable()
		if err != nil {
			respondDomainError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "List of available tables", tables)
		return
	}

	tables, err := ctrl.tables.ListAll()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (ctrl *TableController) GetTable(c *gin.Context) {
	table, err := ctrl.tables.Get(c.Param("table_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

func (ctrl *TableController) UpdateTable(c *gin.Context) {
	var patch usecases.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := ctrl.tables.Update(c.Param("table_id"), patch)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// FreeTable -> release the table into CLEANING
func (ctrl *TableController) FreeTable(c *gin.Context) {
	table, err := ctrl.tables.Free(c.Param("table_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.InfoLogger.Printf("Table %d freed for cleaning", table.Number)
	utils.RespondJSON(c, http.StatusOK, "Table freed", table)
}

// MarkTableAvailable -> put a cleaned table back in service
func (ctrl *TableController) MarkTableAvailable(c *gin.Context) {
	table, err := ctrl.tables.MarkAsAvailable(c.Param("table_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table available", table)
}

func (ctrl *TableController) ReserveTable(c *gin.Context) {
	table, err := ctrl.tables.Reserve(c.Param("table_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table reserved", table)
}

func (ctrl *TableController) DeleteTable(c *gin.Context) {
	if err := ctrl.tables.Delete(c.Param("table_id")); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", nil)
}
