package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
)

type OrderController struct {
	orders *usecases.OrderUseCases
}

func NewOrderController(orders *usecases.OrderUseCases) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder -> open an order for a table; the waiter is taken from the JWT
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID string               `json:"table_id" binding:"required"`
		Items   []usecases.OrderLine `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ctrl.orders.Create(req.TableID, c.GetString("userID"), req.Items)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created for table %s (%d items)", order.ID, order.TableID, order.ItemCount())
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", order)
}

// GetAllOrders supports ?status=, ?table_id=, ?waiter_id= and ?active=true.
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	var (
		orders []*models.Order
		err    error
	)
	switch {
	case c.Query("active") == "true":
		orders, err = ctrl.orders.ListActive()
	case c.Query("status") != "":
		orders, err = ctrl.orders.ListByStatus(models.OrderStatus(c.Query("status")))
	case c.Query("table_id") != "":
		orders, err = ctrl.orders.ListByTable(c.Query("table_id"))
	case c.Query("waiter_id") != "":
		orders, err = ctrl.orders.ListByWaiter(c.Query("waiter_id"))
	default:
		orders, err = ctrl.orders.ListAll()
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.orders.Get(c.Param("order_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder -> replace lines/notes while the order is still pending
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	var patch usecases.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ctrl.orders.Update(c.Param("order_id"), patch)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (ctrl *OrderController) AddOrderItem(c *gin.Context) {
	var line usecases.OrderLine
	if err := c.ShouldBindJSON(&line); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ctrl.orders.AddItem(c.Param("order_id"), line)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item added", order)
}

func (ctrl *OrderController) RemoveOrderItem(c *gin.Context) {
	order, err := ctrl.orders.RemoveItem(c.Param("order_id"), c.Param("item_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item removed", order)
}

func (ctrl *OrderController) UpdateOrderItemQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ctrl.orders.UpdateItemQuantity(c.Param("order_id"), c.Param("item_id"), req.Quantity)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item quantity updated", order)
}

// Kitchen pipeline transitions.

func (ctrl *OrderController) ConfirmOrder(c *gin.Context) {
	ctrl.transition(c, ctrl.orders.Confirm, "Order confirmed")
}

func (ctrl *OrderController) StartPreparing(c *gin.Context) {
	ctrl.transition(c, ctrl.orders.StartPreparing, "Order is being prepared")
}

func (ctrl *OrderController) MarkOrderReady(c *gin.Context) {
	ctrl.transition(c, ctrl.orders.MarkAsReady, "Order ready for delivery")
}

func (ctrl *OrderController) DeliverOrder(c *gin.Context) {
	ctrl.transition(c, ctrl.orders.Deliver, "Order delivered")
}

func (ctrl *OrderController) transition(c *gin.Context, fn func(string) (*models.Order, error), message string) {
	order, err := fn(c.Param("order_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.InfoLogger.Printf("Order %s -> %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, message, order)
}

// CancelOrder -> abort the order, recording the reason
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := ctrl.orders.Cancel(c.Param("order_id"), req.Reason)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.InfoLogger.Printf("Order %s cancelled: %s", order.ID, req.Reason)
	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}
