package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
)

type PaymentController struct {
	payments *usecases.PaymentUseCases
}

func NewPaymentController(payments *usecases.PaymentUseCases) *PaymentController {
	return &PaymentController{payments: payments}
}

// CreatePayment -> open the settlement record for a delivered order
func (ctrl *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID string               `json:"order_id" binding:"required"`
		Amount  float64              `json:"amount" binding:"required"`
		Method  models.PaymentMethod `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := ctrl.payments.Create(req.OrderID, req.Amount, req.Method)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Payment %s opened for order %s (%.2f %s)", payment.ID, payment.OrderID, payment.Amount, payment.Method)
	utils.RespondJSON(c, http.StatusCreated, "Payment created successfully", payment)
}

// ProcessPayment -> apply one installment
func (ctrl *PaymentController) ProcessPayment(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment, err := ctrl.payments.Process(c.Param("payment_id"), req.Amount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	message := "Payment partially settled"
	if payment.IsPaid() {
		message = "Payment completed"
		utils.InfoLogger.Printf("Payment %s completed, change %.2f", payment.ID, payment.Change())
	}
	utils.RespondJSON(c, http.StatusOK, message, payment)
}

func (ctrl *PaymentController) RefundPayment(c *gin.Context) {
	payment, err := ctrl.payments.Refund(c.Param("payment_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.InfoLogger.Printf("Payment %s refunded", payment.ID)
	utils.RespondJSON(c, http.StatusOK, "Payment refunded", payment)
}

func (ctrl *PaymentController) GetPayment(c *gin.Context) {
	payment, err := ctrl.payments.Get(c.Param("payment_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// GetAllPayments supports ?order_id= to fetch the payment of one order.
func (ctrl *PaymentController) GetAllPayments(c *gin.Context) {
	if orderID := c.Query("order_id"); orderID != "" {
		payment, err := ctrl.payments.GetByOrder(orderID)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
		return
	}

	payments, err := ctrl.payments.ListAll()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}
