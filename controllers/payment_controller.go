package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/th3akash/taste-haven-backend/entity"
	"github.com/th3akash/taste-haven-backend/pkg/resp"
	"github.com/th3akash/taste-haven-backend/services"
)

type PaymentController struct {
	Service *services.PaymentService
}

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

// POST /create-order → gateway-side order for the checkout widget
func (ctl *PaymentController) CreateOrder(c *gin.Context) {
	var req entity.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	intent, err := ctl.Service.CreateIntent(req.Amount, req.Currency, req.Receipt)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, intent)
}

// POST /verify-payment → checks the gateway signature, then tells the kitchen
func (ctl *PaymentController) VerifyPayment(c *gin.Context) {
	var req entity.PaymentVerification
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.VerifyPayment(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
