package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/th3akash/taste-haven-backend/entity"
	"github.com/th3akash/taste-haven-backend/pkg/resp"
	"github.com/th3akash/taste-haven-backend/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /place-order → online payment, kitchen is notified immediately
func (ctl *OrderController) PlaceOnline(c *gin.Context) {
	ctl.place(c, entity.PaymentMethodOnline)
}

// POST /place-cod-order → cash on delivery, waits for admin approval
func (ctl *OrderController) PlaceCOD(c *gin.Context) {
	ctl.place(c, entity.PaymentMethodCash)
}

func (ctl *OrderController) place(c *gin.Context, method string) {
	var order entity.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := ctl.Service.Place(c.Request.Context(), &order, method)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "order_id": id})
}
