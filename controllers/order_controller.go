package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vaishnavisherala/RestaurantSystem/pkg/resp"
	"github.com/vaishnavisherala/RestaurantSystem/services"
	"github.com/vaishnavisherala/RestaurantSystem/utils"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// GET /api/orders/
func (oc *OrderController) List(c *gin.Context) {
	out, err := oc.svc.List(utils.CurrentUserID(c), utils.IsSuperuser(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/orders/place_order/
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.svc.PlaceOrder(utils.CurrentUserID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableUnavailable):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrItemNotFound):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, out)
}

type CheckoutRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// POST /api/orders/:id/checkout/
func (oc *OrderController) Checkout(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.svc.Checkout(uint(id), utils.CurrentUserID(c), utils.IsSuperuser(c), req.Name, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrOrderNotPending):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrSettlementFields):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, out)
}
