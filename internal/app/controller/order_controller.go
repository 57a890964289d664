package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type PlaceOrderRequest struct {
	Lines []service.OrderLineInput `json:"lines" binding:"dive"`
}

// PlaceOrder replaces a member's order in a group; no positive quantity removes it
// PUT /api/v1/groups/:id/orders/:memberId
func (ctrl *OrderController) PlaceOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	groupID := c.Param("id")
	memberID := c.Param("memberId")

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, err)
		return
	}

	order, err := ctrl.orderService.PlaceOrder(groupID, memberID, req.Lines)
	if err != nil {
		respondServiceError(c, err, "place order")
		return
	}

	if order == nil {
		log.Info("Order removed", map[string]interface{}{
			"group_id":  groupID,
			"member_id": memberID,
		})
		c.JSON(http.StatusOK, gin.H{
			"order":   nil,
			"deleted": true,
		})
		return
	}

	log.Info("Order placed", map[string]interface{}{
		"order_id":  order.ID,
		"group_id":  groupID,
		"member_id": memberID,
	})
	c.JSON(http.StatusOK, gin.H{
		"order":   order,
		"deleted": false,
	})
}

// ListGroupOrders returns every order of a group
// GET /api/v1/groups/:id/orders
func (ctrl *OrderController) ListGroupOrders(c *gin.Context) {
	orders, err := ctrl.orderService.ListGroupOrders(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "list group orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns one member's order in a group
// GET /api/v1/groups/:id/orders/:memberId
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.orderService.GetOrder(c.Param("id"), c.Param("memberId"))
	if err != nil {
		respondServiceError(c, err, "get order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// ListMemberOrders returns a member's order history across groups
// GET /api/v1/members/:id/orders
func (ctrl *OrderController) ListMemberOrders(c *gin.Context) {
	orders, err := ctrl.orderService.ListMemberOrders(c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "list member orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}
