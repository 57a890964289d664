package settlement

import "github.com/ikkim/gonggu-backend/internal/app/model"

// ShippingSharePerUnit spreads the group's domestic shipping fee over every ordered unit.
// Orders of other groups are ignored. Returns 0 when nothing has been ordered.
func ShippingSharePerUnit(group model.Group, orders []model.Order) float64 {
	return divideOrZero(group.ShippingFee, TotalUnits(group, orders))
}

// OrderShippingShare is the part of the domestic shipping fee carried by order.
func OrderShippingShare(perUnit float64, order model.Order) float64 {
	return SafeNumber(perUnit) * float64(OrderSubtotal(order).Units)
}

// MerchandiseOwed is what memberID owes for items plus domestic shipping, in destination
// currency, rounded up.
func MerchandiseOwed(group model.Group, orders []model.Order, memberID string) float64 {
	mine := memberOrders(group, orders, memberID)
	if len(mine) == 0 {
		return 0
	}
	perUnit := ShippingSharePerUnit(group, orders)
	var jpy float64
	for _, o := range mine {
		jpy += OrderSubtotal(o).JPY + OrderShippingShare(perUnit, o)
	}
	return ToDestinationCeil(jpy, group.ExchangeRate)
}
