package settlement

import "github.com/ikkim/gonggu-backend/internal/app/model"

// Subtotal is an order's merchandise cost in JPY and its unit count.
type Subtotal struct {
	JPY   float64
	Units int
}

// LineSubtotal returns price*quantity for one line, or 0 for malformed lines.
func LineSubtotal(line model.OrderLine) float64 {
	if line.Quantity <= 0 {
		return 0
	}
	return SafeNumber(line.Price) * float64(line.Quantity)
}

// OrderSubtotal sums an order's lines into a JPY subtotal and a unit count.
func OrderSubtotal(order model.Order) Subtotal {
	var s Subtotal
	for _, line := range order.Lines {
		if line.Quantity <= 0 {
			continue
		}
		s.JPY += LineSubtotal(line)
		s.Units += line.Quantity
	}
	return s
}

// ordersOf keeps the non-empty orders belonging to group.
func ordersOf(group model.Group, orders []model.Order) []model.Order {
	var out []model.Order
	for _, o := range orders {
		if o.GroupID != group.ID {
			continue
		}
		if OrderSubtotal(o).Units == 0 {
			continue
		}
		out = append(out, o)
	}
	return out
}

// memberOrders keeps the non-empty orders of memberID in group.
func memberOrders(group model.Group, orders []model.Order, memberID string) []model.Order {
	var out []model.Order
	for _, o := range ordersOf(group, orders) {
		if o.MemberID == memberID {
			out = append(out, o)
		}
	}
	return out
}

// TotalUnits counts every ordered unit in group.
func TotalUnits(group model.Group, orders []model.Order) int {
	total := 0
	for _, o := range ordersOf(group, orders) {
		total += OrderSubtotal(o).Units
	}
	return total
}

// Participants counts distinct members holding a non-empty order in group.
func Participants(group model.Group, orders []model.Order) int {
	seen := make(map[string]struct{})
	for _, o := range ordersOf(group, orders) {
		seen[o.MemberID] = struct{}{}
	}
	return len(seen)
}
