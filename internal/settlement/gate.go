package settlement

import "github.com/ikkim/gonggu-backend/internal/app/model"

// Contribution is what one member currently owes for one group.
type Contribution struct {
	GroupID     string              `json:"group_id"`
	GroupTitle  string              `json:"group_title"`
	Phase       model.PaymentStatus `json:"phase"`
	Merchandise float64             `json:"merchandise"`
	Freight     float64             `json:"freight"`
	Total       float64             `json:"total"`
}

// BillsMerchandise reports whether phase charges the merchandise subtotal.
func BillsMerchandise(phase model.PaymentStatus) bool {
	return phase == model.PaymentMerchBilling || phase == model.PaymentMerchFreightBilling
}

// BillsFreight reports whether phase charges the freight top-up.
func BillsFreight(phase model.PaymentStatus) bool {
	return phase == model.PaymentFreightBilling || phase == model.PaymentMerchFreightBilling
}

// GatedContribution applies the group's billing phase to memberID's figures.
// Unbilled, settled and unknown phases contribute 0.
func GatedContribution(group model.Group, orders []model.Order, memberID string) Contribution {
	c := Contribution{
		GroupID:    group.ID,
		GroupTitle: group.Title,
		Phase:      group.PaymentStatus,
	}
	if BillsMerchandise(group.PaymentStatus) {
		c.Merchandise = MerchandiseOwed(group, orders, memberID)
	}
	if BillsFreight(group.PaymentStatus) {
		c.Freight = MemberFreight(group, orders, memberID)
	}
	c.Total = c.Merchandise + c.Freight
	return c
}
