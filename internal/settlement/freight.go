package settlement

import (
	"math"

	"github.com/ikkim/gonggu-backend/internal/app/model"
)

const (
	// RatePerKg is the fixed freight price, in destination currency, per kilogram.
	RatePerKg = 250.0
	// MinBillingWeightKg is the courier's minimum chargeable weight.
	MinBillingWeightKg = 0.3
)

// Weights coerces the group's free-form weight map into item ID -> kg.
// Entries that are blank or not numeric are dropped.
func Weights(group model.Group) map[string]float64 {
	out := make(map[string]float64, len(group.SecondPayment.Weights))
	for itemID, raw := range group.SecondPayment.Weights {
		if w := SafeNumber(raw); w != 0 {
			out[itemID] = w
		}
	}
	return out
}

// ItemsMissingWeight lists group items without a recorded freight weight.
func ItemsMissingWeight(group model.Group) []model.Item {
	weights := Weights(group)
	var missing []model.Item
	for _, item := range group.Items {
		if _, ok := weights[item.ID]; !ok {
			missing = append(missing, item)
		}
	}
	return missing
}

// FreightAllocation holds the group-wide figures of one freight computation.
type FreightAllocation struct {
	Weights            map[string]float64
	Units              int
	Members            int
	BoxCostPerUnit     float64
	MinChargePerPerson float64
}

// NewFreightAllocation derives the shared freight figures of group from its current orders.
func NewFreightAllocation(group model.Group, orders []model.Order) FreightAllocation {
	units := TotalUnits(group, orders)
	members := Participants(group, orders)
	return FreightAllocation{
		Weights:            Weights(group),
		Units:              units,
		Members:            members,
		BoxCostPerUnit:     divideOrZero(SafeNumber(group.SecondPayment.BoxWeight)*RatePerKg, units),
		MinChargePerPerson: RoundHalfUp(divideOrZero(group.SecondPayment.MinChargeDiff, members)),
	}
}

// ItemFreight is the weight cost of one unit of itemID, before the box share.
func (a FreightAllocation) ItemFreight(itemID string) float64 {
	return a.Weights[itemID] * RatePerKg
}

// PerUnitFreight is the rounded freight charged per unit of itemID.
func (a FreightAllocation) PerUnitFreight(itemID string) float64 {
	return RoundHalfUp(a.ItemFreight(itemID) + a.BoxCostPerUnit)
}

// LineFreight is the freight carried by one order line.
func (a FreightAllocation) LineFreight(line model.OrderLine) float64 {
	if line.Quantity <= 0 {
		return 0
	}
	return a.PerUnitFreight(line.ItemID) * float64(line.Quantity)
}

// OrdersFreight sums line freight over orders and adds one minimum-charge share.
// Returns 0 when orders hold no units.
func (a FreightAllocation) OrdersFreight(orders []model.Order) float64 {
	var total float64
	units := 0
	for _, o := range orders {
		for _, line := range o.Lines {
			total += a.LineFreight(line)
		}
		units += OrderSubtotal(o).Units
	}
	if units == 0 {
		return 0
	}
	return total + a.MinChargePerPerson
}

// MemberFreight is memberID's international freight top-up for group.
func MemberFreight(group model.Group, orders []model.Order, memberID string) float64 {
	return NewFreightAllocation(group, orders).OrdersFreight(memberOrders(group, orders, memberID))
}

// FreightSummary is the admin's view of a group's freight. BillingWeightKg and CourierEstimate
// mirror the courier invoice and are not charged to anyone; BilledTotal is what members pay.
type FreightSummary struct {
	ProductWeightKg    float64  `json:"product_weight_kg"`
	BoxWeightKg        float64  `json:"box_weight_kg"`
	BillingWeightKg    float64  `json:"billing_weight_kg"`
	CourierEstimate    float64  `json:"courier_estimate"`
	BoxCostPerUnit     float64  `json:"box_cost_per_unit"`
	MinChargePerPerson float64  `json:"min_charge_per_person"`
	BilledTotal        float64  `json:"billed_total"`
	Participants       int      `json:"participants"`
	Units              int      `json:"units"`
	MissingWeight      []string `json:"missing_weight"`
}

// SummarizeFreight computes the display-only billing weight next to the billed freight.
func SummarizeFreight(group model.Group, orders []model.Order) FreightSummary {
	alloc := NewFreightAllocation(group, orders)
	inGroup := ordersOf(group, orders)

	var productWeight float64
	for _, o := range inGroup {
		for _, line := range o.Lines {
			if line.Quantity > 0 {
				productWeight += alloc.Weights[line.ItemID] * float64(line.Quantity)
			}
		}
	}
	box := SafeNumber(group.SecondPayment.BoxWeight)
	billing := math.Max(MinBillingWeightKg, productWeight+box)

	byMember := make(map[string][]model.Order)
	for _, o := range inGroup {
		byMember[o.MemberID] = append(byMember[o.MemberID], o)
	}
	var billed float64
	for _, mine := range byMember {
		billed += alloc.OrdersFreight(mine)
	}

	missing := make([]string, 0)
	for _, item := range ItemsMissingWeight(group) {
		missing = append(missing, item.ID)
	}

	return FreightSummary{
		ProductWeightKg:    productWeight,
		BoxWeightKg:        box,
		BillingWeightKg:    billing,
		CourierEstimate:    RoundHalfUp(billing * RatePerKg),
		BoxCostPerUnit:     alloc.BoxCostPerUnit,
		MinChargePerPerson: alloc.MinChargePerPerson,
		BilledTotal:        billed,
		Participants:       alloc.Members,
		Units:              alloc.Units,
		MissingWeight:      missing,
	}
}
