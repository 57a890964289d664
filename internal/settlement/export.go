package settlement

import (
	"sort"

	"github.com/ikkim/gonggu-backend/internal/app/model"
)

// ExportRow is one order line of the settlement sheet.
type ExportRow struct {
	MemberID    string  `json:"member_id"`
	MemberName  string  `json:"member_name"`
	ItemID      string  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	ItemSpec    string  `json:"item_spec"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	SubtotalJPY float64 `json:"subtotal_jpy"`
	ShippingJPY float64 `json:"shipping_jpy"`
	Total       float64 `json:"total"`
	Freight     float64 `json:"freight"`
}

// MemberSummary is one member's line on the settlement summary.
type MemberSummary struct {
	MemberID    string  `json:"member_id"`
	MemberName  string  `json:"member_name"`
	Units       int     `json:"units"`
	SubtotalJPY float64 `json:"subtotal_jpy"`
	ShippingJPY float64 `json:"shipping_jpy"`
	Contribution
}

func memberNames(members []model.Member) map[string]string {
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return id
}

// sortedGroupOrders returns group's non-empty orders ordered by member name.
func sortedGroupOrders(group model.Group, orders []model.Order, names map[string]string) []model.Order {
	inGroup := ordersOf(group, orders)
	sort.SliceStable(inGroup, func(i, j int) bool {
		return nameOr(names, inGroup[i].MemberID) < nameOr(names, inGroup[j].MemberID)
	})
	return inGroup
}

// ExportRows flattens group's orders into one row per order line, ordered by member name.
// Destination totals are rounded up per line; freight is filled only while the phase bills it.
func ExportRows(group model.Group, orders []model.Order, members []model.Member) []ExportRow {
	names := memberNames(members)
	perUnit := ShippingSharePerUnit(group, orders)
	alloc := NewFreightAllocation(group, orders)
	withFreight := BillsFreight(group.PaymentStatus)

	rows := make([]ExportRow, 0)
	for _, o := range sortedGroupOrders(group, orders, names) {
		for _, line := range o.Lines {
			if line.Quantity <= 0 {
				continue
			}
			row := ExportRow{
				MemberID:    o.MemberID,
				MemberName:  nameOr(names, o.MemberID),
				ItemID:      line.ItemID,
				ItemName:    line.ItemID,
				UnitPrice:   SafeNumber(line.Price),
				Quantity:    line.Quantity,
				SubtotalJPY: LineSubtotal(line),
				ShippingJPY: perUnit * float64(line.Quantity),
			}
			if item := group.FindItem(line.ItemID); item != nil {
				row.ItemName = item.Name
				row.ItemSpec = item.Spec
			}
			row.Total = ToDestinationCeil(row.SubtotalJPY+row.ShippingJPY, group.ExchangeRate)
			if withFreight {
				row.Freight = alloc.LineFreight(line)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// MemberSummaries returns one gated settlement line per participating member.
func MemberSummaries(group model.Group, orders []model.Order, members []model.Member) []MemberSummary {
	names := memberNames(members)
	perUnit := ShippingSharePerUnit(group, orders)

	seen := make(map[string]int)
	summaries := make([]MemberSummary, 0)
	for _, o := range sortedGroupOrders(group, orders, names) {
		sub := OrderSubtotal(o)
		idx, ok := seen[o.MemberID]
		if !ok {
			idx = len(summaries)
			seen[o.MemberID] = idx
			summaries = append(summaries, MemberSummary{
				MemberID:     o.MemberID,
				MemberName:   nameOr(names, o.MemberID),
				Contribution: GatedContribution(group, orders, o.MemberID),
			})
		}
		summaries[idx].Units += sub.Units
		summaries[idx].SubtotalJPY += sub.JPY
		summaries[idx].ShippingJPY += OrderShippingShare(perUnit, o)
	}
	return summaries
}
