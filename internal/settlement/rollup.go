package settlement

import (
	"math"

	"github.com/ikkim/gonggu-backend/internal/app/model"
)

// Snapshot is the current state the roll-up reads from.
type Snapshot struct {
	Groups      []model.Group
	Orders      []model.Order
	Members     []model.Member
	MiscCharges []model.MiscCharge
}

// Bill is a member's outstanding amount broken down by source.
type Bill struct {
	MemberID      string             `json:"member_id"`
	MemberName    string             `json:"member_name"`
	Groups        []Contribution     `json:"groups"`
	GroupsTotal   float64            `json:"groups_total"`
	MiscCharges   []model.MiscCharge `json:"misc_charges"`
	MiscTotal     float64            `json:"misc_total"`
	MembershipFee float64            `json:"membership_fee"`
	Total         float64            `json:"total"`
}

// ActiveMembers counts members whose subscription flag is set.
func ActiveMembers(members []model.Member) int {
	n := 0
	for _, m := range members {
		if m.IsMember {
			n++
		}
	}
	return n
}

// MembershipFeeShare splits flatFee evenly over active subscribers, rounded up.
// Members without the flag owe nothing.
func MembershipFeeShare(member model.Member, members []model.Member, flatFee float64) float64 {
	if !member.IsMember {
		return 0
	}
	return math.Ceil(divideOrZero(flatFee, ActiveMembers(members)))
}

// UnpaidMiscCharges returns the unpaid charges targeting memberID.
func UnpaidMiscCharges(memberID string, charges []model.MiscCharge) []model.MiscCharge {
	out := make([]model.MiscCharge, 0)
	for _, c := range charges {
		if c.MemberID == memberID && c.Status != model.MiscChargePaid {
			out = append(out, c)
		}
	}
	return out
}

// BillFor rolls up every gated group contribution, unpaid misc charges and the membership fee.
// Groups the member never ordered in are omitted from the breakdown; they would add 0.
func BillFor(member model.Member, snap Snapshot, flatFee float64) Bill {
	bill := Bill{
		MemberID:   member.ID,
		MemberName: member.Name,
		Groups:     make([]Contribution, 0),
	}
	for _, g := range snap.Groups {
		if len(memberOrders(g, snap.Orders, member.ID)) == 0 {
			continue
		}
		c := GatedContribution(g, snap.Orders, member.ID)
		bill.Groups = append(bill.Groups, c)
		bill.GroupsTotal += c.Total
	}

	bill.MiscCharges = UnpaidMiscCharges(member.ID, snap.MiscCharges)
	for _, c := range bill.MiscCharges {
		bill.MiscTotal += SafeNumber(c.Amount)
	}

	bill.MembershipFee = MembershipFeeShare(member, snap.Members, flatFee)
	bill.Total = bill.GroupsTotal + bill.MiscTotal + bill.MembershipFee
	return bill
}

// GrandTotal is the single figure shown to member as currently owed.
func GrandTotal(member model.Member, snap Snapshot, flatFee float64) float64 {
	return BillFor(member, snap, flatFee).Total
}
