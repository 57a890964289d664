package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikkim/gonggu-backend/internal/app/model"
)

func scenarioCGroup(phase model.PaymentStatus) (model.Group, []model.Order) {
	g := freightGroup()
	g.ShippingFee = 0
	g.ExchangeRate = 0.25
	g.PaymentStatus = phase
	orders := []model.Order{
		order("g1", "m1", line("acrylic", 1500, 2), line("badge", 500, 2)),
		order("g1", "m2", line("badge", 500, 1)),
	}
	return g, orders
}

func TestGatedContribution_ScenarioC(t *testing.T) {
	g, orders := scenarioCGroup(model.PaymentMerchBilling)

	c := GatedContribution(g, orders, "m1")
	assert.Equal(t, 1000.0, c.Merchandise)
	assert.Equal(t, 0.0, c.Freight)
	assert.Equal(t, 1000.0, c.Total)
}

func TestGatedContribution_Phases(t *testing.T) {
	tests := []struct {
		phase       model.PaymentStatus
		merchandise bool
		freight     bool
	}{
		{model.PaymentUnbilled, false, false},
		{model.PaymentMerchBilling, true, false},
		{model.PaymentFreightBilling, false, true},
		{model.PaymentMerchFreightBilling, true, true},
		{model.PaymentMerchSettled, false, false},
		{model.PaymentSettled, false, false},
		{model.PaymentStatus("mystery"), false, false},
		{model.PaymentStatus(""), false, false},
	}

	g, orders := scenarioCGroup(model.PaymentUnbilled)
	merch := MerchandiseOwed(g, orders, "m1")
	freight := MemberFreight(g, orders, "m1")
	require.NotZero(t, merch)
	require.NotZero(t, freight)

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			g.PaymentStatus = tt.phase
			c := GatedContribution(g, orders, "m1")

			want := 0.0
			if tt.merchandise {
				assert.Equal(t, merch, c.Merchandise)
				want += merch
			} else {
				assert.Zero(t, c.Merchandise)
			}
			if tt.freight {
				assert.Equal(t, freight, c.Freight)
				want += freight
			} else {
				assert.Zero(t, c.Freight)
			}
			assert.Equal(t, want, c.Total)
		})
	}
}

func TestMerchandiseOwed_IncludesShippingShare(t *testing.T) {
	g := model.Group{ID: "g1", ShippingFee: 1000, ExchangeRate: 0.21, PaymentStatus: model.PaymentMerchBilling}
	orders := []model.Order{
		order("g1", "m1", line("a", 1000, 3)),
		order("g1", "m2", line("a", 1000, 7)),
	}

	// (3000 + 300) * 0.21 = 693
	assert.Equal(t, 693.0, MerchandiseOwed(g, orders, "m1"))
	// (7000 + 700) * 0.21 = 1617
	assert.Equal(t, 1617.0, MerchandiseOwed(g, orders, "m2"))
}

func TestMembershipFeeShare_ScenarioD(t *testing.T) {
	members := []model.Member{
		{ID: "m1", IsMember: true},
		{ID: "m2", IsMember: true},
		{ID: "m3", IsMember: true},
		{ID: "m4", IsMember: false},
	}

	for _, m := range members[:3] {
		assert.Equal(t, 30.0, MembershipFeeShare(m, members, 90))
	}
	assert.Equal(t, 0.0, MembershipFeeShare(members[3], members, 90))
	assert.Equal(t, 23.0, MembershipFeeShare(members[0], append(members, model.Member{IsMember: true}), 90))
}

func TestMembershipFeeShare_LapsedStillCounts(t *testing.T) {
	expired := time.Now().Add(-time.Hour)
	members := []model.Member{
		{ID: "m1", IsMember: true},
		{ID: "m2", IsMember: true, MemberExpiry: &expired},
	}

	assert.Equal(t, 45.0, MembershipFeeShare(members[1], members, 90))
}

func TestMembershipFeeShare_NoActiveMembers(t *testing.T) {
	lone := model.Member{ID: "m1", IsMember: true}

	assert.Equal(t, 0.0, MembershipFeeShare(lone, nil, 90))
	assert.Equal(t, 0.0, MembershipFeeShare(model.Member{}, nil, 90))
}

func TestBillFor(t *testing.T) {
	merchGroup, merchOrders := scenarioCGroup(model.PaymentMerchBilling)
	settledGroup := model.Group{ID: "g2", ExchangeRate: 0.25, PaymentStatus: model.PaymentSettled}
	unbilledGroup := model.Group{ID: "g3", ExchangeRate: 0.25, PaymentStatus: model.PaymentUnbilled}
	foreignGroup := model.Group{ID: "g4", ExchangeRate: 0.25, PaymentStatus: model.PaymentMerchBilling}

	orders := append([]model.Order{}, merchOrders...)
	orders = append(orders,
		order("g2", "m1", line("x", 10000, 1)),
		order("g3", "m1", line("y", 10000, 1)),
		order("g4", "m2", line("z", 10000, 1)),
	)
	members := []model.Member{
		{ID: "m1", Name: "하나", IsMember: true},
		{ID: "m2", Name: "두리", IsMember: true},
		{ID: "m3", Name: "세나", IsMember: true},
	}
	snap := Snapshot{
		Groups:  []model.Group{merchGroup, settledGroup, unbilledGroup, foreignGroup},
		Orders:  orders,
		Members: members,
		MiscCharges: []model.MiscCharge{
			{ID: "c1", MemberID: "m1", Amount: 120, Status: model.MiscChargeUnpaid},
			{ID: "c2", MemberID: "m1", Amount: 999, Status: model.MiscChargePaid},
			{ID: "c3", MemberID: "m2", Amount: 50, Status: model.MiscChargeUnpaid},
		},
	}

	bill := BillFor(members[0], snap, 90)
	assert.Len(t, bill.Groups, 3)
	assert.Equal(t, 1000.0, bill.GroupsTotal)
	assert.Len(t, bill.MiscCharges, 1)
	assert.Equal(t, 120.0, bill.MiscTotal)
	assert.Equal(t, 30.0, bill.MembershipFee)
	assert.Equal(t, 1150.0, bill.Total)
	assert.Equal(t, bill.Total, GrandTotal(members[0], snap, 90))
}

func TestBillFor_Idempotent(t *testing.T) {
	g, orders := scenarioCGroup(model.PaymentMerchFreightBilling)
	members := []model.Member{{ID: "m1", IsMember: true}, {ID: "m2"}}
	snap := Snapshot{Groups: []model.Group{g}, Orders: orders, Members: members}

	first := BillFor(members[0], snap, 90)
	second := BillFor(members[0], snap, 90)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, len(snap.Orders[0].Lines))
	assert.Equal(t, "g1-m1", snap.Orders[0].ID)
}

func TestBillFor_EmptySnapshot(t *testing.T) {
	bill := BillFor(model.Member{ID: "m1"}, Snapshot{}, 90)

	assert.Empty(t, bill.Groups)
	assert.Equal(t, 0.0, bill.Total)
}
