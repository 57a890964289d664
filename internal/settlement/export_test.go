package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikkim/gonggu-backend/internal/app/model"
)

func exportFixture() (model.Group, []model.Order, []model.Member) {
	g := freightGroup()
	g.ExchangeRate = 0.21
	g.PaymentStatus = model.PaymentMerchBilling
	orders := []model.Order{
		order("g1", "m2", line("badge", 500, 3)),
		order("g1", "m1", line("acrylic", 1500, 2), line("badge", 500, 0), line("ghost", 100, 5)),
		order("g1", "m3"),
	}
	members := []model.Member{
		{ID: "m1", Name: "Alice"},
		{ID: "m2", Name: "Bob"},
	}
	return g, orders, members
}

func TestExportRows(t *testing.T) {
	g, orders, members := exportFixture()

	rows := ExportRows(g, orders, members)
	require.Len(t, rows, 3)

	// 10 units in the group -> 100 JPY shipping per unit
	assert.Equal(t, "Alice", rows[0].MemberName)
	assert.Equal(t, "Acrylic stand", rows[0].ItemName)
	assert.Equal(t, 3000.0, rows[0].SubtotalJPY)
	assert.Equal(t, 200.0, rows[0].ShippingJPY)
	assert.Equal(t, 672.0, rows[0].Total)
	assert.Zero(t, rows[0].Freight)

	assert.Equal(t, "ghost", rows[1].ItemName)
	assert.Equal(t, 5, rows[1].Quantity)

	assert.Equal(t, "Bob", rows[2].MemberName)
	assert.Equal(t, "Can badge", rows[2].ItemName)
	assert.Equal(t, 1500.0, rows[2].SubtotalJPY)
	assert.Equal(t, 300.0, rows[2].ShippingJPY)
	assert.Equal(t, 378.0, rows[2].Total)
}

func TestExportRows_FreightColumn(t *testing.T) {
	g, orders, members := exportFixture()
	g.PaymentStatus = model.PaymentFreightBilling

	rows := ExportRows(g, orders, members)
	require.Len(t, rows, 3)

	// box: 250 / 10 units = 25 per unit; acrylic 125 + 25 = 150
	assert.Equal(t, 300.0, rows[0].Freight)
	assert.Equal(t, 125.0, rows[1].Freight)
	assert.Equal(t, 75.0, rows[2].Freight)
}

func TestMemberSummaries(t *testing.T) {
	g, orders, members := exportFixture()

	summaries := MemberSummaries(g, orders, members)
	require.Len(t, summaries, 2)

	alice := summaries[0]
	assert.Equal(t, "m1", alice.MemberID)
	assert.Equal(t, 7, alice.Units)
	assert.Equal(t, 3500.0, alice.SubtotalJPY)
	assert.Equal(t, 700.0, alice.ShippingJPY)
	assert.Equal(t, MerchandiseOwed(g, orders, "m1"), alice.Merchandise)
	assert.Equal(t, alice.Merchandise, alice.Total)

	bob := summaries[1]
	assert.Equal(t, "Bob", bob.MemberName)
	assert.Equal(t, 3, bob.Units)
}

func TestExportRows_DoesNotReorderInput(t *testing.T) {
	g, orders, members := exportFixture()

	ExportRows(g, orders, members)
	assert.Equal(t, "m2", orders[0].MemberID)
}
