package settlement

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ikkim/gonggu-backend/internal/app/model"
)

func TestOrderSubtotal(t *testing.T) {
	o := order("g1", "m1",
		line("a", 1000, 2),
		line("b", 500, 1),
		line("c", math.NaN(), 4),
		line("d", 800, 0),
		line("e", 800, -3),
	)

	sub := OrderSubtotal(o)
	assert.Equal(t, 2500.0, sub.JPY)
	assert.Equal(t, 7, sub.Units)
	assert.Equal(t, Subtotal{}, OrderSubtotal(model.Order{}))
}

func TestShippingSplit_ScenarioA(t *testing.T) {
	g := model.Group{ID: "g1", ShippingFee: 1000}
	o1 := order("g1", "m1", line("a", 100, 3))
	o2 := order("g1", "m2", line("a", 100, 7))
	other := order("g2", "m3", line("x", 100, 90))
	orders := []model.Order{o1, o2, other}

	perUnit := ShippingSharePerUnit(g, orders)
	assert.Equal(t, 100.0, perUnit)
	assert.Equal(t, 300.0, OrderShippingShare(perUnit, o1))
	assert.Equal(t, 700.0, OrderShippingShare(perUnit, o2))
}

func TestShippingSplit_Conservation(t *testing.T) {
	groups := []struct {
		fee   float64
		units []int
	}{
		{1000, []int{3, 7}},
		{1001, []int{3, 3, 3}},
		{777, []int{1, 2, 4, 8}},
		{0, []int{5}},
	}

	for _, tt := range groups {
		g := model.Group{ID: "g", ShippingFee: tt.fee}
		var orders []model.Order
		for i, u := range tt.units {
			orders = append(orders, order("g", string(rune('a'+i)), line("x", 10, u)))
		}

		perUnit := ShippingSharePerUnit(g, orders)
		var sum float64
		for _, o := range orders {
			sum += RoundHalfUp(OrderShippingShare(perUnit, o))
		}
		assert.InDelta(t, tt.fee, sum, float64(len(orders)))
	}
}

func TestShippingSplit_NoUnits(t *testing.T) {
	g := model.Group{ID: "g1", ShippingFee: 1000}
	empty := order("g1", "m1", line("a", 100, 0))

	perUnit := ShippingSharePerUnit(g, []model.Order{empty})
	assert.Equal(t, 0.0, perUnit)
	assert.False(t, math.IsNaN(perUnit))
	assert.Equal(t, 0.0, ShippingSharePerUnit(g, nil))
}

func TestFreight_ScenarioB(t *testing.T) {
	g := freightGroup()
	orders := []model.Order{
		order("g1", "m1", line("acrylic", 1500, 2)),
		order("g1", "m2", line("badge", 500, 3)),
	}

	alloc := NewFreightAllocation(g, orders)
	assert.Equal(t, 5, alloc.Units)
	assert.Equal(t, 2, alloc.Members)
	assert.Equal(t, 50.0, alloc.BoxCostPerUnit)
	assert.Equal(t, 50.0, alloc.MinChargePerPerson)
	assert.Equal(t, 175.0, alloc.PerUnitFreight("acrylic"))

	assert.Equal(t, 400.0, MemberFreight(g, orders, "m1"))
	// unweighted items still carry the box share
	assert.Equal(t, 200.0, MemberFreight(g, orders, "m2"))
	assert.Equal(t, 0.0, MemberFreight(g, orders, "nobody"))
}

// Weights read back from the database arrive as json.Number.
func TestFreight_StoredWeights(t *testing.T) {
	g := freightGroup()
	g.SecondPayment.Weights = datatypes.JSONMap{"acrylic": json.Number("0.5"), "badge": json.Number("0")}
	orders := []model.Order{
		order("g1", "m1", line("acrylic", 1500, 2)),
		order("g1", "m2", line("badge", 500, 3)),
	}

	assert.Equal(t, map[string]float64{"acrylic": 0.5}, Weights(g))
	require.Len(t, ItemsMissingWeight(g), 1)
	assert.Equal(t, "badge", ItemsMissingWeight(g)[0].ID)

	// same figures as float weights
	assert.Equal(t, 400.0, MemberFreight(g, orders, "m1"))
	assert.Equal(t, 200.0, MemberFreight(g, orders, "m2"))

	g.SecondPayment.Weights = datatypes.JSONMap{"acrylic": json.Number("not-a-number")}
	assert.Empty(t, Weights(g))
	// box share 50 x 2 units + minimum charge share 50
	assert.Equal(t, 150.0, MemberFreight(g, orders, "m1"))
}

func TestFreight_RoundsPerUnitBeforeMultiplying(t *testing.T) {
	g := freightGroup()
	g.SecondPayment.Weights = datatypes.JSONMap{"acrylic": "0.123"}
	g.SecondPayment.BoxWeight = 0
	g.SecondPayment.MinChargeDiff = 0
	orders := []model.Order{order("g1", "m1", line("acrylic", 1500, 3))}

	// 0.123*250 = 30.75 -> 31 per unit -> 93, not round(92.25) = 92
	assert.Equal(t, 93.0, MemberFreight(g, orders, "m1"))
}

func TestFreight_MinChargeConservation(t *testing.T) {
	for _, members := range []int{1, 2, 3, 7} {
		g := freightGroup()
		g.SecondPayment.MinChargeDiff = 100
		var orders []model.Order
		for i := 0; i < members; i++ {
			orders = append(orders, order("g1", string(rune('a'+i)), line("badge", 500, 1)))
		}

		alloc := NewFreightAllocation(g, orders)
		assert.InDelta(t, 100, alloc.MinChargePerPerson*float64(members), float64(members))
	}
}

func TestFreight_MalformedSettings(t *testing.T) {
	g := freightGroup()
	g.SecondPayment.Weights = datatypes.JSONMap{"acrylic": "", "badge": "n/a"}
	g.SecondPayment.BoxWeight = math.NaN()
	g.SecondPayment.MinChargeDiff = math.Inf(1)
	orders := []model.Order{order("g1", "m1", line("acrylic", 1500, 2))}

	assert.Equal(t, 0.0, MemberFreight(g, orders, "m1"))
	assert.Len(t, ItemsMissingWeight(g), 2)
}

func TestFreight_NoOrders(t *testing.T) {
	g := freightGroup()

	alloc := NewFreightAllocation(g, nil)
	assert.Equal(t, 0.0, alloc.BoxCostPerUnit)
	assert.Equal(t, 0.0, alloc.MinChargePerPerson)
	assert.Equal(t, 0.0, MemberFreight(g, nil, "m1"))
}

func TestSummarizeFreight(t *testing.T) {
	g := freightGroup()
	orders := []model.Order{
		order("g1", "m1", line("acrylic", 1500, 2)),
		order("g1", "m2", line("badge", 500, 3)),
	}

	summary := SummarizeFreight(g, orders)
	assert.InDelta(t, 1.0, summary.ProductWeightKg, 1e-9)
	assert.InDelta(t, 2.0, summary.BillingWeightKg, 1e-9)
	assert.Equal(t, 500.0, summary.CourierEstimate)
	assert.Equal(t, 600.0, summary.BilledTotal)
	assert.Equal(t, []string{"badge"}, summary.MissingWeight)
}

func TestSummarizeFreight_BillingWeightFloor(t *testing.T) {
	g := freightGroup()
	g.SecondPayment.Weights = datatypes.JSONMap{"badge": 0.02}
	g.SecondPayment.BoxWeight = 0
	g.SecondPayment.MinChargeDiff = 0
	orders := []model.Order{order("g1", "m1", line("badge", 500, 1))}

	summary := SummarizeFreight(g, orders)
	require.Equal(t, MinBillingWeightKg, summary.BillingWeightKg)
	assert.Equal(t, 75.0, summary.CourierEstimate)
	// members are billed on actual weight; the floor is informational only
	assert.Equal(t, 5.0, summary.BilledTotal)
}
