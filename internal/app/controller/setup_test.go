package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	"github.com/ikkim/gonggu-backend/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type controllerFixture struct {
	db     *gorm.DB
	router *gin.Engine
	groups service.GroupService
}

// setupControllerTest registers every handler on a bare engine; admin gating is covered by the router tests.
func setupControllerTest(t *testing.T) *controllerFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	groupRepo := repository.NewGroupRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	memberRepo := repository.NewMemberRepository(testDB)
	chargeRepo := repository.NewMiscChargeRepository(testDB)

	groupService := service.NewGroupService(groupRepo)
	settlementService := service.NewSettlementService(groupRepo, orderRepo, memberRepo, chargeRepo, 90)

	groupCtrl := NewGroupController(groupService)
	orderCtrl := NewOrderController(service.NewOrderService(orderRepo, groupRepo, memberRepo))
	memberCtrl := NewMemberController(service.NewMemberService(memberRepo), settlementService)
	chargeCtrl := NewMiscChargeController(service.NewMiscChargeService(chargeRepo, memberRepo))
	settlementCtrl := NewSettlementController(settlementService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/groups", groupCtrl.ListGroups)
	router.GET("/groups/:id", groupCtrl.GetGroup)
	router.POST("/groups", groupCtrl.CreateGroup)
	router.PATCH("/groups/:id/settings", groupCtrl.UpdateSettings)
	router.PATCH("/groups/:id/tracking", groupCtrl.UpdateTracking)
	router.PATCH("/groups/:id/status", groupCtrl.UpdateStatus)
	router.GET("/groups/:id/settlement", settlementCtrl.GetGroupSettlement)
	router.GET("/groups/:id/export", settlementCtrl.ExportGroupSettlement)
	router.GET("/groups/:id/orders", orderCtrl.ListGroupOrders)
	router.GET("/groups/:id/orders/:memberId", orderCtrl.GetOrder)
	router.PUT("/groups/:id/orders/:memberId", orderCtrl.PlaceOrder)
	router.GET("/members", memberCtrl.ListMembers)
	router.PUT("/members/:id/membership", memberCtrl.UpdateMembership)
	router.GET("/members/:id/billing", memberCtrl.GetBilling)
	router.GET("/members/:id/orders", orderCtrl.ListMemberOrders)
	router.GET("/misc-charges", chargeCtrl.ListCharges)
	router.POST("/misc-charges", chargeCtrl.CreateCharge)
	router.PATCH("/misc-charges/:id/paid", chargeCtrl.MarkPaid)

	return &controllerFixture{db: testDB, router: router, groups: groupService}
}

func (f *controllerFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (f *controllerFixture) member(t *testing.T, name string) *model.Member {
	m := &model.Member{Name: name, IsMember: true}
	require.NoError(t, f.db.Create(m).Error)
	return m
}

func (f *controllerFixture) group(t *testing.T) *model.Group {
	g, err := f.groups.CreateGroup(service.CreateGroupInput{
		Title:        "여름 공구",
		ExchangeRate: 0.25,
		ShippingFee:  1000,
		Items: []service.ItemInput{
			{Name: "아크릴 스탠드", Price: 1500, MaxQuantity: 3},
			{Name: "캔뱃지", Price: 500},
		},
	})
	require.NoError(t, err)
	return g
}
