package service

import (
	"testing"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type serviceFixture struct {
	db         *gorm.DB
	groupRepo  repository.GroupRepository
	orderRepo  repository.OrderRepository
	memberRepo repository.MemberRepository
	chargeRepo repository.MiscChargeRepository
}

func setupServiceTest(t *testing.T) *serviceFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return &serviceFixture{
		db:         testDB,
		groupRepo:  repository.NewGroupRepository(testDB),
		orderRepo:  repository.NewOrderRepository(testDB),
		memberRepo: repository.NewMemberRepository(testDB),
		chargeRepo: repository.NewMiscChargeRepository(testDB),
	}
}

func (f *serviceFixture) groupService() GroupService {
	return NewGroupService(f.groupRepo)
}

func (f *serviceFixture) orderService() OrderService {
	return NewOrderService(f.orderRepo, f.groupRepo, f.memberRepo)
}

func (f *serviceFixture) member(t *testing.T, name string, isMember bool) *model.Member {
	m := &model.Member{Name: name, IsMember: isMember}
	require.NoError(t, f.memberRepo.Create(m))
	return m
}

// group creates a group with an acrylic stand (1500 JPY, max 3) and a badge (500 JPY).
func (f *serviceFixture) group(t *testing.T) *model.Group {
	g, err := f.groupService().CreateGroup(CreateGroupInput{
		Title:        "여름 공구",
		ExchangeRate: 0.25,
		ShippingFee:  1000,
		Items: []ItemInput{
			{Name: "아크릴 스탠드", Price: 1500, MaxQuantity: 3},
			{Name: "캔뱃지", Price: 500},
		},
	})
	require.NoError(t, err)
	return g
}
