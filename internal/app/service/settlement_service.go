package service

import (
	"bytes"
	"fmt"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/internal/export"
	"github.com/ikkim/gonggu-backend/internal/settlement"
	"github.com/ikkim/gonggu-backend/pkg/logger"
)

// GroupSettlement is the admin view of one group's settlement.
type GroupSettlement struct {
	GroupID         string                     `json:"group_id"`
	GroupTitle      string                     `json:"group_title"`
	PaymentStatus   model.PaymentStatus        `json:"payment_status"`
	ExchangeRate    float64                    `json:"exchange_rate"`
	ShippingPerUnit float64                    `json:"shipping_per_unit"`
	Participants    int                        `json:"participants"`
	Units           int                        `json:"units"`
	Members         []settlement.MemberSummary `json:"members"`
	Freight         settlement.FreightSummary  `json:"freight"`
	Total           float64                    `json:"total"`
}

type SettlementService interface {
	MemberBill(memberID string) (*settlement.Bill, error)
	GroupSettlement(groupID string) (*GroupSettlement, error)
	ExportGroup(groupID string) (*bytes.Buffer, string, error)
}

type settlementService struct {
	groupRepo  repository.GroupRepository
	orderRepo  repository.OrderRepository
	memberRepo repository.MemberRepository
	chargeRepo repository.MiscChargeRepository
	flatFee    float64
}

func NewSettlementService(
	groupRepo repository.GroupRepository,
	orderRepo repository.OrderRepository,
	memberRepo repository.MemberRepository,
	chargeRepo repository.MiscChargeRepository,
	membershipFlatFee float64,
) SettlementService {
	return &settlementService{
		groupRepo:  groupRepo,
		orderRepo:  orderRepo,
		memberRepo: memberRepo,
		chargeRepo: chargeRepo,
		flatFee:    membershipFlatFee,
	}
}

// snapshot reads the current state fresh on every call; settlement figures are never cached.
func (s *settlementService) snapshot() (settlement.Snapshot, error) {
	groups, err := s.groupRepo.FindAll(repository.GroupFilter{IncludeArchived: true})
	if err != nil {
		return settlement.Snapshot{}, fmt.Errorf("load groups: %w", err)
	}
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return settlement.Snapshot{}, fmt.Errorf("load orders: %w", err)
	}
	members, err := s.memberRepo.FindAll()
	if err != nil {
		return settlement.Snapshot{}, fmt.Errorf("load members: %w", err)
	}
	charges, err := s.chargeRepo.FindAll("")
	if err != nil {
		return settlement.Snapshot{}, fmt.Errorf("load misc charges: %w", err)
	}
	return settlement.Snapshot{
		Groups:      groups,
		Orders:      orders,
		Members:     members,
		MiscCharges: charges,
	}, nil
}

func (s *settlementService) MemberBill(memberID string) (*settlement.Bill, error) {
	snap, err := s.snapshot()
	if err != nil {
		logger.Error("Failed to load settlement snapshot", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}

	var member *model.Member
	for i := range snap.Members {
		if snap.Members[i].ID == memberID {
			member = &snap.Members[i]
			break
		}
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	bill := settlement.BillFor(*member, snap, s.flatFee)
	logger.Debug("Member bill computed", map[string]interface{}{
		"member_id": memberID,
		"groups":    len(bill.Groups),
		"total":     bill.Total,
	})
	return &bill, nil
}

func (s *settlementService) loadGroupState(groupID string) (*model.Group, []model.Order, []model.Member, error) {
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		return nil, nil, nil, translateGroupErr(err)
	}
	orders, err := s.orderRepo.FindByGroup(groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	members, err := s.memberRepo.FindAll()
	if err != nil {
		return nil, nil, nil, err
	}
	return group, orders, members, nil
}

func (s *settlementService) GroupSettlement(groupID string) (*GroupSettlement, error) {
	group, orders, members, err := s.loadGroupState(groupID)
	if err != nil {
		return nil, err
	}

	report := &GroupSettlement{
		GroupID:         group.ID,
		GroupTitle:      group.Title,
		PaymentStatus:   group.PaymentStatus,
		ExchangeRate:    group.ExchangeRate,
		ShippingPerUnit: settlement.ShippingSharePerUnit(*group, orders),
		Participants:    settlement.Participants(*group, orders),
		Units:           settlement.TotalUnits(*group, orders),
		Members:         settlement.MemberSummaries(*group, orders, members),
		Freight:         settlement.SummarizeFreight(*group, orders),
	}
	for _, m := range report.Members {
		report.Total += m.Total
	}
	return report, nil
}

func (s *settlementService) ExportGroup(groupID string) (*bytes.Buffer, string, error) {
	group, orders, members, err := s.loadGroupState(groupID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	err = export.WriteSettlement(&buf, export.Settlement{
		GroupTitle: group.Title,
		Rows:       settlement.ExportRows(*group, orders, members),
		Summaries:  settlement.MemberSummaries(*group, orders, members),
		Freight:    settlement.SummarizeFreight(*group, orders),
	})
	if err != nil {
		logger.Error("Failed to write settlement workbook", err, map[string]interface{}{
			"group_id": groupID,
		})
		return nil, "", err
	}

	logger.Info("Settlement workbook exported", map[string]interface{}{
		"group_id": groupID,
		"bytes":    buf.Len(),
	})
	return &buf, export.Filename(groupID), nil
}
