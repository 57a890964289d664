package service

import (
	"errors"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrItemNotInGroup   = errors.New("item does not belong to group")
	ErrQuantityExceeded = errors.New("quantity exceeds item maximum")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrOrderNotFound    = errors.New("order not found")
)

type OrderLineInput struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type OrderService interface {
	// PlaceOrder replaces the member's order in the group. A nil order means the
	// request held no positive quantity and any stored order was removed.
	PlaceOrder(groupID, memberID string, lines []OrderLineInput) (*model.Order, error)
	ListGroupOrders(groupID string) ([]model.Order, error)
	GetOrder(groupID, memberID string) (*model.Order, error)
	ListMemberOrders(memberID string) ([]model.Order, error)
}

type orderService struct {
	orderRepo  repository.OrderRepository
	groupRepo  repository.GroupRepository
	memberRepo repository.MemberRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	groupRepo repository.GroupRepository,
	memberRepo repository.MemberRepository,
) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
	}
}

func (s *orderService) loadGroup(groupID string) (*model.Group, error) {
	group, err := s.groupRepo.FindByID(groupID)
	if err != nil {
		return nil, translateGroupErr(err)
	}
	return group, nil
}

func (s *orderService) PlaceOrder(groupID, memberID string, lines []OrderLineInput) (*model.Order, error) {
	group, err := s.loadGroup(groupID)
	if err != nil {
		return nil, err
	}
	if group.Archived {
		return nil, ErrGroupArchived
	}
	if !group.AcceptsOrders() {
		return nil, ErrGroupClosed
	}
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	// repeated items are folded into one line, keeping first-seen order
	quantities := make(map[string]int)
	itemOrder := make([]string, 0, len(lines))
	for _, in := range lines {
		if in.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		if group.FindItem(in.ItemID) == nil {
			return nil, ErrItemNotInGroup
		}
		if _, seen := quantities[in.ItemID]; !seen {
			itemOrder = append(itemOrder, in.ItemID)
		}
		quantities[in.ItemID] += in.Quantity
	}

	order := &model.Order{GroupID: groupID, MemberID: memberID}
	for _, itemID := range itemOrder {
		qty := quantities[itemID]
		if qty == 0 {
			continue
		}
		item := group.FindItem(itemID)
		if item.MaxQuantity > 0 && qty > item.MaxQuantity {
			logger.Warn("Order quantity exceeds item maximum", map[string]interface{}{
				"group_id":     groupID,
				"member_id":    memberID,
				"item_id":      itemID,
				"quantity":     qty,
				"max_quantity": item.MaxQuantity,
			})
			return nil, ErrQuantityExceeded
		}
		order.Lines = append(order.Lines, model.OrderLine{
			ItemID:   itemID,
			Price:    item.Price,
			Quantity: qty,
		})
	}

	if order.TotalQuantity() == 0 {
		if err := s.orderRepo.DeleteByPair(groupID, memberID); err != nil {
			return nil, err
		}
		logger.Info("Empty order removed", map[string]interface{}{
			"group_id":  groupID,
			"member_id": memberID,
		})
		return nil, nil
	}

	if err := s.orderRepo.UpsertByPair(order); err != nil {
		logger.Error("Failed to place order", err, map[string]interface{}{
			"group_id":  groupID,
			"member_id": memberID,
		})
		return nil, err
	}

	logger.Info("Order placed", map[string]interface{}{
		"order_id":  order.ID,
		"group_id":  groupID,
		"member_id": memberID,
		"units":     order.TotalQuantity(),
	})
	return order, nil
}

func (s *orderService) ListGroupOrders(groupID string) ([]model.Order, error) {
	if _, err := s.loadGroup(groupID); err != nil {
		return nil, err
	}
	return s.orderRepo.FindByGroup(groupID)
}

func (s *orderService) GetOrder(groupID, memberID string) (*model.Order, error) {
	if _, err := s.loadGroup(groupID); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.FindByPair(groupID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to get order", err, map[string]interface{}{
			"group_id":  groupID,
			"member_id": memberID,
		})
		return nil, err
	}
	return order, nil
}

// ListMemberOrders returns the member's orders across every group, archived ones included.
func (s *orderService) ListMemberOrders(memberID string) ([]model.Order, error) {
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.orderRepo.FindByMember(memberID)
}
