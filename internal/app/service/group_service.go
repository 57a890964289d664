package service

import (
	"errors"
	"strings"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/internal/settlement"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrGroupNotFound         = errors.New("group not found")
	ErrGroupArchived         = errors.New("group is archived")
	ErrGroupClosed           = errors.New("group is closed")
	ErrInvalidGroupInput     = errors.New("invalid group input")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrInvalidTrackingStatus = errors.New("invalid tracking status")
	ErrInvalidGroupStatus    = errors.New("invalid group status")
)

type ItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Spec        string  `json:"spec"`
	Price       float64 `json:"price" binding:"gte=0"`
	MaxQuantity int     `json:"max_quantity" binding:"gte=0"`
}

type CreateGroupInput struct {
	Title        string          `json:"title" binding:"required"`
	Type         model.GroupType `json:"type"`
	ExchangeRate float64         `json:"exchange_rate" binding:"gte=0"`
	ShippingFee  float64         `json:"shipping_fee" binding:"gte=0"`
	Items        []ItemInput     `json:"items" binding:"required,min=1,dive"`
}

// SecondPaymentUpdate merges into the stored freight settings. Weights are merged key by key;
// a null weight removes the item's entry.
type SecondPaymentUpdate struct {
	Weights       map[string]interface{} `json:"weights"`
	BoxWeight     *float64               `json:"box_weight"`
	MinChargeDiff *float64               `json:"min_charge_diff"`
}

// SettingsUpdate carries the optional group settings an admin may change. Nil fields are left as is.
type SettingsUpdate struct {
	ExchangeRate  *float64             `json:"exchange_rate"`
	ShippingFee   *float64             `json:"shipping_fee"`
	SecondPayment *SecondPaymentUpdate `json:"second_payment"`
	PaymentStatus *model.PaymentStatus `json:"payment_status"`
}

type GroupService interface {
	CreateGroup(input CreateGroupInput) (*model.Group, error)
	GetGroup(id string) (*model.Group, error)
	ListGroups(includeArchived bool, status model.GroupStatus) ([]model.Group, error)
	UpdateSettings(id string, update SettingsUpdate) (*model.Group, error)
	AdvanceTracking(id string, status model.TrackingStatus) (*model.Group, error)
	UpdateStatus(id string, status model.GroupStatus) (*model.Group, error)
}

type groupService struct {
	groupRepo repository.GroupRepository
}

func NewGroupService(groupRepo repository.GroupRepository) GroupService {
	return &groupService{groupRepo: groupRepo}
}

func (s *groupService) CreateGroup(input CreateGroupInput) (*model.Group, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || len(input.Items) == 0 || input.ExchangeRate < 0 || input.ShippingFee < 0 {
		return nil, ErrInvalidGroupInput
	}
	groupType := input.Type
	if groupType == "" {
		groupType = model.GroupTypePreorder
	}
	if !groupType.Valid() {
		return nil, ErrInvalidGroupInput
	}

	group := &model.Group{
		Title:          title,
		Type:           groupType,
		ExchangeRate:   input.ExchangeRate,
		ShippingFee:    input.ShippingFee,
		Status:         model.GroupStatusForming,
		TrackingStatus: model.TrackingOrdered,
		PaymentStatus:  model.PaymentUnbilled,
		SecondPayment:  model.SecondPayment{Weights: datatypes.JSONMap{}},
	}
	for _, in := range input.Items {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Price < 0 || in.MaxQuantity < 0 {
			return nil, ErrInvalidGroupInput
		}
		group.Items = append(group.Items, model.Item{
			Name:        name,
			Spec:        strings.TrimSpace(in.Spec),
			Price:       in.Price,
			MaxQuantity: in.MaxQuantity,
		})
	}

	if err := s.groupRepo.Create(group); err != nil {
		logger.Error("Failed to create group", err, map[string]interface{}{
			"title": title,
		})
		return nil, err
	}

	logger.Info("Group created", map[string]interface{}{
		"group_id": group.ID,
		"title":    group.Title,
		"items":    len(group.Items),
	})
	return group, nil
}

func (s *groupService) GetGroup(id string) (*model.Group, error) {
	group, err := s.groupRepo.FindByID(id)
	if err != nil {
		return nil, translateGroupErr(err)
	}
	return group, nil
}

func translateGroupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrGroupNotFound
	}
	return err
}

// ListGroups lists groups, optionally narrowed to one status. An empty status matches all.
func (s *groupService) ListGroups(includeArchived bool, status model.GroupStatus) ([]model.Group, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidGroupStatus
	}
	return s.groupRepo.FindAll(repository.GroupFilter{
		IncludeArchived: includeArchived,
		Status:          status,
	})
}

func (s *groupService) UpdateSettings(id string, update SettingsUpdate) (*model.Group, error) {
	group, err := s.GetGroup(id)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if update.ExchangeRate != nil {
		if *update.ExchangeRate < 0 {
			return nil, ErrInvalidGroupInput
		}
		fields["exchange_rate"] = *update.ExchangeRate
	}
	if update.ShippingFee != nil {
		if *update.ShippingFee < 0 {
			return nil, ErrInvalidGroupInput
		}
		fields["shipping_fee"] = *update.ShippingFee
	}
	if update.PaymentStatus != nil {
		if !update.PaymentStatus.Valid() {
			return nil, ErrInvalidPaymentStatus
		}
		fields["payment_status"] = *update.PaymentStatus
	}
	if sp := update.SecondPayment; sp != nil {
		if sp.Weights != nil {
			weights, err := mergeWeights(group.SecondPayment.Weights, sp.Weights)
			if err != nil {
				return nil, err
			}
			fields["second_payment_weights"] = weights
		}
		if sp.BoxWeight != nil {
			if *sp.BoxWeight < 0 {
				return nil, ErrInvalidGroupInput
			}
			fields["second_payment_box_weight"] = *sp.BoxWeight
		}
		if sp.MinChargeDiff != nil {
			if *sp.MinChargeDiff < 0 {
				return nil, ErrInvalidGroupInput
			}
			fields["second_payment_min_charge_diff"] = *sp.MinChargeDiff
		}
	}
	if len(fields) == 0 {
		return group, nil
	}

	if err := s.groupRepo.UpdateFields(id, fields); err != nil {
		return nil, translateGroupErr(err)
	}

	logger.Info("Group settings updated", map[string]interface{}{
		"group_id": id,
		"fields":   len(fields),
	})
	return s.GetGroup(id)
}

// mergeWeights overlays updates on the stored weights. Values are kept as sent and coerced when
// freight is computed; negative weights are rejected.
func mergeWeights(current datatypes.JSONMap, updates map[string]interface{}) (datatypes.JSONMap, error) {
	merged := datatypes.JSONMap{}
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range updates {
		if v == nil {
			delete(merged, k)
			continue
		}
		if settlement.SafeNumber(v) < 0 {
			return nil, ErrInvalidGroupInput
		}
		merged[k] = v
	}
	return merged, nil
}

// AdvanceTracking moves the group to the given checkpoint. Reaching the terminal checkpoint
// archives the group; archiving is never undone.
func (s *groupService) AdvanceTracking(id string, status model.TrackingStatus) (*model.Group, error) {
	if !status.Valid() {
		return nil, ErrInvalidTrackingStatus
	}
	if _, err := s.GetGroup(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"tracking_status": status}
	if status.Terminal() {
		fields["archived"] = true
	}
	if err := s.groupRepo.UpdateFields(id, fields); err != nil {
		return nil, err
	}

	logger.Info("Group tracking advanced", map[string]interface{}{
		"group_id":        id,
		"tracking_status": status,
		"archived":        status.Terminal(),
	})
	return s.GetGroup(id)
}

func (s *groupService) UpdateStatus(id string, status model.GroupStatus) (*model.Group, error) {
	if !status.Valid() {
		return nil, ErrInvalidGroupStatus
	}
	if _, err := s.GetGroup(id); err != nil {
		return nil, err
	}

	if err := s.groupRepo.UpdateFields(id, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}

	logger.Info("Group status updated", map[string]interface{}{
		"group_id": id,
		"status":   status,
	})
	return s.GetGroup(id)
}
