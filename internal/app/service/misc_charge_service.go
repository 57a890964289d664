package service

import (
	"errors"
	"strings"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/internal/app/repository"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrMiscChargeNotFound = errors.New("misc charge not found")
	ErrInvalidMiscCharge  = errors.New("invalid misc charge")
)

type CreateMiscChargeInput struct {
	MemberID string  `json:"member_id" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"gt=0"`
}

type MiscChargeService interface {
	CreateCharge(input CreateMiscChargeInput) (*model.MiscCharge, error)
	MarkPaid(id string) (*model.MiscCharge, error)
	ListCharges(memberID string) ([]model.MiscCharge, error)
}

type miscChargeService struct {
	chargeRepo repository.MiscChargeRepository
	memberRepo repository.MemberRepository
}

func NewMiscChargeService(chargeRepo repository.MiscChargeRepository, memberRepo repository.MemberRepository) MiscChargeService {
	return &miscChargeService{
		chargeRepo: chargeRepo,
		memberRepo: memberRepo,
	}
}

func (s *miscChargeService) CreateCharge(input CreateMiscChargeInput) (*model.MiscCharge, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Amount <= 0 {
		return nil, ErrInvalidMiscCharge
	}
	if _, err := s.memberRepo.FindByID(input.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	charge := &model.MiscCharge{
		MemberID: input.MemberID,
		Title:    title,
		Amount:   input.Amount,
		Status:   model.MiscChargeUnpaid,
	}
	if err := s.chargeRepo.Create(charge); err != nil {
		return nil, err
	}

	logger.Info("Misc charge created", map[string]interface{}{
		"charge_id": charge.ID,
		"member_id": charge.MemberID,
		"amount":    charge.Amount,
	})
	return charge, nil
}

// MarkPaid settles the charge. Paying an already paid charge is a no-op.
func (s *miscChargeService) MarkPaid(id string) (*model.MiscCharge, error) {
	if err := s.chargeRepo.UpdateStatus(id, model.MiscChargePaid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMiscChargeNotFound
		}
		return nil, err
	}

	logger.Info("Misc charge paid", map[string]interface{}{
		"charge_id": id,
	})
	return s.chargeRepo.FindByID(id)
}

func (s *miscChargeService) ListCharges(memberID string) ([]model.MiscCharge, error) {
	return s.chargeRepo.FindAll(memberID)
}
