package repository

import (
	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/gorm"
)

type MiscChargeRepository interface {
	Create(charge *model.MiscCharge) error
	FindByID(id string) (*model.MiscCharge, error)
	FindAll(memberID string) ([]model.MiscCharge, error)
	UpdateStatus(id string, status model.MiscChargeStatus) error
}

type miscChargeRepository struct {
	db *gorm.DB
}

func NewMiscChargeRepository(db *gorm.DB) MiscChargeRepository {
	return &miscChargeRepository{db: db}
}

func (r *miscChargeRepository) Create(charge *model.MiscCharge) error {
	logger.Debug("Creating misc charge in database", map[string]interface{}{
		"member_id": charge.MemberID,
		"amount":    charge.Amount,
	})

	if err := r.db.Create(charge).Error; err != nil {
		logger.Error("Failed to create misc charge in database", err, map[string]interface{}{
			"member_id": charge.MemberID,
		})
		return err
	}
	return nil
}

func (r *miscChargeRepository) FindByID(id string) (*model.MiscCharge, error) {
	var charge model.MiscCharge
	if err := r.db.First(&charge, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &charge, nil
}

// FindAll lists charges, restricted to one member when memberID is set.
func (r *miscChargeRepository) FindAll(memberID string) ([]model.MiscCharge, error) {
	query := r.db.Model(&model.MiscCharge{})
	if memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}

	var charges []model.MiscCharge
	if err := query.Order("created_at ASC").Find(&charges).Error; err != nil {
		logger.Error("Failed to find misc charges in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return charges, nil
}

func (r *miscChargeRepository) UpdateStatus(id string, status model.MiscChargeStatus) error {
	logger.Debug("Updating misc charge status in database", map[string]interface{}{
		"charge_id": id,
		"status":    status,
	})

	result := r.db.Model(&model.MiscCharge{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		logger.Error("Failed to update misc charge status in database", result.Error, map[string]interface{}{
			"charge_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
