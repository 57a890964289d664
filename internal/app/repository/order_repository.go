package repository

import (
	"errors"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	UpsertByPair(order *model.Order) error
	DeleteByPair(groupID, memberID string) error
	FindByPair(groupID, memberID string) (*model.Order, error)
	FindByGroup(groupID string) ([]model.Order, error)
	FindByMember(memberID string) ([]model.Order, error)
	FindAll() ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) preloadLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", func(ldb *gorm.DB) *gorm.DB {
		return ldb.Order("position ASC")
	})
}

// UpsertByPair stores the order as the single order of its (group, member) pair,
// replacing the lines of any existing one.
func (r *orderRepository) UpsertByPair(order *model.Order) error {
	logger.Debug("Upserting order in database", map[string]interface{}{
		"group_id":  order.GroupID,
		"member_id": order.MemberID,
		"lines":     len(order.Lines),
	})

	lines := order.Lines
	order.ID = ""
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "member_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(order).Error; err != nil {
			return err
		}

		// the conflict path keeps the stored ID, not the one generated for this insert
		var stored model.Order
		if err := tx.Where("group_id = ? AND member_id = ?", order.GroupID, order.MemberID).
			First(&stored).Error; err != nil {
			return err
		}
		order.ID = stored.ID
		order.CreatedAt = stored.CreatedAt

		if err := tx.Where("order_id = ?", stored.ID).Delete(&model.OrderLine{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].OrderID = stored.ID
			lines[i].Position = i
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
	order.Lines = lines
	if err != nil {
		logger.Error("Failed to upsert order in database", err, map[string]interface{}{
			"group_id":  order.GroupID,
			"member_id": order.MemberID,
		})
		return err
	}

	logger.Debug("Order upserted in database", map[string]interface{}{
		"order_id":  order.ID,
		"group_id":  order.GroupID,
		"member_id": order.MemberID,
	})
	return nil
}

// DeleteByPair removes the pair's order and its lines. Deleting a missing order is not an error.
func (r *orderRepository) DeleteByPair(groupID, memberID string) error {
	logger.Debug("Deleting order in database", map[string]interface{}{
		"group_id":  groupID,
		"member_id": memberID,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var stored model.Order
		err := tx.Where("group_id = ? AND member_id = ?", groupID, memberID).First(&stored).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", stored.ID).Delete(&model.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&stored).Error
	})
	if err != nil {
		logger.Error("Failed to delete order in database", err, map[string]interface{}{
			"group_id":  groupID,
			"member_id": memberID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindByPair(groupID, memberID string) (*model.Order, error) {
	var order model.Order
	if err := r.preloadLines(r.db).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByGroup(groupID string) ([]model.Order, error) {
	logger.Debug("Finding orders by group ID in database", map[string]interface{}{
		"group_id": groupID,
	})

	var orders []model.Order
	if err := r.preloadLines(r.db).Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by group ID in database", err, map[string]interface{}{
			"group_id": groupID,
		})
		return nil, err
	}

	logger.Debug("Orders found by group ID in database", map[string]interface{}{
		"group_id": groupID,
		"count":    len(orders),
	})
	return orders, nil
}

func (r *orderRepository) FindByMember(memberID string) ([]model.Order, error) {
	var orders []model.Order
	if err := r.preloadLines(r.db).Where("member_id = ?", memberID).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders by member ID in database", err, map[string]interface{}{
			"member_id": memberID,
		})
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindAll() ([]model.Order, error) {
	var orders []model.Order
	if err := r.preloadLines(r.db).Order("created_at ASC").Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders in database", err)
		return nil, err
	}
	return orders, nil
}
