package repository

import (
	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/gorm"
)

// GroupFilter narrows group listings.
type GroupFilter struct {
	IncludeArchived bool
	Status          model.GroupStatus
}

type GroupRepository interface {
	Create(group *model.Group) error
	FindByID(id string) (*model.Group, error)
	FindAll(filter GroupFilter) ([]model.Group, error)
	UpdateFields(id string, fields map[string]interface{}) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) preloadItems() *gorm.DB {
	return r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

func (r *groupRepository) Create(group *model.Group) error {
	logger.Debug("Creating group in database", map[string]interface{}{
		"title":      group.Title,
		"item_count": len(group.Items),
	})

	for i := range group.Items {
		group.Items[i].Position = i
	}
	if err := r.db.Create(group).Error; err != nil {
		logger.Error("Failed to create group in database", err, map[string]interface{}{
			"title": group.Title,
		})
		return err
	}

	logger.Debug("Group created in database", map[string]interface{}{
		"group_id": group.ID,
		"title":    group.Title,
	})
	return nil
}

func (r *groupRepository) FindByID(id string) (*model.Group, error) {
	logger.Debug("Finding group by ID in database", map[string]interface{}{
		"group_id": id,
	})

	var group model.Group
	if err := r.preloadItems().First(&group, "id = ?", id).Error; err != nil {
		logger.Error("Failed to find group by ID in database", err, map[string]interface{}{
			"group_id": id,
		})
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) FindAll(filter GroupFilter) ([]model.Group, error) {
	logger.Debug("Finding groups in database", map[string]interface{}{
		"include_archived": filter.IncludeArchived,
		"status":           filter.Status,
	})

	query := r.preloadItems().Model(&model.Group{})
	if !filter.IncludeArchived {
		query = query.Where("archived = ?", false)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var groups []model.Group
	if err := query.Order("created_at DESC").Find(&groups).Error; err != nil {
		logger.Error("Failed to find groups in database", err)
		return nil, err
	}

	logger.Debug("Groups found in database", map[string]interface{}{
		"count": len(groups),
	})
	return groups, nil
}

// UpdateFields writes the given columns; a missing group is reported as gorm.ErrRecordNotFound.
func (r *groupRepository) UpdateFields(id string, fields map[string]interface{}) error {
	logger.Debug("Updating group in database", map[string]interface{}{
		"group_id": id,
		"fields":   len(fields),
	})

	result := r.db.Model(&model.Group{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		logger.Error("Failed to update group in database", result.Error, map[string]interface{}{
			"group_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.Debug("Group updated in database", map[string]interface{}{
		"group_id": id,
	})
	return nil
}
