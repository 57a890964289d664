package repository

import (
	"time"

	"github.com/ikkim/gonggu-backend/internal/app/model"
	"github.com/ikkim/gonggu-backend/pkg/logger"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *model.Member) error
	FindByID(id string) (*model.Member, error)
	FindAll() ([]model.Member, error)
	UpdateMembership(id string, isMember bool, expiry *time.Time) error
	ExpireLapsed(now time.Time) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(member *model.Member) error {
	logger.Debug("Creating member in database", map[string]interface{}{
		"name": member.Name,
	})

	if err := r.db.Create(member).Error; err != nil {
		logger.Error("Failed to create member in database", err, map[string]interface{}{
			"name": member.Name,
		})
		return err
	}

	logger.Debug("Member created in database", map[string]interface{}{
		"member_id": member.ID,
		"name":      member.Name,
	})
	return nil
}

func (r *memberRepository) FindByID(id string) (*model.Member, error) {
	var member model.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		logger.Error("Failed to find member by ID in database", err, map[string]interface{}{
			"member_id": id,
		})
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAll() ([]model.Member, error) {
	logger.Debug("Finding all members in database")

	var members []model.Member
	if err := r.db.Order("name ASC").Find(&members).Error; err != nil {
		logger.Error("Failed to find members in database", err)
		return nil, err
	}

	logger.Debug("Members found in database", map[string]interface{}{
		"count": len(members),
	})
	return members, nil
}

func (r *memberRepository) UpdateMembership(id string, isMember bool, expiry *time.Time) error {
	logger.Debug("Updating membership in database", map[string]interface{}{
		"member_id": id,
		"is_member": isMember,
	})

	result := r.db.Model(&model.Member{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_member":     isMember,
			"member_expiry": expiry,
		})
	if result.Error != nil {
		logger.Error("Failed to update membership in database", result.Error, map[string]interface{}{
			"member_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExpireLapsed clears the subscription flag of every member whose expiry has passed.
func (r *memberRepository) ExpireLapsed(now time.Time) (int64, error) {
	result := r.db.Model(&model.Member{}).
		Where("is_member = ? AND member_expiry IS NOT NULL AND member_expiry < ?", true, now).
		Update("is_member", false)
	if result.Error != nil {
		logger.Error("Failed to expire lapsed memberships", result.Error)
		return 0, result.Error
	}

	logger.Debug("Lapsed memberships expired in database", map[string]interface{}{
		"count": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
