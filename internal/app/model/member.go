package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Member struct {
	ID           string            `gorm:"type:varchar(36);primarykey" json:"id"`              // 회원 ID
	Name         string            `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 표시 이름
	Password     string            `gorm:"type:varchar(100)" json:"-"`                         // 공유 비밀번호 (평문 비교)
	IsAdmin      bool              `gorm:"default:false" json:"is_admin"`                      // 관리자 여부
	IsMember     bool              `gorm:"default:false;index" json:"is_member"`               // 월회비 구독 여부
	MemberExpiry *time.Time        `json:"member_expiry,omitempty"`                            // 구독 만료 시각
	ReadHistory  datatypes.JSONMap `json:"read_history,omitempty"`                             // 항목 키 -> 마지막 읽은 시각
	CreatedAt    time.Time         `json:"created_at"`                                         // 생성 시각
	UpdatedAt    time.Time         `json:"updated_at"`                                         // 수정 시각
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
