package model

import (
	"time"

	"gorm.io/gorm"
)

type MiscChargeStatus string // 기타 청구 상태

const (
	MiscChargeUnpaid MiscChargeStatus = "unpaid" // 미납
	MiscChargePaid   MiscChargeStatus = "paid"   // 납부 완료
)

// MiscCharge is an ad-hoc amount billed to one member outside any group.
type MiscCharge struct {
	ID        string           `gorm:"type:varchar(36);primarykey" json:"id"`                 // 청구 ID
	MemberID  string           `gorm:"type:varchar(36);not null;index" json:"member_id"`      // 대상 회원 ID
	Title     string           `gorm:"type:varchar(200);not null" json:"title"`               // 청구 제목
	Amount    float64          `gorm:"not null" json:"amount"`                                // 금액 (현지 통화)
	Status    MiscChargeStatus `gorm:"type:varchar(20);default:'unpaid';index" json:"status"` // 납부 상태
	CreatedAt time.Time        `json:"created_at"`                                            // 생성 시각
	UpdatedAt time.Time        `json:"updated_at"`                                            // 수정 시각
}

func (MiscCharge) TableName() string {
	return "misc_charges"
}

func (c *MiscCharge) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	if c.Status == "" {
		c.Status = MiscChargeUnpaid
	}
	return nil
}
