package model

import (
	"time"

	"gorm.io/gorm"
)

// Order holds one member's lines within one group. The (group_id, member_id) pair is unique.
type Order struct {
	ID        string      `gorm:"type:varchar(36);primarykey" json:"id"`                                          // 주문 ID
	GroupID   string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_orders_group_member" json:"group_id"`  // 공구 ID
	MemberID  string      `gorm:"type:varchar(36);not null;uniqueIndex:idx_orders_group_member" json:"member_id"` // 주문 회원 ID
	Lines     []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"lines"`                    // 주문 항목 목록
	CreatedAt time.Time   `json:"created_at"`                                                                     // 생성 시각
	UpdatedAt time.Time   `json:"updated_at"`                                                                     // 수정 시각
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	ensureID(&o.ID)
	return nil
}

// TotalQuantity sums positive line quantities.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, line := range o.Lines {
		if line.Quantity > 0 {
			total += line.Quantity
		}
	}
	return total
}

type OrderLine struct {
	ID       uint    `gorm:"primarykey" json:"id"`                            // 주문 항목 ID
	OrderID  string  `gorm:"type:varchar(36);not null;index" json:"order_id"` // 주문 ID
	ItemID   string  `gorm:"type:varchar(36);not null" json:"item_id"`        // 상품 ID
	Price    float64 `gorm:"not null" json:"price"`                           // 주문 시점 단가 (엔)
	Quantity int     `gorm:"not null" json:"quantity"`                        // 수량
	Position int     `gorm:"default:0" json:"position"`                       // 표시 순서
}

func (OrderLine) TableName() string {
	return "order_lines"
}
