package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GroupType string      // 공구 유형
type GroupStatus string    // 공구 진행 상태
type TrackingStatus string // 배송 추적 단계
type PaymentStatus string  // 청구 단계

const (
	GroupTypePreorder GroupType = "preorder" // 예약 공구
	GroupTypeInStock  GroupType = "in_stock" // 재고 공구
	GroupTypeRequest  GroupType = "request"  // 개인 요청

	GroupStatusForming         GroupStatus = "forming"          // 모집 중
	GroupStatusFormed          GroupStatus = "formed"           // 모집 완료
	GroupStatusFreightSettling GroupStatus = "freight_settling" // 국제 배송비 정산 중
	GroupStatusClosed          GroupStatus = "closed"           // 종료

	TrackingOrdered              TrackingStatus = "ordered"               // 주문 완료
	TrackingShippedDomestic      TrackingStatus = "shipped_domestic"      // 일본 내 발송
	TrackingArrivedWarehouse     TrackingStatus = "arrived_warehouse"     // 배송대행지 도착
	TrackingShippedInternational TrackingStatus = "shipped_international" // 국제 발송
	TrackingArrivedLocal         TrackingStatus = "arrived_local"         // 현지 도착
	TrackingCompleted            TrackingStatus = "completed"             // 배분 완료 (보관 처리)

	PaymentUnbilled            PaymentStatus = "unbilled"              // 미청구
	PaymentMerchBilling        PaymentStatus = "merch_billing"         // 상품 대금 청구 중
	PaymentFreightBilling      PaymentStatus = "freight_billing"       // 국제 배송비 청구 중
	PaymentMerchFreightBilling PaymentStatus = "merch_freight_billing" // 상품 대금 + 배송비 청구 중
	PaymentMerchSettled        PaymentStatus = "merch_settled"         // 상품 대금 정산 완료
	PaymentSettled             PaymentStatus = "settled"               // 전체 정산 완료
)

// TrackingCheckpoints lists tracking states in display order; the last one archives the group.
var TrackingCheckpoints = []TrackingStatus{
	TrackingOrdered,
	TrackingShippedDomestic,
	TrackingArrivedWarehouse,
	TrackingShippedInternational,
	TrackingArrivedLocal,
	TrackingCompleted,
}

func (t TrackingStatus) Valid() bool {
	return t.Index() >= 0
}

// Index returns the checkpoint position, or -1 for unknown values.
func (t TrackingStatus) Index() int {
	for i, c := range TrackingCheckpoints {
		if c == t {
			return i
		}
	}
	return -1
}

func (t TrackingStatus) Terminal() bool {
	return t == TrackingCheckpoints[len(TrackingCheckpoints)-1]
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentUnbilled, PaymentMerchBilling, PaymentFreightBilling,
		PaymentMerchFreightBilling, PaymentMerchSettled, PaymentSettled:
		return true
	}
	return false
}

func (s GroupStatus) Valid() bool {
	switch s {
	case GroupStatusForming, GroupStatusFormed, GroupStatusFreightSettling, GroupStatusClosed:
		return true
	}
	return false
}

func (t GroupType) Valid() bool {
	switch t {
	case GroupTypePreorder, GroupTypeInStock, GroupTypeRequest:
		return true
	}
	return false
}

// SecondPayment holds the inputs of the international freight top-up.
// Weights is keyed by item ID and filled in progressively as courier invoices arrive.
type SecondPayment struct {
	Weights       datatypes.JSONMap `json:"weights"`                          // 상품 ID -> 무게(kg)
	BoxWeight     float64           `gorm:"default:0" json:"box_weight"`      // 포장 박스 무게(kg)
	MinChargeDiff float64           `gorm:"default:0" json:"min_charge_diff"` // 최소 요금 차액 (현지 통화)
}

type Group struct {
	ID             string         `gorm:"type:varchar(36);primarykey" json:"id"`                           // 공구 ID
	Title          string         `gorm:"type:varchar(200);not null" json:"title"`                         // 제목
	Type           GroupType      `gorm:"type:varchar(20);default:'preorder'" json:"type"`                 // 공구 유형
	Items          []Item         `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"items"`     // 상품 목록
	ExchangeRate   float64        `gorm:"default:0" json:"exchange_rate"`                                  // 환율 (엔 -> 현지 통화)
	ShippingFee    float64        `gorm:"default:0" json:"shipping_fee"`                                   // 일본 내 배송비 (엔)
	Status         GroupStatus    `gorm:"type:varchar(20);default:'forming';index" json:"status"`          // 진행 상태
	TrackingStatus TrackingStatus `gorm:"type:varchar(30);default:'ordered'" json:"tracking_status"`       // 배송 추적 단계
	PaymentStatus  PaymentStatus  `gorm:"type:varchar(30);default:'unbilled';index" json:"payment_status"` // 청구 단계
	Archived       bool           `gorm:"default:false;index" json:"archived"`                             // 보관 여부
	SecondPayment  SecondPayment  `gorm:"embedded;embeddedPrefix:second_payment_" json:"second_payment"`   // 국제 배송비 정산 설정
	CreatedAt      time.Time      `json:"created_at"`                                                      // 생성 시각
	UpdatedAt      time.Time      `json:"updated_at"`                                                      // 수정 시각
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                                  // 삭제 시각(소프트 삭제)
}

func (Group) TableName() string {
	return "group_buys"
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	ensureID(&g.ID)
	return nil
}

// FindItem returns the item with the given ID, or nil.
func (g *Group) FindItem(itemID string) *Item {
	for i := range g.Items {
		if g.Items[i].ID == itemID {
			return &g.Items[i]
		}
	}
	return nil
}

// AcceptsOrders reports whether members may still create or change orders.
func (g *Group) AcceptsOrders() bool {
	return !g.Archived && g.Status != GroupStatusClosed
}

type Item struct {
	ID          string  `gorm:"type:varchar(36);primarykey" json:"id"`           // 상품 ID
	GroupID     string  `gorm:"type:varchar(36);not null;index" json:"group_id"` // 공구 ID
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`          // 상품명
	Spec        string  `gorm:"type:varchar(200)" json:"spec"`                   // 규격/옵션
	Price       float64 `gorm:"not null" json:"price"`                           // 단가 (엔)
	MaxQuantity int     `gorm:"default:0" json:"max_quantity"`                   // 1인 최대 수량 (0 = 제한 없음)
	Position    int     `gorm:"default:0" json:"position"`                       // 표시 순서
}

func (Item) TableName() string {
	return "group_buy_items"
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}
