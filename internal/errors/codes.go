package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY" // 관리자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE" // 범위 초과
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 공구 (GROUP_) ====================
	GroupNotFound             = "GROUP_NOT_FOUND"              // 공구 없음
	GroupArchived             = "GROUP_ARCHIVED"               // 보관된 공구 (주문 불가)
	GroupClosed               = "GROUP_CLOSED"                 // 마감된 공구 (주문 불가)
	GroupInvalidPaymentStatus = "GROUP_INVALID_PAYMENT_STATUS" // 잘못된 청구 단계
	GroupInvalidTracking      = "GROUP_INVALID_TRACKING"       // 잘못된 배송 추적 단계
	GroupInvalidStatus        = "GROUP_INVALID_STATUS"         // 잘못된 진행 상태

	// ==================== 주문 (ORDER_) ====================
	OrderItemNotInGroup   = "ORDER_ITEM_NOT_IN_GROUP" // 공구에 없는 상품
	OrderQuantityExceeded = "ORDER_QUANTITY_EXCEEDED" // 최대 수량 초과
	OrderInvalidQuantity  = "ORDER_INVALID_QUANTITY"  // 잘못된 수량
	OrderNotFound         = "ORDER_NOT_FOUND"         // 주문 내역 없음

	// ==================== 회원 (MEMBER_) ====================
	MemberNotFound = "MEMBER_NOT_FOUND" // 회원 없음

	// ==================== 기타 청구 (MISC_) ====================
	MiscChargeNotFound = "MISC_CHARGE_NOT_FOUND" // 청구 없음

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExportFailed  = "INTERNAL_EXPORT_FAILED"  // 엑셀 생성 실패
)
