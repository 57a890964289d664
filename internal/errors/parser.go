package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError 저장소 에러를 사용자 친화적인 코드와 메시지로 변환
// 드라이버 원문은 노출하지 않는다
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "서버 오류가 발생했습니다",
		}
	}

	errLower := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// postgres 23505 / sqlite UNIQUE constraint failed
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		if strings.Contains(errLower, "name") {
			return ErrorInfo{Code: ResourceAlreadyExists, Message: "이미 사용 중인 이름입니다"}
		}
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "이미 존재하는 데이터입니다"}
	}

	if strings.Contains(errLower, "foreign key constraint") {
		return ErrorInfo{Code: ResourceConflict, Message: "연결된 데이터가 있어 처리할 수 없습니다"}
	}

	if strings.Contains(errLower, "not-null constraint") || strings.Contains(errLower, "not null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "필수 항목이 누락되었습니다"}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: getDefaultErrorMessage(context),
	}
}

// getNotFoundMessage context에 따른 Not Found 메시지
func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "group"):
		return "공구를 찾을 수 없습니다"
	case strings.Contains(contextLower, "member"):
		return "회원을 찾을 수 없습니다"
	case strings.Contains(contextLower, "order"):
		return "주문을 찾을 수 없습니다"
	case strings.Contains(contextLower, "charge"):
		return "청구 내역을 찾을 수 없습니다"
	}
	return "요청한 데이터를 찾을 수 없습니다"
}

// getDefaultErrorMessage context에 따른 기본 에러 메시지
func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "등록 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	case strings.Contains(contextLower, "update"):
		return "수정 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	case strings.Contains(contextLower, "delete"):
		return "삭제 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
	}
	return "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요"
}

// ParseAndRespond 에러를 파싱하여 응답 반환 (헬퍼 함수)
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
