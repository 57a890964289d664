package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 표준 에러 응답 구조
type ErrorResponse struct {
	Error   string            `json:"error"`            // 에러 코드 (codes.go)
	Message string            `json:"message"`          // 화면에 표시할 메시지
	Fields  map[string]string `json:"fields,omitempty"` // 입력 필드별 오류 (검증 실패 시)
}

// RespondWithError writes the error body and aborts the remaining handlers.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Forbidden 관리자 키 불일치
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "관리자만 사용할 수 있습니다"
	}
	RespondWithError(c, http.StatusForbidden, AuthzAdminOnly, message)
}

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

// Conflict 공구 상태 때문에 변경할 수 없는 요청
func Conflict(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusConflict, errorCode, message)
}

// RespondWithBindingError answers a request body that failed to bind. Validation failures
// list the offending JSON fields; malformed JSON gets the plain invalid-input body.
func RespondWithBindingError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:   ValidationInvalidInput,
		Message: "입력 정보가 올바르지 않습니다",
		Fields:  FieldErrors(err),
	})
}
