package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/gonggu-backend/internal/app/service"
	apperrors "github.com/ikkim/gonggu-backend/internal/errors"
	"github.com/ikkim/gonggu-backend/internal/middleware"
)

// respondServiceError maps service sentinel errors onto the error-code response body.
// Anything unrecognised is parsed as a storage error.
func respondServiceError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, service.ErrGroupNotFound):
		apperrors.NotFound(c, apperrors.GroupNotFound, "공구를 찾을 수 없습니다")
	case errors.Is(err, service.ErrMemberNotFound):
		apperrors.NotFound(c, apperrors.MemberNotFound, "회원을 찾을 수 없습니다")
	case errors.Is(err, service.ErrMiscChargeNotFound):
		apperrors.NotFound(c, apperrors.MiscChargeNotFound, "청구 내역을 찾을 수 없습니다")
	case errors.Is(err, service.ErrOrderNotFound):
		apperrors.NotFound(c, apperrors.OrderNotFound, "주문 내역이 없습니다")
	case errors.Is(err, service.ErrGroupArchived):
		apperrors.Conflict(c, apperrors.GroupArchived, "보관된 공구는 주문을 변경할 수 없습니다")
	case errors.Is(err, service.ErrGroupClosed):
		apperrors.Conflict(c, apperrors.GroupClosed, "마감된 공구는 주문을 변경할 수 없습니다")
	case errors.Is(err, service.ErrItemNotInGroup):
		apperrors.BadRequest(c, apperrors.OrderItemNotInGroup, "공구에 없는 상품입니다")
	case errors.Is(err, service.ErrQuantityExceeded):
		apperrors.BadRequest(c, apperrors.OrderQuantityExceeded, "최대 주문 수량을 초과했습니다")
	case errors.Is(err, service.ErrInvalidQuantity):
		apperrors.BadRequest(c, apperrors.OrderInvalidQuantity, "수량이 올바르지 않습니다")
	case errors.Is(err, service.ErrInvalidPaymentStatus):
		apperrors.BadRequest(c, apperrors.GroupInvalidPaymentStatus, "청구 단계가 올바르지 않습니다")
	case errors.Is(err, service.ErrInvalidTrackingStatus):
		apperrors.BadRequest(c, apperrors.GroupInvalidTracking, "배송 추적 단계가 올바르지 않습니다")
	case errors.Is(err, service.ErrInvalidGroupStatus):
		apperrors.BadRequest(c, apperrors.GroupInvalidStatus, "공구 진행 상태가 올바르지 않습니다")
	case errors.Is(err, service.ErrInvalidGroupInput), errors.Is(err, service.ErrInvalidMiscCharge):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
	default:
		middleware.GetLoggerFromContext(c).Error("Request failed", err, map[string]interface{}{
			"context": context,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}

func respondInvalidInput(c *gin.Context, err error) {
	middleware.GetLoggerFromContext(c).Warn("Invalid request body", map[string]interface{}{
		"error": err.Error(),
	})
	apperrors.RespondWithBindingError(c, err)
}
