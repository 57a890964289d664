package errors

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// 검증 오류에 구조체 필드명 대신 JSON 키를 사용
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// FieldErrors maps each failed field of a binding error to a short message.
// Returns nil for errors that are not validation failures.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return fields
}

// fieldPath drops the request struct name: "PlaceOrderRequest.lines[0].item_id" -> "lines[0].item_id"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "필수 항목입니다"
	case "gt":
		return fe.Param() + "보다 커야 합니다"
	case "gte":
		return fe.Param() + " 이상이어야 합니다"
	case "min":
		return "최소 " + fe.Param() + "개 이상 필요합니다"
	default:
		return "올바르지 않은 값입니다"
	}
}
