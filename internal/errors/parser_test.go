package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		context string
		code    string
	}{
		{"nil", nil, "", InternalServerError},
		{"not found group", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), "find group", ResourceNotFound},
		{"sqlite unique", errors.New("UNIQUE constraint failed: members.name"), "create member", ResourceAlreadyExists},
		{"postgres unique", errors.New(`duplicate key value violates unique constraint "idx_orders_group_member"`), "", ResourceAlreadyExists},
		{"foreign key", errors.New("FOREIGN KEY constraint failed"), "delete group", ResourceConflict},
		{"other", errors.New("connection reset"), "update group", InternalDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ParseError(tt.err, tt.context).Code)
		})
	}
}

func TestParseError_Messages(t *testing.T) {
	assert.Equal(t, "공구를 찾을 수 없습니다", ParseError(gorm.ErrRecordNotFound, "group").Message)
	assert.Equal(t, "이미 사용 중인 이름입니다", ParseError(errors.New("UNIQUE constraint failed: members.name"), "").Message)
	assert.Equal(t, "수정 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요", ParseError(errors.New("boom"), "update").Message)
}
