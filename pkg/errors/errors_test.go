package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWrapPersistence 测试持久化错误包装
func TestWrapPersistence(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := WrapPersistence(cause, "图书写入失败")

	assert.Equal(t, ErrCodePersistence, err.Code)
	assert.Contains(t, err.Error(), "图书写入失败")
	assert.True(t, stderrors.Is(err, cause), "Unwrap应暴露底层错误")
}

// TestIsCode 测试错误码判断
func TestIsCode(t *testing.T) {
	err := New(ErrCodeDuplicateKey, "同名图书已存在")

	assert.True(t, IsCode(err, ErrCodeDuplicateKey))
	assert.False(t, IsCode(err, ErrCodeNotFound))
	assert.False(t, IsCode(stderrors.New("plain"), ErrCodeDuplicateKey), "非AppError不匹配任何码")
	assert.False(t, IsCode(nil, ErrCodeDuplicateKey))
}

// TestGetAppError 测试错误提取
func TestGetAppError(t *testing.T) {
	t.Run("AppError原样提取", func(t *testing.T) {
		orig := New(ErrCodeNotFound, "图书不存在")
		got := GetAppError(orig)
		assert.Same(t, orig, got)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		got := GetAppError(stderrors.New("boom"))
		assert.Equal(t, ErrCodeInternal, got.Code)
	})
}
