package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// TestGenerateAndParseToken 测试Token生成与解析
func TestGenerateAndParseToken(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "clerk_01", "前台小王")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.OperatorID)
	assert.Equal(t, "clerk_01", claims.Username)
	assert.Equal(t, "前台小王", claims.Nickname)
	assert.Equal(t, "bookshop", claims.Issuer)
}

// TestParseInvalidToken 测试非法Token解析
func TestParseInvalidToken(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	t.Run("乱码Token", func(t *testing.T) {
		_, err := m.ParseToken("not-a-token")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidToken))
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("other-secret", 2*time.Hour, 7*24*time.Hour)
		pair, err := other.GenerateToken(1, "clerk_01", "小王")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidToken))
	})

	t.Run("过期Token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute, 7*24*time.Hour)
		pair, err := expired.GenerateToken(1, "clerk_01", "小王")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeTokenExpired), "过期应返回专用错误码")
	})
}

// TestRefreshAccessToken 测试Token刷新
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "clerk_01", "前台小王")
	require.NoError(t, err)

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.OperatorID)
}
