package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken("uuid-123", "Ivanov I.I.", "operator", []string{"logitrans.operator.full-permit"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "uuid-123", claims["uuid"])
	assert.Equal(t, "Ivanov I.I.", claims["fio"])
	assert.Equal(t, "operator", claims["position"])

	perms, ok := claims["permissions"].([]interface{})
	require.True(t, ok)
	require.Len(t, perms, 1)
	assert.Equal(t, "logitrans.operator.full-permit", perms[0])
}

func TestParseTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken("uuid-123", "Ivanov I.I.", "operator", nil)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := IssueToken("uuid-123", "Ivanov I.I.", "operator", nil)
	assert.Error(t, err)
}
