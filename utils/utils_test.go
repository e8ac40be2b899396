package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRequestBodyMasksPasswords(t *testing.T) {
	in := `{"phone":"+79991112233","password":"hunter2"}`
	out := sanitizeRequestBody(in)
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "+79991112233")

	in = `{"new_password": "changed-it"}`
	out = sanitizeRequestBody(in)
	assert.NotContains(t, out, "changed-it")
}

func TestSanitizeRequestBodyTruncatesLargeBodies(t *testing.T) {
	in := strings.Repeat("a", 64*1024)
	out := sanitizeRequestBody(in)
	assert.Less(t, len(out), len(in))
}
