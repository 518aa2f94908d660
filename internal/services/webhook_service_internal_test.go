package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasJSONValue(t *testing.T) {
	for _, raw := range []string{"", "  ", "null", `""`, "false", "0"} {
		assert.False(t, hasJSONValue(json.RawMessage(raw)), "%q", raw)
	}
	for _, raw := range []string{`{"score":1}`, `"text"`, "true", "7", `[1]`, "{}", "[]"} {
		assert.True(t, hasJSONValue(json.RawMessage(raw)), "%q", raw)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"cv.pdf":             "cv.pdf",
		"My CV (final).docx": "My_CV__final_.docx",
		"../../secret.pdf":   "secret.pdf",
		`C:\Users\me\cv.pdf`: "cv.pdf",
		"резюме.pdf":         "______.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}
