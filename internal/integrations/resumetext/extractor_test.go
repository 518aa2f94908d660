package resumetext

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Go developer with SQL", Normalize("  Go\n\tdeveloper   with\r\nSQL ", 0))
	assert.Equal(t, "Привет", Normalize("Привет мир", 6))

	long := strings.Repeat("a", MaxRunes+10)
	assert.Len(t, Normalize(long, MaxRunes), MaxRunes)
}

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := NewDocconvExtractor().Extract(context.Background(), "cv.txt", []byte("hello"))
	assert.Error(t, err)
}
