package resumetext

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
)

// MaxRunes - предел текста резюме, передаваемого в сценарий автоматизации
const MaxRunes = 20000

// Extractor достает текст из файла резюме
type Extractor interface {
	Extract(ctx context.Context, filename string, content []byte) (string, error)
}

// DocconvExtractor - PDF/DOC/DOCX через docconv
type DocconvExtractor struct {
	maxRunes int
}

func NewDocconvExtractor() *DocconvExtractor {
	return &DocconvExtractor{maxRunes: MaxRunes}
}

func (e *DocconvExtractor) Extract(ctx context.Context, filename string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	mimeType := docconv.MimeTypeByExtension(filename)
	switch ext {
	case ".pdf", ".doc", ".docx":
	default:
		return "", fmt.Errorf("unsupported resume type: %s", ext)
	}

	res, err := docconv.Convert(bytes.NewReader(content), mimeType, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert resume: %w", err)
	}
	return Normalize(res.Body, e.maxRunes), nil
}

// Normalize схлопывает пробелы и обрезает текст до maxRunes символов
func Normalize(text string, maxRunes int) string {
	text = strings.Join(strings.Fields(text), " ")
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes])
}
