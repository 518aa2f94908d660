package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// ImageSize - ограничивающий прямоугольник
type ImageSize struct {
	Name   string
	Width  int
	Height int
}

var SizeAvatar = ImageSize{Name: "avatar", Width: 512, Height: 512}

// Processor handles image processing operations
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Result - готовое изображение в JPEG
type Result struct {
	Data   []byte
	Width  int
	Height int
}

// ProcessAvatar декодирует jpeg/png/gif, вписывает в 512x512 и кодирует в JPEG
func (p *Processor) ProcessAvatar(reader io.Reader) (*Result, error) {
	return p.Fit(reader, SizeAvatar)
}

// Fit уменьшает изображение, сохраняя пропорции; маленькие изображения не растягиваются
func (p *Processor) Fit(reader io.Reader, size ImageSize) (*Result, error) {
	img, format, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	switch format {
	case "jpeg", "png", "gif":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	w, h := fitDimensions(img.Bounds().Dx(), img.Bounds().Dy(), size.Width, size.Height)

	// Белый фон вместо прозрачности: JPEG без альфа-канала
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return &Result{Data: buf.Bytes(), Width: w, Height: h}, nil
}

func fitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	ratio := float64(width) / float64(height)
	newWidth, newHeight := maxWidth, maxHeight
	if float64(maxWidth)/float64(maxHeight) > ratio {
		newWidth = int(float64(maxHeight) * ratio)
	} else {
		newHeight = int(float64(maxWidth) / ratio)
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight
}
