package assets

import (
	"bytes"
	"hash/fnv"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"fuego-be/internal/logger"
)

const (
	jpegQuality = 75
	maxWidthCap = 2000

	// Placeholder dimensions follow the catalog tile aspect.
	placeholderW = 520
	placeholderH = 780
)

// Service serves product images from a directory. A missing or
// unreadable file never fails the request: the service answers with a
// generated placeholder instead.
type Service struct {
	dir string
}

func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// Image returns the encoded image bytes and content type for name.
// maxWidth, when positive, bounds the output width; oversized images
// are downscaled and re-encoded as JPEG, images within the bound are
// served untouched.
func (s *Service) Image(name string, maxWidth int) ([]byte, string) {
	// The name is a bare file name; strip any path the client sent.
	name = filepath.Base(name)

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		logger.L().Warn("image not readable, serving placeholder",
			zap.String("name", name), zap.Error(err))
		return s.Placeholder(name)
	}

	if maxWidth > 0 {
		if maxWidth > maxWidthCap {
			maxWidth = maxWidthCap
		}
		if resized, ok := resize(data, maxWidth); ok {
			return resized, "image/jpeg"
		}
	}

	return data, contentType(name)
}

// Placeholder generates a deterministic stand-in image for name: the
// same name always yields the same flat color.
func (s *Service) Placeholder(name string) ([]byte, string) {
	img := imaging.New(placeholderW, placeholderH, placeholderColor(name))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Encoding a uniform NRGBA image cannot fail in practice.
		logger.L().Error("placeholder encode failed", zap.Error(err))
		return nil, "image/png"
	}
	return buf.Bytes(), "image/png"
}

func placeholderColor(name string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	v := h.Sum32()

	// Keep the channels in a muted range so any label laid on top stays
	// legible.
	return color.NRGBA{
		R: uint8(80 + v%120),
		G: uint8(80 + (v>>8)%120),
		B: uint8(80 + (v>>16)%120),
		A: 255,
	}
}

// resize decodes, bounds the width and re-encodes as JPEG. Images
// already within the bound keep their original bytes and encoding
// (PNG transparency included), as do formats the decoder does not know
// (webp, avif).
func resize(data []byte, maxWidth int) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil || img.Bounds().Dx() <= maxWidth {
		return nil, false
	}
	// Height 0 keeps the aspect ratio.
	img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

func contentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".avif":
		return "image/avif"
	default:
		return "application/octet-stream"
	}
}

// Exists reports whether name resolves to a readable file in the
// directory.
func (s *Service) Exists(name string) bool {
	info, err := os.Stat(filepath.Join(s.dir, filepath.Base(name)))
	return err == nil && info.Mode().IsRegular()
}
