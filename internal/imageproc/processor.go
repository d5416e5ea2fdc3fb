// Package imageproc prepares uploaded catalog images before they are stored.
package imageproc

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	apperrors "tour-catalog/internal/errors"
	"tour-catalog/internal/models"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const jpegQuality = 85

// Image is an upload that has been decoded, oriented and re-encoded.
type Image struct {
	Data        []byte
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// Processor decodes uploads and caps their width.
type Processor struct {
	maxWidth int
}

// NewProcessor creates a Processor. A maxWidth of zero or less disables resizing.
func NewProcessor(maxWidth int) *Processor {
	return &Processor{maxWidth: maxWidth}
}

// Normalize decodes upload, applies EXIF orientation and shrinks it to the
// configured width. The output keeps the input format where imaging can
// encode it and falls back to JPEG otherwise.
func (p *Processor) Normalize(upload models.Upload) (*Image, error) {
	if len(upload.Data) == 0 {
		return nil, fmt.Errorf("%w: empty file %q", apperrors.ErrInvalidImage, upload.Filename)
	}

	img, err := imaging.Decode(bytes.NewReader(upload.Data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidImage, upload.Filename, err)
	}

	if p.maxWidth > 0 && img.Bounds().Dx() > p.maxWidth {
		img = imaging.Resize(img, p.maxWidth, 0, imaging.Lanczos)
	}

	format := formatOf(upload)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", upload.Filename, err)
	}

	bounds := img.Bounds()
	return &Image{
		Data:        buf.Bytes(),
		ContentType: contentTypes[format],
		Ext:         extensions[format],
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// ObjectKey returns a unique storage key for an image under folder.
func ObjectKey(folder, ext string) string {
	return strings.Trim(folder, "/") + "/" + uuid.NewString() + ext
}

var contentTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

var extensions = map[imaging.Format]string{
	imaging.JPEG: ".jpg",
	imaging.PNG:  ".png",
	imaging.GIF:  ".gif",
	imaging.TIFF: ".tiff",
	imaging.BMP:  ".bmp",
}

func formatOf(upload models.Upload) imaging.Format {
	if f, err := imaging.FormatFromFilename(upload.Filename); err == nil {
		return f
	}

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(upload.Data)
	}
	for f, ct := range contentTypes {
		if ct == contentType {
			return f
		}
	}
	return imaging.JPEG
}
