// Package media prepares images for case-study thumbnails and article
// featured images: decode, downscale, re-encode as JPEG under a slug name.
package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	DefaultMaxWidth = 1200
	JPEGQuality     = 80
	UploadsDir      = "uploads"
)

// Image describes one processed file.
type Image struct {
	Filename     string `json:"filename" yaml:"filename"`
	OriginalName string `json:"original_name" yaml:"original_name"`
	Width        int    `json:"width" yaml:"width"`
	Height       int    `json:"height" yaml:"height"`
	Size         int    `json:"size" yaml:"size"`
}

// Process decodes src, scales it down to maxWidth if wider, and encodes it as
// JPEG. A maxWidth of zero means DefaultMaxWidth.
func Process(src io.Reader, originalName string, maxWidth int) (Image, []byte, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	img, _, err := image.Decode(src)
	if err != nil {
		return Image{}, nil, fmt.Errorf("media: decode %s: %w", originalName, err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxWidth {
		nh := h * maxWidth / w
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img, w, h = dst, maxWidth, nh
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return Image{}, nil, fmt.Errorf("media: encode %s: %w", originalName, err)
	}
	return Image{
		Filename:     FileSlug(originalName) + ".jpg",
		OriginalName: originalName,
		Width:        w,
		Height:       h,
		Size:         buf.Len(),
	}, buf.Bytes(), nil
}

// Ingest processes src and writes it into dir under a name that does not
// collide with an existing file.
func Ingest(dir string, src io.Reader, originalName string, maxWidth int) (Image, error) {
	img, data, err := Process(src, originalName, maxWidth)
	if err != nil {
		return Image{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Image{}, fmt.Errorf("media: create %s: %w", dir, err)
	}
	img.Filename = uniqueName(dir, img.Filename)
	if err := os.WriteFile(filepath.Join(dir, img.Filename), data, 0o644); err != nil {
		return Image{}, fmt.Errorf("media: write %s: %w", img.Filename, err)
	}
	return img, nil
}

// IngestFile is Ingest for a file on disk.
func IngestFile(dir, path string, maxWidth int) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()
	return Ingest(dir, f, filepath.Base(path), maxWidth)
}

// Supported reports whether name has an image extension Process can decode.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

func uniqueName(dir, filename string) string {
	base := strings.TrimSuffix(filename, ".jpg")
	candidate := filename
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d.jpg", base, n)
	}
}

// FileSlug turns a file name, minus its extension, into a URL-safe slug.
func FileSlug(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	s := Slugify(base)
	if s == "" {
		return "image"
	}
	return s
}

// Slugify lowercases s and collapses every run of non-alphanumerics into a
// single hyphen.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
