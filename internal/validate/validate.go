package validate

import (
	"path/filepath"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var imageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

// Date parses a calendar date in YYYY-MM-DD form and returns it normalized.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

// ImageExt extracts the lowercase extension of an uploaded filename and
// reports whether it is one of the supported image formats.
func ImageExt(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext, imageExts[ext]
}

// ImageContentType reports whether the declared content type is an image.
func ImageContentType(ct string) bool {
	return strings.HasPrefix(ct, "image/")
}

// Qty clamps a requested quantity to a sane range.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Filename rejects anything that could escape the image directory:
// separators, parent references, null bytes, absolute paths.
func Filename(s string) bool {
	if s == "" || len(s) > 128 {
		return false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "..") || strings.Contains(lower, "%2e") || strings.Contains(s, "\x00") {
		return false
	}
	if strings.ContainsAny(s, `/\`) || filepath.IsAbs(s) {
		return false
	}
	return true
}
