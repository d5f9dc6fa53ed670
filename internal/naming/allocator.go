// Package naming allocates storage names for uploaded documents.
package naming

import (
	"math/rand/v2"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/kurochkinivan/doc_converter/internal/domain"
)

const (
	suffixRange     = 1_000_000_000
	maxNameLength   = 128
	fallbackName    = "document"
	replacementRune = '_'
)

type Allocator struct {
	now    func() time.Time
	suffix func() int64
}

func NewAllocator() *Allocator {
	return &Allocator{
		now:    time.Now,
		suffix: func() int64 { return rand.Int64N(suffixRange) },
	}
}

// NewAllocatorWith is used by tests to pin the clock and the random source.
func NewAllocatorWith(now func() time.Time, suffix func() int64) *Allocator {
	return &Allocator{now: now, suffix: suffix}
}

// Allocate returns "{unix millis}-{random}-{sanitized original}".
func (a *Allocator) Allocate(original string) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(a.now().UnixMilli(), 10))
	b.WriteByte('-')
	b.WriteString(strconv.FormatInt(a.suffix(), 10))
	b.WriteByte('-')
	b.WriteString(Sanitize(original))
	return b.String()
}

// OutputName derives the stored output name from a stored input name.
func OutputName(storedInput string, format domain.Format) string {
	return strings.TrimSuffix(storedInput, filepath.Ext(storedInput)) + format.Extension()
}

// Sanitize reduces a client supplied filename to [A-Za-z0-9._-] without path
// separators or ".." sequences.
func Sanitize(original string) string {
	original = strings.ReplaceAll(original, "\\", "/")
	if i := strings.LastIndexByte(original, '/'); i >= 0 {
		original = original[i+1:]
	}

	var b strings.Builder
	lastDot := false
	for _, r := range original {
		switch {
		case r == '.':
			if lastDot {
				continue
			}
			lastDot = true
			b.WriteRune(r)
			continue
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune(replacementRune)
		}
		lastDot = false
	}

	name := strings.TrimLeft(b.String(), ".")
	if strings.Trim(name, "._") == "" {
		return fallbackName + filepath.Ext(name)
	}

	return truncate(name)
}

func truncate(name string) string {
	if len(name) <= maxNameLength {
		return name
	}

	ext := filepath.Ext(name)
	if len(ext) >= maxNameLength/2 {
		ext = ""
	}

	return strings.TrimRight(name[:maxNameLength-len(ext)], ".") + ext
}
