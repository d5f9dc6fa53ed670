// Package storage holds helpers shared by the artifact store backends.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/doc_converter/internal/domain"
)

// ValidateName rejects names that could address anything outside a single
// flat artifact area.
func ValidateName(name string) error {
	if name == "" ||
		name == "." ||
		strings.Contains(name, "..") ||
		strings.ContainsAny(name, `/\`) ||
		strings.ContainsRune(name, 0) ||
		filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", domain.ErrInvalidName, name)
	}

	return nil
}
