// SPDX-License-Identifier: MPL-2.0

package types

import (
	"strings"

	"github.com/attestify/kernel/pkg/errdefs"
)

// FileName is a validated name for a file on the virtual file system.
// Leading and trailing whitespace is trimmed before validation.
type FileName struct {
	value string
}

// NewFileName validates value and returns the FileName. The name must be
// non-empty after trimming, must not be "." or "..", must start with a
// letter, number, '-', '.' or '_', and may only contain ASCII alphanumeric
// characters, '.', '_' and '-'.
func NewFileName(value string) (FileName, error) {
	name, err := validateFileName(value)
	if err != nil {
		return FileName{}, err
	}
	return FileName{value: name}, nil
}

// Value returns the validated file name.
func (f FileName) Value() string { return f.value }

// String returns the validated file name.
func (f FileName) String() string { return f.value }

func validateFileName(value string) (string, error) {
	name := strings.TrimSpace(value)

	if name == "" {
		return "", invalidFileName("The file name cannot be empty.")
	}
	if name == "." || name == ".." {
		return "", invalidFileName("The file name cannot be '.' or '..'.")
	}

	first := name[0]
	if !isFileNameChar(first) {
		return "", invalidFileName("The file name must start with a letter, number, '-', '.', or '_'.")
	}
	for i := 1; i < len(name); i++ {
		if !isFileNameChar(name[i]) {
			return "", invalidFileName("The file name can only contain alphanumeric characters, '.', '_', or '-'.")
		}
	}
	return name, nil
}

func isFileNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.', c == '_', c == '-':
		return true
	}
	return false
}

// All file name error cases share the same kind and audience.
func invalidFileName(message string) error {
	return errdefs.ForSystem(errdefs.InvalidInput, message)
}
