package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// typeIDSegmentRegex matches one namespace segment of a bundle type identifier.
var typeIDSegmentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTypeID validates a bundle type identifier such as
// `ide\bundle\std\JPHPCoreBundle`.
//
// Type identifiers end up in file names under the project config directory,
// so the rules are conservative:
//   - No empty identifiers
//   - No control characters
//   - Maximum length of 256 characters
//   - Every backslash-separated segment is a PHP identifier
func ValidateTypeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTypeID, "type id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidTypeID, "type id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTypeID, "type id contains invalid control characters")
		}
	}

	for _, seg := range strings.Split(strings.TrimPrefix(id, `\`), `\`) {
		if !typeIDSegmentRegex.MatchString(seg) {
			return New(ErrCodeInvalidTypeID, "invalid type id segment %q in %q", seg, id)
		}
	}

	return nil
}

// ValidateRelativePath validates a project-relative path.
// It prevents path traversal out of the project and absolute paths.
func ValidateRelativePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidInput, "path must be relative (cannot start with /)")
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
