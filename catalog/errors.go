package catalog

import "errors"

// Errors returned by Locate and Decode. They are wrapped with context, so
// test for them with errors.Is.
var (
	// ErrInvalidName is returned for empty names or names with empty, "."
	// or ".." segments.
	ErrInvalidName = errors.New("catalog: invalid color name")

	// ErrGroupNotFound is returned when an intermediate group directory
	// does not exist.
	ErrGroupNotFound = errors.New("catalog: group not found")

	// ErrColorSetNotFound is returned when the group has no matching
	// .colorset entry.
	ErrColorSetNotFound = errors.New("catalog: color set not found")

	// ErrContentsUnreadable is returned when Contents.json is missing or
	// cannot be read.
	ErrContentsUnreadable = errors.New("catalog: contents unreadable")

	// ErrMalformedContents is returned when Contents.json cannot be decoded.
	ErrMalformedContents = errors.New("catalog: malformed contents")
)
