// Package errs defines the error values returned by mcnbt.
//
// Callers should match errors with errors.Is against the sentinel values below.
// Typed errors (TagTypeError, CoordinatesError) carry the offending values and
// unwrap to their sentinel.
package errs

import (
	"errors"
	"fmt"
)

// Decoding errors.
var (
	// ErrUnexpectedEOF is returned when the buffer ends before a required read completes.
	ErrUnexpectedEOF = errors.New("nbt: unexpected end of data")
	// ErrInvalidTagType is returned when a tag type id is outside 0-12.
	ErrInvalidTagType = errors.New("nbt: invalid tag type")
	// ErrInvalidUTF8 is returned when a string payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("nbt: invalid UTF-8 string")
	// ErrInvalidHeader is returned when a document root is not a compound or framing is inconsistent.
	ErrInvalidHeader = errors.New("nbt: invalid header")
	// ErrMaxDepthExceeded is returned when nesting exceeds the configured depth limit.
	ErrMaxDepthExceeded = errors.New("nbt: maximum nesting depth exceeded")
)

// Encoding and construction errors.
var (
	// ErrListTypeMismatch is returned when a list element does not match the list element type.
	ErrListTypeMismatch = errors.New("nbt: list element type mismatch")
	// ErrStringTooLong is returned when a string does not fit the u16 length prefix.
	ErrStringTooLong = errors.New("nbt: string exceeds 65535 bytes")
	// ErrArrayTooLong is returned when an array or list does not fit the i32 length prefix.
	ErrArrayTooLong = errors.New("nbt: array exceeds maximum length")
	// ErrNilTag is returned when a nil tag is passed where a value is required.
	ErrNilTag = errors.New("nbt: nil tag")
)

// Compression errors.
var (
	// ErrUnsupportedCompression is returned for compression kinds or region ids mcnbt cannot handle.
	ErrUnsupportedCompression = errors.New("nbt: unsupported compression")
	// ErrDecompressedTooLarge is returned when a payload inflates beyond the configured size limit.
	ErrDecompressedTooLarge = errors.New("nbt: decompressed payload exceeds size limit")
)

// Region errors.
var (
	// ErrInvalidCoordinates is returned when a region slot coordinate is outside [0,32).
	ErrInvalidCoordinates = errors.New("region: invalid chunk coordinates")
	// ErrChunkTooLarge is returned when a chunk payload needs more sectors than a location entry can address.
	ErrChunkTooLarge = errors.New("region: chunk payload too large")
	// ErrRegionTooLarge is returned when the region layout overflows the 24-bit sector offset.
	ErrRegionTooLarge = errors.New("region: sector offset overflow")
)

// Session errors.
var (
	// ErrInvalidHandle is returned for unknown, released or wrong-kind session handles.
	ErrInvalidHandle = errors.New("session: invalid handle")
)

// TagTypeError reports an out-of-range tag type id.
type TagTypeError struct {
	Type uint8
}

func (e *TagTypeError) Error() string {
	return fmt.Sprintf("nbt: invalid tag type: %d", e.Type)
}

func (e *TagTypeError) Unwrap() error {
	return ErrInvalidTagType
}

// InvalidTagType returns a TagTypeError for the given id.
func InvalidTagType(t uint8) error {
	return &TagTypeError{Type: t}
}

// CoordinatesError reports a region slot address outside [0,32).
type CoordinatesError struct {
	X, Z int
}

func (e *CoordinatesError) Error() string {
	return fmt.Sprintf("region: invalid chunk coordinates (%d, %d): must be 0-31", e.X, e.Z)
}

func (e *CoordinatesError) Unwrap() error {
	return ErrInvalidCoordinates
}

// InvalidCoordinates returns a CoordinatesError for the given slot address.
func InvalidCoordinates(x, z int) error {
	return &CoordinatesError{X: x, Z: z}
}
