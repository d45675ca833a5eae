package section

import (
	"fmt"

	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/format"
)

// CompressionID is the compression byte stored in a region payload header.
type CompressionID uint8

const (
	CompressionIDGzip CompressionID = 1 // CompressionIDGzip marks a gzip payload.
	CompressionIDZlib CompressionID = 2 // CompressionIDZlib marks a zlib payload, the common case.
	CompressionIDNone CompressionID = 3 // CompressionIDNone marks raw NBT.
	CompressionIDLZ4  CompressionID = 4 // CompressionIDLZ4 marks an lz4-java LZ4Block stream.
)

// Valid reports whether id is one of the known region compression ids.
func (id CompressionID) Valid() bool {
	return id >= CompressionIDGzip && id <= CompressionIDLZ4
}

// CompressionType maps the id to a payload compression type.
func (id CompressionID) CompressionType() (format.CompressionType, error) {
	switch id {
	case CompressionIDGzip:
		return format.CompressionGzip, nil
	case CompressionIDZlib:
		return format.CompressionZlib, nil
	case CompressionIDNone:
		return format.CompressionNone, nil
	case CompressionIDLZ4:
		return format.CompressionLZ4Block, nil
	default:
		return format.CompressionNone, fmt.Errorf("region compression id %d: %w", uint8(id), errs.ErrUnsupportedCompression)
	}
}

func (id CompressionID) String() string {
	ct, err := id.CompressionType()
	if err != nil {
		return fmt.Sprintf("CompressionID(%d)", uint8(id))
	}

	return ct.String()
}

// CompressionIDFor maps a compression type to its region id. Zstd and the LZ4
// frame format have no region id and fail with errs.ErrUnsupportedCompression.
func CompressionIDFor(ct format.CompressionType) (CompressionID, error) {
	switch ct {
	case format.CompressionGzip:
		return CompressionIDGzip, nil
	case format.CompressionZlib:
		return CompressionIDZlib, nil
	case format.CompressionNone:
		return CompressionIDNone, nil
	case format.CompressionLZ4Block:
		return CompressionIDLZ4, nil
	default:
		return 0, fmt.Errorf("%s in region payload: %w", ct, errs.ErrUnsupportedCompression)
	}
}
