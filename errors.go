// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

import "fmt"

// Kind classifies the structured errors this package returns.
type Kind uint8

const (
	KindPathNone Kind = iota + 1
	KindDirtyState
	KindFileDoesNotExist
	KindFileEmpty
	KindBadTag
	KindInvalidTag
	KindBadSize
	KindEmptyChunk
	KindBadHeader
	KindBadHeaderPayload
	KindBadHeaderEndbyte
	KindBadMetadataField
	KindBadMetadataPayload
	KindBadMetadataEndbyte
	KindBadDataEndbyte
	KindBadExtraMetadataEndbyte
	KindBadEndfileEndbyte
	KindInvalidWriteTag
	KindMissingEof
	KindFileWriteError
	KindFileReadError
)

var kindNames = map[Kind]string{
	KindPathNone:                "PathNone",
	KindDirtyState:              "DirtyState",
	KindFileDoesNotExist:        "FileDoesNotExist",
	KindFileEmpty:               "FileEmpty",
	KindBadTag:                  "BadTag",
	KindInvalidTag:              "InvalidTag",
	KindBadSize:                 "BadSize",
	KindEmptyChunk:              "EmptyChunk",
	KindBadHeader:               "BadHeader",
	KindBadHeaderPayload:        "BadHeaderPayload",
	KindBadHeaderEndbyte:        "BadHeaderEndbyte",
	KindBadMetadataField:        "BadMetadataField",
	KindBadMetadataPayload:      "BadMetadataPayload",
	KindBadMetadataEndbyte:      "BadMetadataEndbyte",
	KindBadDataEndbyte:          "BadDataEndbyte",
	KindBadExtraMetadataEndbyte: "BadExtraMetadataEndbyte",
	KindBadEndfileEndbyte:       "BadEndfileEndbyte",
	KindInvalidWriteTag:         "InvalidWriteTag",
	KindMissingEof:              "MissingEof",
	KindFileWriteError:          "FileWriteError",
	KindFileReadError:           "FileReadError",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is the structured error value this package returns in place of a
// positional message plus traceback: a Kind, the byte Offset at which the
// problem was detected (-1 when no byte position applies), and an optional
// wrapped cause.
//
// PartialBytes is only meaningful for KindFileWriteError: the number of
// bytes of the current Writer call that were successfully committed to the
// underlying stream before the failure.
type Error struct {
	Kind         Kind
	Offset       int64
	PartialBytes int64
	Err          error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Offset >= 0 {
			return fmt.Sprintf("mixfields: %s at offset %d: %v", e.Kind, e.Offset, e.Err)
		}
		return fmt.Sprintf("mixfields: %s: %v", e.Kind, e.Err)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("mixfields: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("mixfields: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(kind Kind, offset int64) *Error {
	return &Error{Kind: kind, Offset: offset}
}

func newErrCause(kind Kind, offset int64, cause error) *Error {
	return &Error{Kind: kind, Offset: offset, Err: cause}
}
