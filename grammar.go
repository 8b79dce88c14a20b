// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

// ASCII separator control bytes used as field start/endbytes.
const (
	SepFile   byte = 0x1C // FS
	SepGroup  byte = 0x1D // GS
	SepRecord byte = 0x1E // RS
	SepUnit   byte = 0x1F // US
)

// Tag is the 5-byte field identifier: a separator byte followed by a
// 4-letter mnemonic.
type Tag [5]byte

// String renders a Tag for error messages and logging.
func (t Tag) String() string {
	return string(t[:])
}

// Tag vocabulary. TagData is the canonical DATA tag (RS framing); TagDataCompat
// is the strict-compat GS variant — accepted by a Reader constructed with
// WithStrictCompat, never emitted by Writer.
var (
	TagHeader        = Tag{SepFile, 'M', 'i', 'x', 'd'}
	TagMetadata      = Tag{SepRecord, 's', 'M', 'D', 'T'}
	TagExtraMetadata = Tag{SepRecord, 'e', 'M', 'D', 'T'}
	TagData          = Tag{SepRecord, 's', 'D', 'A', 'T'}
	TagDataCompat    = Tag{SepGroup, 's', 'D', 'A', 'T'}
	TagEndfile       = Tag{SepFile, 'x', 'E', 'O', 'F'}
)

// payloadHeader is the fixed 4-byte HEADER payload.
var payloadHeader = [4]byte{'F', 'l', 'd', 's'}

// payloadMetadataEmpty is the fixed 8-byte METADATA payload currently defined
// by the format (all user metadata schemas are reserved for the future).
var payloadMetadataEmpty = [8]byte{}

// sizeFieldMetadata is the one-byte size-subfield preceding payloadMetadataEmpty.
const sizeFieldMetadata byte = 0x08

// endbyte returns the wire endbyte for a known tag, and false for any other
// 5-byte value.
func (t Tag) endbyte() (byte, bool) {
	switch t {
	case TagHeader, TagEndfile:
		return SepFile, true
	case TagMetadata, TagExtraMetadata, TagData:
		return SepRecord, true
	case TagDataCompat:
		return SepGroup, true
	}
	return 0, false
}

// isVariableLength reports whether tag carries a size-subfield ahead of its
// payload. compat additionally admits the strict-compat GS DATA variant.
func isVariableLength(tag Tag, compat bool) bool {
	switch tag {
	case TagData, TagMetadata, TagExtraMetadata:
		return true
	case TagDataCompat:
		return compat
	}
	return false
}

// isUserTag reports whether tag is one a caller may pass to Writer.WriteItem
// and may receive back from Reader.ReadItem. compat additionally admits the
// strict-compat GS DATA variant for reading.
func isUserTag(tag Tag, compat bool) bool {
	switch tag {
	case TagData, TagExtraMetadata:
		return true
	case TagDataCompat:
		return compat
	}
	return false
}
