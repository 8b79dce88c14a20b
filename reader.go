// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

import (
	"bytes"
	"errors"
	"io"
	"os"

	"code.hybscloud.com/mixfields/internal/varint"
)

// Reader parses fields from the Session's bound path, validating the
// HEADER/METADATA prelude once and then yielding one USER field (DATA,
// EXTRA_METADATA, or — with WithStrictCompat — the GS DATA variant) per
// ReadItem call, until ENDFILE is observed.
type Reader struct {
	s *Session
}

// NewReader returns a Reader bound to s. Additional options are merged
// into s's configuration.
func NewReader(s *Session, opts ...Option) *Reader {
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return &Reader{s: s}
}

// Session returns the Reader's underlying Session.
func (r *Reader) Session() *Session { return r.s }

// ReadItem returns the next USER field. The second return value is false
// exactly when the stream is exhausted at a well-formed ENDFILE (the
// end-of-stream sentinel) — this can never be confused with a real
// zero-length-payload field, which is returned with ok=true.
func (r *Reader) ReadItem() (field Field, ok bool, err error) {
	s := r.s
	if !s.pathSet() {
		return Field{}, false, newErr(KindPathNone, -1)
	}
	if s.dirty() {
		return Field{}, false, newErr(KindDirtyState, -1)
	}

	size, err := s.cfg.opener.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Field{}, false, newErr(KindFileDoesNotExist, -1)
		}
		return Field{}, false, newErrCause(KindFileReadError, -1, err)
	}
	if size == 0 {
		return Field{}, false, newErr(KindFileEmpty, -1)
	}

	rs, err := s.cfg.opener.OpenRead(s.path)
	if err != nil {
		return Field{}, false, newErrCause(KindFileReadError, -1, err)
	}
	defer rs.Close()

	if s.seenEOF {
		return Field{}, false, nil
	}

	offset := s.readCursor
	for {
		if offset >= size {
			s.readCursor = offset
			if s.seenEOF {
				return Field{}, false, nil
			}
			return Field{}, false, newErr(KindMissingEof, offset)
		}
		fieldStart := offset

		var tagBuf [5]byte
		n, _ := rs.ReadAt(tagBuf[:], offset)
		if n < 5 {
			s.readCursor = fieldStart
			return Field{}, false, newErr(KindBadTag, fieldStart)
		}
		offset += 5
		var tag Tag
		copy(tag[:], tagBuf[:])

		var payload []byte
		if isVariableLength(tag, s.cfg.strictCompat) {
			br := &readerAtByteReader{ra: rs, off: offset}
			value, consumed, serr := varint.ReadFrom(br)
			offset += int64(consumed)
			if serr != nil {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadSize, fieldStart)
			}
			if value > 0 {
				payload = make([]byte, value)
				pn, _ := rs.ReadAt(payload, offset)
				if uint64(pn) < value {
					s.readCursor = fieldStart
					return Field{}, false, newErr(KindBadSize, fieldStart)
				}
			} else {
				payload = []byte{}
			}
			offset += int64(value)
		}

		if !s.seenHeader {
			if tag != TagHeader {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadHeader, fieldStart)
			}
			var hdr [4]byte
			hn, _ := rs.ReadAt(hdr[:], offset)
			offset += 4
			if hn < 4 || !bytes.Equal(hdr[:], payloadHeader[:]) {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadHeaderPayload, fieldStart)
			}
			var eb [1]byte
			en, _ := rs.ReadAt(eb[:], offset)
			offset++
			want, _ := TagHeader.endbyte()
			if en < 1 || eb[0] != want {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadHeaderEndbyte, fieldStart)
			}
			s.seenHeader = true
			continue
		}

		if !s.seenMetadata {
			if tag != TagMetadata {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadMetadataField, fieldStart)
			}
			if !bytes.Equal(payload, payloadMetadataEmpty[:]) {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadMetadataPayload, fieldStart)
			}
			var eb [1]byte
			en, _ := rs.ReadAt(eb[:], offset)
			offset++
			want, _ := TagMetadata.endbyte()
			if en < 1 || eb[0] != want {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadMetadataEndbyte, fieldStart)
			}
			s.seenMetadata = true
			continue
		}

		if tag == TagEndfile {
			var eb [1]byte
			en, _ := rs.ReadAt(eb[:], offset)
			offset++
			want, _ := TagEndfile.endbyte()
			if en < 1 || eb[0] != want {
				s.readCursor = fieldStart
				return Field{}, false, newErr(KindBadEndfileEndbyte, fieldStart)
			}
			s.seenEOF = true
			s.readCursor = offset
			return Field{}, false, nil
		}

		if !isUserTag(tag, s.cfg.strictCompat) {
			s.readCursor = fieldStart
			return Field{}, false, newErr(KindInvalidTag, fieldStart)
		}

		var eb [1]byte
		en, _ := rs.ReadAt(eb[:], offset)
		offset++
		want, _ := tag.endbyte()
		if en < 1 || eb[0] != want {
			s.readCursor = fieldStart
			kind := KindBadDataEndbyte
			if tag == TagExtraMetadata {
				kind = KindBadExtraMetadataEndbyte
			}
			return Field{}, false, newErr(kind, fieldStart)
		}

		s.readCursor = offset
		return Field{Tag: tag, Payload: payload, Endbyte: eb[0]}, true, nil
	}
}

// readerAtByteReader adapts a random-access ReadStream to io.ByteReader so
// the shared varint.ReadFrom size-subfield parser can drive it one byte at
// a time without a sequential-read abstraction layered on top.
type readerAtByteReader struct {
	ra  io.ReaderAt
	off int64
}

func (b *readerAtByteReader) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := b.ra.ReadAt(buf[:], b.off)
	if n >= 1 {
		b.off++
		return buf[0], nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}
