// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

import (
	"errors"

	"code.hybscloud.com/iox"
)

// These are re-exported so callers can reference the semantic control-flow
// errors without importing iox directly, exactly as the sibling framer
// module does in framer.go.
var (
	// ErrWouldBlock means an Opener backed by a non-blocking transport made
	// no further progress without waiting. It is not a failure: any
	// returned byte count still represents real progress, and the Session
	// is left dirty for the caller to retry WriteItem or abandon via
	// SetPath(.., ignoreErrors=true), exactly as a partial FileWriteError
	// would be handled.
	ErrWouldBlock = iox.ErrWouldBlock
)

// Writer appends fields to the Session's bound path: HEADER and METADATA
// once, on first use, then one tagged user field per WriteItem call, then
// ENDFILE on Close.
type Writer struct {
	s *Session
}

// NewWriter returns a Writer bound to s. Additional options are merged
// into s's configuration (for example, to attach a logger that wasn't
// passed to New).
func NewWriter(s *Session, opts ...Option) *Writer {
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return &Writer{s: s}
}

// Session returns the Writer's underlying Session.
func (w *Writer) Session() *Session { return w.s }

// WriteItem appends one user field. tag must be TagData or
// TagExtraMetadata; any other tag fails KindInvalidWriteTag without
// emitting bytes. On first use for a freshly (re)bound path, WriteItem
// first emits HEADER and METADATA.
//
// The returned int is the number of bytes actually committed to the
// underlying stream during this call (including HEADER/METADATA on the
// first call), so a caller can reconcile partial progress after a
// FileWriteError or ErrWouldBlock.
func (w *Writer) WriteItem(p []byte, tag Tag) (int, error) {
	s := w.s
	if !s.pathSet() {
		return 0, newErr(KindPathNone, -1)
	}
	if tag != TagData && tag != TagExtraMetadata {
		return 0, newErr(KindInvalidWriteTag, -1)
	}
	s.finalized = false

	total := 0
	if s.bytesWritten == 0 {
		n, err := w.appendRaw(preludeBytes())
		total += n
		s.bytesWritten += int64(n)
		if err != nil {
			return total, w.writeFailure(err, total)
		}
	}

	endbyte, _ := tag.endbyte()
	buf := make([]byte, 0, len(tag)+10+len(p)+1)
	buf = append(buf, tag[:]...)
	buf = appendSize(buf, len(p))
	buf = append(buf, p...)
	buf = append(buf, endbyte)

	n, err := w.appendRaw(buf)
	total += n
	s.bytesWritten += int64(n)
	if err != nil {
		return total, w.writeFailure(err, total)
	}
	return total, nil
}

// Close finalizes the file: if any user bytes have been written and the
// session is not already finalized, it appends ENDFILE. Close is
// idempotent — calling it again, or on a session that never wrote
// anything, is a no-op beyond marking the session finalized.
func (w *Writer) Close() error {
	s := w.s
	if s.bytesWritten > 0 && !s.finalized {
		endbyte, _ := TagEndfile.endbyte()
		buf := append(append([]byte{}, TagEndfile[:]...), endbyte)
		n, err := w.appendRaw(buf)
		s.bytesWritten += int64(n)
		if err != nil {
			return w.writeFailure(err, n)
		}
		s.cfg.logger.Debug("session finalized", "session", s.id, "bytesWritten", s.bytesWritten)
	}
	s.finalized = true
	return nil
}

func (w *Writer) appendRaw(b []byte) (int, error) {
	as, err := w.s.cfg.opener.OpenAppend(w.s.path)
	if err != nil {
		return 0, err
	}
	defer as.Close()
	return as.Write(b)
}

// writeFailure classifies the error from appendRaw: a would-block signal
// from a non-blocking Opener passes through unchanged (it is control flow,
// not failure), everything else becomes a structured FileWriteError
// carrying the partial byte count for this WriteItem/Close call.
func (w *Writer) writeFailure(err error, partial int) error {
	if errors.Is(err, iox.ErrWouldBlock) {
		return err
	}
	w.s.cfg.logger.Warn("write failed", "session", w.s.id, "path", w.s.path, "partialBytes", partial, "err", err)
	return &Error{Kind: KindFileWriteError, Offset: -1, PartialBytes: int64(partial), Err: err}
}

func preludeBytes() []byte {
	hb, _ := TagHeader.endbyte()
	mb, _ := TagMetadata.endbyte()
	buf := make([]byte, 0, len(TagHeader)+len(payloadHeader)+1+len(TagMetadata)+1+len(payloadMetadataEmpty)+1)
	buf = append(buf, TagHeader[:]...)
	buf = append(buf, payloadHeader[:]...)
	buf = append(buf, hb)
	buf = append(buf, TagMetadata[:]...)
	buf = append(buf, sizeFieldMetadata)
	buf = append(buf, payloadMetadataEmpty[:]...)
	buf = append(buf, mb)
	return buf
}
