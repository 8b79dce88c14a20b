// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

import (
	"time"

	"github.com/google/uuid"
)

// Session owns the per-stream lifecycle state shared by a Writer and a
// Reader bound to the same path: the path itself, the running
// bytes-written counter, the finalization flag, the read cursor, and the
// reader's prelude/terminator flags.
//
// Mixing write and read calls on one Session without an intervening
// SetPath is undefined; this implementation guards against it by rejecting
// reads while the session is dirty.
type Session struct {
	path string

	bytesWritten int64
	finalized    bool

	readCursor   int64
	seenHeader   bool
	seenMetadata bool
	seenEOF      bool

	cfg config

	id        uuid.UUID
	createdAt time.Time
}

// New creates a Session, optionally pre-bound to path. Pass "" to create an
// unbound session (WriteItem and ReadItem then fail with KindPathNone
// until SetPath is called; Close on it is a no-op).
func New(path string, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Session{
		path:      path,
		cfg:       cfg,
		id:        uuid.New(),
		createdAt: cfg.now(),
	}
	s.cfg.logger.Debug("session created", "session", s.id, "path", path)
	return s
}

// ID returns the correlation identifier stamped on this Session at
// construction; it is attached to every log line the Session, its Writer,
// and its Reader emit.
func (s *Session) ID() uuid.UUID { return s.id }

// CreatedAt returns the time this Session was constructed, as reported by
// its configured clock (see withNow, used by tests to make this
// deterministic).
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Path returns the currently bound path, or "" if unbound.
func (s *Session) Path() string { return s.path }

func (s *Session) pathSet() bool { return s.path != "" }

// dirty reports whether bytes have been written but the session has not
// yet been finalized via Close.
func (s *Session) dirty() bool { return s.bytesWritten > 0 && !s.finalized }

// SetPath binds path to the Session. If the session is dirty (bytes
// written but not finalized), SetPath fails with KindDirtyState unless
// ignoreErrors is true, in which case the in-progress file is abandoned
// without an EOF field and every field of the Session resets to its
// initial value.
func (s *Session) SetPath(path string, ignoreErrors bool) error {
	if s.dirty() && !ignoreErrors {
		s.cfg.logger.Debug("rejecting path rebind on dirty session", "session", s.id, "path", s.path)
		return newErr(KindDirtyState, -1)
	}
	s.path = path
	s.bytesWritten = 0
	s.finalized = false
	s.readCursor = 0
	s.seenHeader = false
	s.seenMetadata = false
	s.seenEOF = false
	s.cfg.logger.Debug("session path set", "session", s.id, "path", path, "ignoreErrors", ignoreErrors)
	return nil
}
