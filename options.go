// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// config mirrors the teacher's Options/Option shape (options.go in the
// sibling framer module): a plain struct of knobs plus a slice of
// functions applied in order, rather than a constructor with a long
// parameter list.
type config struct {
	opener       Opener
	logger       *log.Logger
	strictCompat bool
	now          func() time.Time
}

func defaultConfig() config {
	return config{
		opener:       OS,
		logger:       log.New(io.Discard),
		strictCompat: false,
		now:          time.Now,
	}
}

// Option configures a Session, Writer, or Reader at construction time.
type Option func(*config)

// WithOpener overrides the byte-stream collaborator. Use this to run the
// codec over something other than local files.
func WithOpener(o Opener) Option {
	return func(c *config) { c.opener = o }
}

// WithLogger attaches a structured logger. Session lifecycle events and
// Writer I/O failures are logged through it; by default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStrictCompat makes a Reader accept the strict-compat GS-tagged DATA
// variant (TagDataCompat) in addition to the canonical RS-tagged DATA tag.
// It has no effect on a Writer: the canonical writer always emits RS.
func WithStrictCompat() Option {
	return func(c *config) { c.strictCompat = true }
}

// withNow overrides the wall clock used to stamp Session creation time.
// Unexported: it exists for deterministic tests, not as public API surface.
func withNow(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}
