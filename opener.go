// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

import (
	"io"
	"os"
)

// AppendStream is a byte sink positioned at the end of whatever backs it.
// Every Writer call opens one, writes, and closes it — there is no
// long-lived handle, so recovery after a crash only ever has to consider a
// file that is readable up to its last complete field.
type AppendStream interface {
	io.Writer
	io.Closer
}

// ReadStream is a random-access byte source. The Reader addresses it by
// absolute offset rather than by sequential Read, since a single Reader
// session may reopen the stream across many ReadItem calls.
type ReadStream interface {
	io.ReaderAt
	io.Closer
}

// Opener turns a path into append/read byte streams. The framing codec
// never touches the filesystem directly — it only ever talks to an
// Opener — so a caller can run the exact same Reader/Writer/Session logic
// over an in-memory buffer, a network-backed blob store, or (the default)
// a local file.
type Opener interface {
	OpenAppend(path string) (AppendStream, error)
	OpenRead(path string) (ReadStream, error)
	// Stat reports the current size in bytes of path. It reports
	// os.ErrNotExist (checkable with os.IsNotExist / errors.Is) when path
	// does not exist.
	Stat(path string) (size int64, err error)
}

// OS is the default Opener, backed by the local filesystem.
var OS Opener = osOpener{}

type osOpener struct{}

func (osOpener) OpenAppend(path string) (AppendStream, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

func (osOpener) OpenRead(path string) (ReadStream, error) {
	return os.Open(path)
}

func (osOpener) Stat(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
