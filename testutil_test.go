// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields_test

import (
	"errors"
	"io"
	"os"
	"sync"

	"code.hybscloud.com/mixfields"
)

func asError(err error, target **mixfields.Error) bool {
	return errors.As(err, target)
}

// memOpener is an in-memory Opener, so tests can drive Session/Writer/Reader
// through every edge case without touching the filesystem.
type memOpener struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemOpener() *memOpener {
	return &memOpener{files: map[string][]byte{}}
}

func (m *memOpener) set(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte{}, data...)
}

func (m *memOpener) OpenAppend(path string) (mixfields.AppendStream, error) {
	return &memAppend{m: m, path: path}, nil
}

func (m *memOpener) OpenRead(path string) (mixfields.ReadStream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return &memRead{data: append([]byte{}, b...)}, nil
}

func (m *memOpener) Stat(path string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[path]
	if !ok {
		return 0, os.ErrNotExist
	}
	return int64(len(b)), nil
}

type memAppend struct {
	m    *memOpener
	path string
}

func (a *memAppend) Write(p []byte) (int, error) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	a.m.files[a.path] = append(a.m.files[a.path], p...)
	return len(p), nil
}

func (a *memAppend) Close() error { return nil }

type memRead struct {
	data []byte
}

func (r *memRead) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (r *memRead) Close() error { return nil }

// wouldBlockOnceOpener wraps memOpener and fails the append stream's first
// Write with iox.ErrWouldBlock after letting n bytes through, then behaves
// normally — mirroring the teacher's wouldBlockWriter fixture in
// framer_test.go.
type wouldBlockOnceOpener struct {
	*memOpener
	limit   int
	tripped bool
}

func (w *wouldBlockOnceOpener) OpenAppend(path string) (mixfields.AppendStream, error) {
	return &wouldBlockAppend{inner: &memAppend{m: w.memOpener, path: path}, w: w}, nil
}

type wouldBlockAppend struct {
	inner *memAppend
	w     *wouldBlockOnceOpener
}

func (a *wouldBlockAppend) Write(p []byte) (int, error) {
	if !a.w.tripped {
		a.w.tripped = true
		n := a.w.limit
		if n > len(p) {
			n = len(p)
		}
		if n > 0 {
			_, _ = a.inner.Write(p[:n])
		}
		return n, mixfields.ErrWouldBlock
	}
	return a.inner.Write(p)
}

func (a *wouldBlockAppend) Close() error { return a.inner.Close() }
