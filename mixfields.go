// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mixfields implements the Mixed Fields container format: a
// self-delimiting, tagged-field binary stream framed by single control
// bytes (FS/GS/RS/US), carrying a fixed HEADER and METADATA prelude
// followed by any number of user DATA and EXTRA_METADATA fields, closed by
// a single ENDFILE marker.
//
// A Session owns the lifecycle state for one bound path. NewWriter and
// NewReader each wrap a Session to append or parse fields; both talk to the
// filesystem exclusively through an Opener, so the same logic runs over
// local files or any other byte-addressable backing store a caller
// supplies with WithOpener.
//
//	s := mixfields.New("events.mf")
//	w := mixfields.NewWriter(s)
//	if _, err := w.WriteItem([]byte("payload"), mixfields.TagData); err != nil {
//		log.Fatal(err)
//	}
//	if err := w.Close(); err != nil {
//		log.Fatal(err)
//	}
//
//	r := mixfields.NewReader(s)
//	for {
//		field, ok, err := r.ReadItem()
//		if err != nil {
//			log.Fatal(err)
//		}
//		if !ok {
//			break
//		}
//		process(field)
//	}
package mixfields
