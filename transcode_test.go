// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields_test

import (
	"bytes"
	"testing"

	"code.hybscloud.com/mixfields"
)

// toStrictCompat rewrites the single DATA field at fieldStart from the
// canonical RS tag/endbyte to the legacy GS variant, in place, leaving the
// HEADER/METADATA prelude and everything else untouched.
func toStrictCompat(b []byte, fieldStart, payloadLen int) []byte {
	out := append([]byte{}, b...)
	out[fieldStart] = mixfields.SepGroup
	endbyteIdx := fieldStart + 5 + 1 + payloadLen
	out[endbyteIdx] = mixfields.SepGroup
	return out
}

func TestReaderStrictCompatAcceptsLegacyGSTag(t *testing.T) {
	mem := newMemOpener()
	w := mixfields.NewWriter(mixfields.New("canonical", mixfields.WithOpener(mem)))
	if _, err := w.WriteItem([]byte("hi"), mixfields.TagData); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	canonical := mem.files["canonical"]

	fieldStart := len(canonical) - 6 /*ENDFILE*/ - (5 + 1 + 2 + 1) /*DATA field*/
	mem.set("legacy", toStrictCompat(canonical, fieldStart, 2))

	// Without WithStrictCompat, the GS tag is outside the tag vocabulary.
	plain := mixfields.NewReader(mixfields.New("legacy", mixfields.WithOpener(mem)))
	if _, _, err := plain.ReadItem(); !isKind(err, mixfields.KindInvalidTag) {
		t.Fatalf("got %v, want KindInvalidTag", err)
	}

	compat := mixfields.NewReader(mixfields.New("legacy", mixfields.WithOpener(mem)), mixfields.WithStrictCompat())
	f, ok, err := compat.ReadItem()
	if err != nil || !ok {
		t.Fatalf("ReadItem: field=%+v ok=%v err=%v", f, ok, err)
	}
	if f.Tag != mixfields.TagDataCompat || f.Endbyte != mixfields.SepGroup || string(f.Payload) != "hi" {
		t.Fatalf("unexpected field: %+v", f)
	}
	if !f.IsUser() {
		t.Fatalf("expected IsUser() on a legacy GS DATA field accepted under strict-compat: %+v", f)
	}
}

func TestTranscodeLegacyGSToCanonicalRS(t *testing.T) {
	mem := newMemOpener()
	w := mixfields.NewWriter(mixfields.New("canonical", mixfields.WithOpener(mem)))
	if _, err := w.WriteItem([]byte("hi"), mixfields.TagData); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	canonical := append([]byte{}, mem.files["canonical"]...)

	fieldStart := len(canonical) - 6 - (5 + 1 + 2 + 1)
	mem.set("legacy", toStrictCompat(canonical, fieldStart, 2))

	src := mixfields.NewReader(mixfields.New("legacy", mixfields.WithOpener(mem)), mixfields.WithStrictCompat())
	dstSession := mixfields.New("migrated", mixfields.WithOpener(mem))
	dst := mixfields.NewWriter(dstSession)

	n, err := mixfields.Transcode(dst, src)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if n != 1 {
		t.Fatalf("transcoded %d fields, want 1", n)
	}
	if err := dst.Close(); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(mem.files["migrated"], canonical) {
		t.Fatalf("migrated bytes mismatch:\n got  %X\n want %X", mem.files["migrated"], canonical)
	}
}
