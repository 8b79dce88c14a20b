// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

// Transcode drains src and re-emits every USER field it yields through dst,
// converting a strict-compat GS-tagged DATA file into canonical RS-tagged
// form. It does not call dst.Close; the caller closes dst once it has
// decided no further fields will be appended (for example, after
// transcoding several sources into one destination).
//
// This is the same copy-everything-through shape as the sibling framer
// module's Forwarder, specialized to a tagged record stream instead of raw
// byte chunks: read one unit, translate it, write it, repeat until the
// source reports EndOfStream.
func Transcode(dst *Writer, src *Reader) (int64, error) {
	var n int64
	for {
		field, ok, err := src.ReadItem()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}

		tag := field.Tag
		if tag == TagDataCompat {
			tag = TagData
		}
		if _, err := dst.WriteItem(field.Payload, tag); err != nil {
			return n, err
		}
		n++
	}
}
