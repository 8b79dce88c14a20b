// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

// Field is the in-memory record of a single wire field: tag, payload, and
// the single endbyte that closed it.
//
// A Field is only ever handed to a caller by Reader.ReadItem for a USER
// field (DATA or EXTRA_METADATA, or the strict-compat GS DATA variant);
// HEADER, METADATA and ENDFILE are consumed internally by the Reader and
// never surfaced.
type Field struct {
	Tag     Tag
	Payload []byte
	Endbyte byte
}

// IsUser reports whether f carries a user tag a Reader may return: DATA,
// EXTRA_METADATA, or the strict-compat GS DATA variant. Writer.WriteItem
// accepts only the first two.
func (f Field) IsUser() bool {
	return isUserTag(f.Tag, true)
}
