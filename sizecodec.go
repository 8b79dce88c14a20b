// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mixfields

import (
	"errors"

	"code.hybscloud.com/mixfields/internal/varint"
)

// EncodeSize returns the size-subfield encoding n (a non-negative length):
// big-endian 7-bit groups with an MSB continuation bit on every byte but
// the last. EncodeSize(0) is the single byte 0x00.
func EncodeSize(n int) []byte {
	return varint.Encode(uint64(n))
}

func appendSize(dst []byte, n int) []byte {
	return varint.Append(dst, uint64(n))
}

// DecodeSize interprets a complete size-subfield and returns the integer
// it encodes. It fails KindEmptyChunk on an empty slice.
func DecodeSize(b []byte) (int, error) {
	n, err := varint.Decode(b)
	if err != nil {
		if errors.Is(err, varint.ErrEmptyChunk) {
			return 0, newErr(KindEmptyChunk, -1)
		}
		return 0, err
	}
	return int(n), nil
}
