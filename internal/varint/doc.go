// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package varint implements the Mixed Fields size-subfield: a
// variable-length encoding of non-negative integers as big-endian 7-bit
// groups with an MSB continuation bit.
//
// The encoding has nothing to do with machine byte order — unlike the
// sibling framer module's length prefix, a size-subfield is a sequence of
// 7-bit groups, not a fixed-width integer, so there is no native/foreign
// byte-order distinction to make.
package varint
