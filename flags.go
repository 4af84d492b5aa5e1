// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

import "fmt"

// flags is the second header word. Bits are numbered from the least
// significant bit:
//
//	 15 ........ 6   5    4   3  2  1   0
//	+-------------+----+----+---------+----+
//	|  (unused)   | TC | AA | OPCODE  | QR |
//	+-------------+----+----+---------+----+
type flags uint16

const (
	flagQR     flags = 0b0000_0000_0000_0001
	flagOpcode flags = 0b0000_0000_0000_1110
	flagAA     flags = 0b0000_0000_0001_0000
	flagTC     flags = 0b0000_0000_0010_0000

	shiftQR     = 0
	shiftOpcode = 1
	shiftAA     = 4
	shiftTC     = 5
)

// field masks f and shifts the result down so it starts at bit 0.
func (f flags) field(mask flags, shift uint) uint16 {
	return uint16((f & mask) >> shift)
}

func (f flags) direction() Direction {
	if f.field(flagQR, shiftQR) == 0 {
		return DirectionRequest
	}

	return DirectionResponse
}

func (f flags) opcode() Opcode {
	switch f.field(flagOpcode, shiftOpcode) {
	case 0:
		return OpcodeQuery
	case 1:
		return OpcodeInverseQuery
	case 2:
		return OpcodeStatus
	default:
		return OpcodeReserved
	}
}

func (f flags) authoritative() Authority {
	if singleBit("AA", f.field(flagAA, shiftAA)) {
		return AuthorityHave
	}

	return AuthorityNone
}

func (f flags) truncated() Truncation {
	if singleBit("TC", f.field(flagTC, shiftTC)) {
		return TruncationTruncated
	}

	return TruncationFit
}

// singleBit maps an extracted one-bit field to a bool. Anything other than
// 0 or 1 means the mask and shift constants disagree, which is a bug.
func singleBit(name string, v uint16) bool {
	switch v {
	case 0:
		return false
	case 1:
		return true
	default:
		panic(fmt.Errorf("%w: %s decoded to %d", errFieldOutOfRange, name, v))
	}
}
