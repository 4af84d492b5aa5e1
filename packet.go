// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

import (
	"encoding/binary"
)

// ParseHeader reads a Header from the first HeaderLen bytes of data.
// Words are in network byte order. Anything after the header is ignored.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderLen {
		return Header{}, ErrHeaderTooShort
	}

	var words [HeaderWords]uint16
	for i := range words {
		words[i] = binary.BigEndian.Uint16(data[i*2:])
	}

	return NewHeader(words), nil
}
