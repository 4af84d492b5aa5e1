// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package dnsheader decodes the fixed six-word header that leads every
// message: an opaque identifier followed by a flags word carrying the
// direction, opcode, authority and truncation fields.
package dnsheader

import "fmt"

const (
	// HeaderWords is the number of 16-bit words in a Header.
	HeaderWords = 6

	// HeaderLen is the size of a Header on the wire, in bytes.
	HeaderLen = HeaderWords * 2

	wordID    = 0
	wordFlags = 1
)

// Header is the fixed leading portion of a message. Words 2 through 5 are
// carried but not interpreted.
//
// A Header is a value and is never modified after construction, so it is
// safe to share between goroutines.
type Header struct {
	words [HeaderWords]uint16
}

// NewHeader returns a Header holding words. Any bit pattern is accepted.
func NewHeader(words [HeaderWords]uint16) Header {
	return Header{words: words}
}

// ID returns the message identifier, word 0 unchanged.
func (h Header) ID() uint16 {
	return h.words[wordID]
}

// Direction reports whether the message is a request or a response.
func (h Header) Direction() Direction {
	return h.flags().direction()
}

// Opcode returns the kind of operation requested.
func (h Header) Opcode() Opcode {
	return h.flags().opcode()
}

// Authoritative reports whether the AA bit is set.
func (h Header) Authoritative() Authority {
	return h.flags().authoritative()
}

// Truncated reports whether the TC bit is set.
func (h Header) Truncated() Truncation {
	return h.flags().truncated()
}

// Words returns a copy of the stored words.
func (h Header) Words() [HeaderWords]uint16 {
	return h.words
}

func (h Header) String() string {
	return fmt.Sprintf(
		"id=0x%04x flags=0x%04x direction=%s opcode=%s authoritative=%s truncated=%s",
		h.ID(), h.words[wordFlags], h.Direction(), h.Opcode(), h.Authoritative(), h.Truncated(),
	)
}

func (h Header) flags() flags {
	return flags(h.words[wordFlags])
}
