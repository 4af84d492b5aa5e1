// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

import "errors"

var (
	// ErrHeaderTooShort is returned when fewer than HeaderLen bytes are supplied.
	ErrHeaderTooShort = errors.New("dnsheader: data is too short to hold a header")

	// ErrNoPacketConn is returned by Listen when both packet conns are nil.
	ErrNoPacketConn = errors.New("dnsheader: must supply at least an IPv4 or IPv6 PacketConn")

	errFieldOutOfRange   = errors.New("dnsheader: single-bit field out of range")
	errInvalidBufferSize = errors.New("dnsheader: buffer size must be at least HeaderLen")
	errNilHeaderHandler  = errors.New("dnsheader: header handler must not be nil")
	errFailedToClose     = errors.New("dnsheader: failed to close Listener")
)
