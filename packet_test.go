// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

import (
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/dns/dnsmessage"
)

func TestParseHeader(t *testing.T) {
	for _, test := range []struct {
		name        string
		raw         []byte
		header      Header
		expectedErr error
	}{
		{
			name:        "Empty",
			raw:         []byte{},
			expectedErr: ErrHeaderTooShort,
		},
		{
			name:        "One Byte Short",
			raw:         []byte{0x00, 0x05, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			expectedErr: ErrHeaderTooShort,
		},
		{
			name:   "Exact Length",
			raw:    []byte{0x00, 0x05, 0x84, 0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x04},
			header: NewHeader([HeaderWords]uint16{0x0005, 0x8400, 1, 2, 3, 4}),
		},
		{
			name: "Trailing Sections Ignored",
			raw: []byte{
				0x12, 0x34, 0x00, 0x35, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x5f, 0x63, 0x6f,
				0x6d, 0x70, 0x61, 0x6e, 0x69, 0x6f, 0x6e, 0x2d, 0x6c, 0x69, 0x6e, 0x6b, 0x04, 0x5f, 0x74, 0x63,
				0x70, 0x05, 0x6c, 0x6f, 0x63, 0x61, 0x6c, 0x00, 0x00, 0x0c, 0x80, 0x01,
			},
			header: NewHeader([HeaderWords]uint16{0x1234, 0x0035, 1, 0, 0, 0}),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			header, err := ParseHeader(test.raw)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				assert.Equal(t, Header{}, header)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.header, header)
		})
	}
}

func TestParseHeaderNetworkByteOrder(t *testing.T) {
	header, err := ParseHeader([]byte{0xAB, 0xCD, 0x00, 0x01, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, uint16(0xABCD), header.ID())
	assert.Equal(t, DirectionResponse, header.Direction())

	header, err = ParseHeader([]byte{0xAB, 0xCD, 0x01, 0x00, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, DirectionRequest, header.Direction())
}

// Headers packed by a standard DNS encoder keep QR, OPCODE, AA and TC in
// the high bits of the flags word, so only the identifier and the low bits
// line up with this layout.
func TestParseHeaderDNSMessage(t *testing.T) {
	msg := dnsmessage.Message{
		Header: dnsmessage.Header{
			ID:            0xBEEF,
			Response:      true,
			Authoritative: true,
			Truncated:     true,
			RCode:         dnsmessage.RCodeNameError,
		},
	}
	raw, err := msg.Pack()
	require.NoError(t, err)

	header, err := ParseHeader(raw)
	require.NoError(t, err)

	assert.Equal(t, uint16(0xBEEF), header.ID())
	assert.Equal(t, [HeaderWords]uint16{0xBEEF, 0x8603, 0, 0, 0, 0}, header.Words())
	assert.Equal(t, DirectionResponse, header.Direction())
	assert.Equal(t, OpcodeInverseQuery, header.Opcode())
	assert.Equal(t, AuthorityNone, header.Authoritative())
	assert.Equal(t, TruncationFit, header.Truncated())
}

func TestParseHeaderMiekgQuery(t *testing.T) {
	query := new(dns.Msg)
	query.SetQuestion("pion-test.local.", dns.TypeA)
	query.Id = 0x4242

	raw, err := query.Pack()
	require.NoError(t, err)

	header, err := ParseHeader(raw)
	require.NoError(t, err)

	// RD is bit 8 on the wire and is not decoded here
	assert.Equal(t, [HeaderWords]uint16{0x4242, 0x0100, 1, 0, 0, 0}, header.Words())
	assert.Equal(t, DirectionRequest, header.Direction())
	assert.Equal(t, OpcodeQuery, header.Opcode())
	assert.Equal(t, AuthorityNone, header.Authoritative())
	assert.Equal(t, TruncationFit, header.Truncated())

	response := new(dns.Msg)
	response.SetRcode(query, dns.RcodeRefused)

	raw, err = response.Pack()
	require.NoError(t, err)

	header, err = ParseHeader(raw)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x4242), header.ID())
	assert.Equal(t, DirectionResponse, header.Direction())
	assert.Equal(t, OpcodeStatus, header.Opcode())
}
