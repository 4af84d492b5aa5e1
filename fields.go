// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

// Direction is the decoded QR field.
type Direction uint8

const (
	// DirectionRequest is a QR bit of 0.
	DirectionRequest Direction = iota
	// DirectionResponse is a QR bit of 1.
	DirectionResponse
)

func (d Direction) String() string {
	switch d {
	case DirectionRequest:
		return "Request"
	case DirectionResponse:
		return "Response"
	default:
		return unknownStr
	}
}

// Opcode is the decoded OPCODE field, the kind of operation requested.
type Opcode uint8

const (
	// OpcodeQuery is a standard query (0).
	OpcodeQuery Opcode = iota
	// OpcodeInverseQuery is an inverse query (1).
	OpcodeInverseQuery
	// OpcodeStatus is a server status request (2).
	OpcodeStatus
	// OpcodeReserved covers every remaining value of the 3-bit field,
	// 3 through 7 inclusive. The numeric value is not preserved.
	OpcodeReserved
)

func (o Opcode) String() string {
	switch o {
	case OpcodeQuery:
		return "Query"
	case OpcodeInverseQuery:
		return "InverseQuery"
	case OpcodeStatus:
		return "Status"
	case OpcodeReserved:
		return "Reserved"
	default:
		return unknownStr
	}
}

// Authority is the decoded AA field.
type Authority uint8

const (
	// AuthorityNone is an AA bit of 0.
	AuthorityNone Authority = iota
	// AuthorityHave is an AA bit of 1.
	AuthorityHave
)

func (a Authority) String() string {
	switch a {
	case AuthorityNone:
		return "None"
	case AuthorityHave:
		return "Have"
	default:
		return unknownStr
	}
}

// Truncation is the decoded TC field.
type Truncation uint8

const (
	// TruncationFit is a TC bit of 0, the message fit the transport.
	TruncationFit Truncation = iota
	// TruncationTruncated is a TC bit of 1.
	TruncationTruncated
)

func (t Truncation) String() string {
	switch t {
	case TruncationFit:
		return "Fit"
	case TruncationTruncated:
		return "Truncated"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"
