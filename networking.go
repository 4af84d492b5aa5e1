// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

import (
	"net"

	"github.com/pion/logging"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

type ipControlMessage struct {
	IfIndex int
	Dst     net.IP
}

type ipPacketConn interface {
	ReadFrom(b []byte) (n int, cm *ipControlMessage, src net.Addr, err error)
	Close() error
}

type ipPacketConn4 struct {
	conn *ipv4.PacketConn
}

func (c ipPacketConn4) ReadFrom(b []byte) (n int, cm *ipControlMessage, src net.Addr, err error) {
	n, cm4, src, err := c.conn.ReadFrom(b)
	if err != nil || cm4 == nil {
		return n, nil, src, err
	}

	return n, &ipControlMessage{IfIndex: cm4.IfIndex, Dst: cm4.Dst}, src, err
}

func (c ipPacketConn4) Close() error {
	return c.conn.Close()
}

type ipPacketConn6 struct {
	conn *ipv6.PacketConn
}

func (c ipPacketConn6) ReadFrom(b []byte) (n int, cm *ipControlMessage, src net.Addr, err error) {
	n, cm6, src, err := c.conn.ReadFrom(b)
	if err != nil || cm6 == nil {
		return n, nil, src, err
	}

	return n, &ipControlMessage{IfIndex: cm6.IfIndex, Dst: cm6.Dst}, src, err
}

func (c ipPacketConn6) Close() error {
	return c.conn.Close()
}

// configurePacketConn4 sets up control messages on an IPv4 PacketConn and returns the wrapper.
// Returns nil if pc is nil.
func configurePacketConn4(pc *ipv4.PacketConn, name string, log logging.LeveledLogger) ipPacketConn {
	if pc == nil {
		return nil
	}
	if err := pc.SetControlMessage(ipv4.FlagInterface, true); err != nil {
		log.Warnf("[%s] failed to SetControlMessage(FlagInterface) on IPv4 PacketConn: %v", name, err)
	}
	if err := pc.SetControlMessage(ipv4.FlagDst, true); err != nil {
		log.Warnf("[%s] failed to SetControlMessage(FlagDst) on IPv4 PacketConn: %v", name, err)
	}

	return ipPacketConn4{pc}
}

// configurePacketConn6 sets up control messages on an IPv6 PacketConn and returns the wrapper.
// Returns nil if pc is nil.
func configurePacketConn6(pc *ipv6.PacketConn, name string, log logging.LeveledLogger) ipPacketConn {
	if pc == nil {
		return nil
	}
	if err := pc.SetControlMessage(ipv6.FlagInterface, true); err != nil {
		log.Warnf("[%s] failed to SetControlMessage(FlagInterface) on IPv6 PacketConn: %v", name, err)
	}
	if err := pc.SetControlMessage(ipv6.FlagDst, true); err != nil {
		log.Warnf("[%s] failed to SetControlMessage(FlagDst) on IPv6 PacketConn: %v", name, err)
	}

	return ipPacketConn6{pc}
}
