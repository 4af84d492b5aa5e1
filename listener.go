// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/pion/logging"
	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// Listener receives datagrams and hands the header of each one to a HeaderHandler.
type Listener struct {
	name    string
	log     logging.LeveledLogger
	handler HeaderHandler

	pktConnV4 ipPacketConn
	pktConnV6 ipPacketConn

	closeOnce sync.Once
	closeErr  error
	closed    chan any
}

// Listen starts reading from the given packet conns, at least one of which
// must be non-nil. The conns are owned by the Listener from then on and are
// closed by Close.
//
// Example:
//
//	addr, _ := net.ResolveUDPAddr("udp4", dnsheader.DefaultAddress)
//	l, _ := net.ListenUDP("udp4", addr)
//
//	listener, err := dnsheader.Listen(
//	    ipv4.NewPacketConn(l),
//	    nil,
//	    dnsheader.WithHeaderHandler(func(h dnsheader.Header, d dnsheader.Datagram) {
//	        fmt.Println(d.Source, h.Opcode())
//	    }),
//	)
func Listen(
	pktConnV4 *ipv4.PacketConn,
	pktConnV6 *ipv6.PacketConn,
	opts ...Option,
) (*Listener, error) {
	cfg := &listenerConfig{
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	if pktConnV4 == nil && pktConnV6 == nil {
		return nil, ErrNoPacketConn
	}

	loggerFactory := cfg.loggerFactory
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}

	listener := &Listener{
		name:    cfg.name,
		log:     loggerFactory.NewLogger("dnsheader"),
		handler: cfg.handler,
		closed:  make(chan any),
	}
	if listener.name == "" {
		listener.name = fmt.Sprintf("%p", listener)
	}
	if listener.handler == nil {
		listener.handler = listener.logHeader
	}

	listener.pktConnV4 = configurePacketConn4(pktConnV4, listener.name, listener.log)
	listener.pktConnV6 = configurePacketConn6(pktConnV6, listener.name, listener.log)

	started := make(chan struct{})
	go listener.start(started, cfg.bufferSize)
	<-started

	return listener, nil
}

// Close closes the packet conns and waits for the read loops to exit.
// If a conn fails to close, Close returns without waiting.
// Calling Close more than once returns the result of the first call.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		var errs []error
		for _, pktConn := range []ipPacketConn{l.pktConnV4, l.pktConnV6} {
			if pktConn == nil {
				continue
			}
			if err := pktConn.Close(); err != nil {
				errs = append(errs, err)
			}
		}

		if len(errs) != 0 {
			l.closeErr = fmt.Errorf("%w: %w", errFailedToClose, errors.Join(errs...))

			return
		}

		<-l.closed
	})

	return l.closeErr
}

func (l *Listener) start(started chan<- struct{}, bufferSize int) {
	defer close(l.closed)

	var wg sync.WaitGroup
	readerStarted := make(chan struct{})

	var numReaders int
	for _, reader := range []struct {
		name    string
		pktConn ipPacketConn
	}{
		{"udp4", l.pktConnV4},
		{"udp6", l.pktConnV6},
	} {
		if reader.pktConn == nil {
			continue
		}

		reader := reader
		numReaders++
		wg.Add(1)
		go func() {
			defer wg.Done()
			readerStarted <- struct{}{}
			l.readLoop(reader.name, reader.pktConn, bufferSize)
		}()
	}
	for i := 0; i < numReaders; i++ {
		<-readerStarted
	}
	close(started)

	wg.Wait()
}

func (l *Listener) readLoop(name string, pktConn ipPacketConn, bufferSize int) {
	b := make([]byte, bufferSize)

	for {
		n, cm, src, err := pktConn.ReadFrom(b)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			l.log.Warnf("[%s] failed to ReadFrom %q %v", l.name, src, err)

			continue
		}
		l.log.Debugf("[%s] got %d bytes on %s from %s", l.name, n, name, src)
		l.log.Tracef("[%s] datagram from %s:\n%s", l.name, src, hex.Dump(b[:n]))

		header, err := ParseHeader(b[:n])
		if err != nil {
			l.log.Warnf("[%s] failed to parse header from %s: %v", l.name, src, err)

			continue
		}

		datagram := Datagram{
			Source:  src,
			Payload: append([]byte(nil), b[:n]...),
		}
		if cm != nil {
			datagram.IfIndex = cm.IfIndex
			datagram.Dst = cm.Dst
		}

		l.handler(header, datagram)
	}
}

func (l *Listener) logHeader(header Header, datagram Datagram) {
	l.log.Infof("[%s] header from %s: %s", l.name, datagram.Source, header)
}
