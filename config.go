// SPDX-FileCopyrightText: The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dnsheader

import (
	"net"

	"github.com/pion/logging"
)

const (
	// DefaultAddress is the address the listen example binds to.
	DefaultAddress = "127.0.0.1:65353"

	defaultBufferSize = 1024
)

// Datagram describes where a header was received from.
type Datagram struct {
	// Source is the address the datagram was received from.
	Source net.Addr
	// IfIndex is the interface the datagram arrived on, 0 if unknown.
	IfIndex int
	// Dst is the destination address of the datagram, nil if unknown.
	Dst net.IP
	// Payload is a copy of the full datagram, header included.
	Payload []byte
}

// HeaderHandler is called from a Listener read loop for every datagram
// that holds at least a complete header. Handlers for different packet
// conns may run concurrently.
type HeaderHandler func(Header, Datagram)

// listenerConfig holds the configuration for a Listener.
// This is populated by applying Option functions.
type listenerConfig struct {
	// name is the name of the listener used for logging purposes.
	name string

	// loggerFactory is used to create a logger for the listener.
	loggerFactory logging.LoggerFactory

	// bufferSize is the size of the inbound buffer. Longer datagrams are truncated.
	bufferSize int

	// handler receives every decoded header. When nil, headers are logged.
	handler HeaderHandler
}

// Option configures a Listener.
type Option interface {
	apply(*listenerConfig) error
}

// nameOption sets the name for logging.
type nameOption string

// WithName sets the name used for logging purposes.
func WithName(name string) Option {
	return nameOption(name)
}

func (o nameOption) apply(c *listenerConfig) error {
	c.name = string(o)

	return nil
}

// loggerFactoryOption sets the logger factory.
type loggerFactoryOption struct {
	factory logging.LoggerFactory
}

// WithLoggerFactory sets the logger factory for creating loggers.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return loggerFactoryOption{factory: factory}
}

func (o loggerFactoryOption) apply(c *listenerConfig) error {
	c.loggerFactory = o.factory

	return nil
}

// bufferSizeOption sets the inbound buffer size.
type bufferSizeOption int

// WithBufferSize sets how many bytes of each datagram are read.
// It must be at least HeaderLen. The default is 1024.
func WithBufferSize(size int) Option {
	return bufferSizeOption(size)
}

func (o bufferSizeOption) apply(c *listenerConfig) error {
	if int(o) < HeaderLen {
		return errInvalidBufferSize
	}
	c.bufferSize = int(o)

	return nil
}

// headerHandlerOption sets the header handler.
type headerHandlerOption struct {
	handler HeaderHandler
}

// WithHeaderHandler sets the function that receives decoded headers.
// If not set, every header is logged at info level.
func WithHeaderHandler(handler HeaderHandler) Option {
	return headerHandlerOption{handler: handler}
}

func (o headerHandlerOption) apply(c *listenerConfig) error {
	if o.handler == nil {
		return errNilHeaderHandler
	}
	c.handler = o.handler

	return nil
}
