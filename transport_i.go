package main

import "time"

// PacketTransport is the datagram socket capability the DNS and NTP clients
// consume. One Connect pairs with exactly one Close, and one Send is
// expected to yield at most one Receive.
type PacketTransport interface {
	Connect(address string, port int) error
	Send(pkt []byte) error
	// Available reports how many bytes are buffered for Receive, without
	// blocking.
	Available() (int, error)
	// Receive returns one received datagram.
	Receive() ([]byte, error)
	Close() error
	SetReadTimeout(d time.Duration)
}
