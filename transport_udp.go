package main

import (
	"fmt"
	"net"
	"time"
)

// Plain DNS over UDP answers fit in 512 bytes; NTP responses are far smaller.
const maxDatagramSize = 512

// UDPTransport adapts a net.UDPConn to the PacketTransport contract. The
// Available probe performs a short-deadline read and parks the datagram for
// the following Receive call, since the socket API exposes no portable
// buffered-bytes counter.
type UDPTransport struct {
	conn        *net.UDPConn
	readTimeout time.Duration
	pending     []byte
}

func NewUDPTransport() *UDPTransport {
	return &UDPTransport{readTimeout: time.Second}
}

func (t *UDPTransport) Connect(address string, port int) error {
	rAddr_, err := net.ResolveUDPAddr("udp4", fmt.Sprintf("%s:%d", address, port))
	if err != nil {
		return err
	}
	conn_, err := net.DialUDP("udp4", nil, rAddr_)
	if err != nil {
		return err
	}
	t.conn = conn_
	return nil
}

func (t *UDPTransport) Send(pkt []byte) error {
	if t.conn == nil {
		return net.ErrClosed
	}
	_, err := t.conn.Write(pkt)
	return err
}

func (t *UDPTransport) Available() (int, error) {
	if t.pending != nil {
		return len(t.pending), nil
	}
	if t.conn == nil {
		return 0, net.ErrClosed
	}
	buf_ := make([]byte, maxDatagramSize)
	if err := t.conn.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return 0, err
	}
	n_, err := t.conn.Read(buf_)
	if err != nil {
		if netErr_, ok := err.(net.Error); ok && netErr_.Timeout() {
			return 0, nil
		}
		return 0, err
	}
	t.pending = buf_[:n_]
	return n_, nil
}

func (t *UDPTransport) Receive() ([]byte, error) {
	if t.pending != nil {
		pkt_ := t.pending
		t.pending = nil
		return pkt_, nil
	}
	if t.conn == nil {
		return nil, net.ErrClosed
	}
	buf_ := make([]byte, maxDatagramSize)
	if err := t.conn.SetReadDeadline(time.Now().Add(t.readTimeout)); err != nil {
		return nil, err
	}
	n_, err := t.conn.Read(buf_)
	if err != nil {
		return nil, err
	}
	return buf_[:n_], nil
}

func (t *UDPTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

func (t *UDPTransport) SetReadTimeout(d time.Duration) {
	t.readTimeout = d
}
