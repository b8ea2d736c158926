package main

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	NtpPort = 123

	ntpPacketLen = 48
	// Seconds between the NTP epoch (1900) and the Unix epoch (1970).
	ntpUnixEpochDelta = 2208988800
	// Transmit-timestamp seconds field within the response.
	ntpTransmitTSOffset = 40
)

// NtpClient fetches the current time from an NTP server with a single
// fixed-format request/response exchange over the shared datagram transport.
// No retry machinery: one send, one receive.
type NtpClient struct {
	server    string
	utcOffset float64 // hours, may be fractional

	dial func() PacketTransport
}

func NewNtpClient(server string, utcOffset float64) *NtpClient {
	return &NtpClient{
		server:    server,
		utcOffset: utcOffset,
		dial:      func() PacketTransport { return NewUDPTransport() },
	}
}

// GetTime returns the server's transmit timestamp adjusted by the configured
// UTC offset.
func (c *NtpClient) GetTime() (time.Time, error) {
	if c.server == "" {
		return time.Time{}, ErrInvalidServer
	}
	transport_ := c.dial()
	defer func() { _ = transport_.Close() }()

	if err := transport_.Connect(c.server, NtpPort); err != nil {
		return time.Time{}, err
	}
	// Leap indicator 0, version 4, client mode.
	pkt_ := make([]byte, ntpPacketLen)
	pkt_[0] = 0x23
	if err := transport_.Send(pkt_); err != nil {
		return time.Time{}, err
	}
	rsp_, err := transport_.Receive()
	if err != nil {
		return time.Time{}, err
	}
	if len(rsp_) < ntpTransmitTSOffset+4 {
		return time.Time{}, fmt.Errorf("%w: %d byte ntp response", ErrTruncated, len(rsp_))
	}
	secs_ := binary.BigEndian.Uint32(rsp_[ntpTransmitTSOffset : ntpTransmitTSOffset+4])
	unix_ := int64(secs_) - ntpUnixEpochDelta + int64(c.utcOffset*3600)
	return time.Unix(unix_, 0).UTC(), nil
}
