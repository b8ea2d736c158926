package main

import (
	"fmt"
	"math/rand"
	"strings"
)

const (
	DnsPort = 53

	TypeA    = 0x0001
	ClassIN  = 0x0001
	DataLenA = 4

	// Standard query, recursion desired.
	queryFlags = 0x0100

	headerLen      = 12
	maxLabelLen    = 63
	maxHostnameLen = 253
)

// DnsQuery is one wire-format question packet plus the transaction id it
// carries. A fresh one is built per Resolve call and discarded afterwards;
// retries within a call reuse the same packet and id.
type DnsQuery struct {
	Hostname string
	ID       uint16
	Wire     []byte
}

// BuildQuery serializes a single-question A/IN query for hostname, drawing
// the 16-bit transaction id from rng.
func BuildQuery(hostname string, rng *rand.Rand) (*DnsQuery, error) {
	if err := ValidateHostname(hostname); err != nil {
		return nil, err
	}
	q_ := &DnsQuery{Hostname: hostname, ID: uint16(rng.Intn(1 << 16))}

	wire_ := make([]byte, 0, headerLen+len(hostname)+2+4)

	// Header: id, flags, QDCOUNT=1, ANCOUNT/NSCOUNT/ARCOUNT=0.
	wire_ = appendUint16(wire_, q_.ID)
	wire_ = appendUint16(wire_, queryFlags)
	wire_ = appendUint16(wire_, 1)
	wire_ = appendUint16(wire_, 0)
	wire_ = appendUint16(wire_, 0)
	wire_ = appendUint16(wire_, 0)

	// Question: length-prefixed labels, zero terminator, QTYPE, QCLASS.
	for _, label_ := range strings.Split(hostname, ".") {
		wire_ = append(wire_, byte(len(label_)))
		wire_ = append(wire_, label_...)
	}
	wire_ = append(wire_, 0x00)
	wire_ = appendUint16(wire_, TypeA)
	wire_ = appendUint16(wire_, ClassIN)

	q_.Wire = wire_
	return q_, nil
}

// ValidateHostname enforces the wire-format limits before any byte is
// emitted: ASCII only, labels 1-63 bytes, whole name at most 253 bytes. An
// oversized label would corrupt the length-prefix framing for both sides.
func ValidateHostname(hostname string) error {
	if hostname == "" || len(hostname) > maxHostnameLen {
		return fmt.Errorf("%w: %q", ErrInvalidHostname, hostname)
	}
	for i_ := 0; i_ < len(hostname); i_++ {
		if hostname[i_] > 0x7F {
			return fmt.Errorf("%w: non-ascii byte in %q", ErrInvalidHostname, hostname)
		}
	}
	for _, label_ := range strings.Split(hostname, ".") {
		if len(label_) == 0 || len(label_) > maxLabelLen {
			return fmt.Errorf("%w: bad label in %q", ErrInvalidHostname, hostname)
		}
	}
	return nil
}

// appendUint16 appends v in network byte order.
func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}
