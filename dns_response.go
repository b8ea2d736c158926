package main

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Response, standard query, recursion desired and available, rcode 0.
// Anything else (server error, truncation, a stray query) is rejected whole.
const answerFlags = 0x8180

// Top two bits of a name byte set marks a 2-byte compression pointer.
const pointerMask = 0xC0

// ParseResponse validates a received datagram against the transaction id of
// the query it should answer and extracts the first A record's IPv4 address.
// Validation is sequential and short-circuits on the first violated
// expectation, each with its own error.
func ParseResponse(pkt []byte, wantID uint16) (net.IP, error) {
	if len(pkt) < headerLen {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(pkt))
	}
	if id_ := binary.BigEndian.Uint16(pkt[0:2]); id_ != wantID {
		return nil, fmt.Errorf("%w: got %#04x, want %#04x", ErrIDMismatch, id_, wantID)
	}
	if flags_ := binary.BigEndian.Uint16(pkt[2:4]); flags_ != answerFlags {
		return nil, fmt.Errorf("%w: %#04x", ErrUnexpectedFlags, flags_)
	}
	if qdCount_ := binary.BigEndian.Uint16(pkt[4:6]); qdCount_ < 1 {
		return nil, ErrNoQuestion
	}
	if anCount_ := binary.BigEndian.Uint16(pkt[6:8]); anCount_ < 1 {
		return nil, ErrNoAnswer
	}

	// Skip the echoed question name, then check its type and class.
	off_, err := skipName(pkt, headerLen)
	if err != nil {
		return nil, err
	}
	if off_+4 > len(pkt) {
		return nil, fmt.Errorf("%w: question fields", ErrTruncated)
	}
	if qType_ := binary.BigEndian.Uint16(pkt[off_ : off_+2]); qType_ != TypeA {
		return nil, fmt.Errorf("%w: %#04x", ErrUnexpectedQType, qType_)
	}
	if qClass_ := binary.BigEndian.Uint16(pkt[off_+2 : off_+4]); qClass_ != ClassIN {
		return nil, fmt.Errorf("%w: %#04x", ErrUnexpectedQClass, qClass_)
	}
	off_ += 4

	// The answer owner name may be literal labels, a compression pointer, or
	// labels ending in a pointer. Decode it generically instead of scanning
	// for the 0xC0 0x0C byte pair, which false-positives on servers that do
	// not compress.
	off_, err = skipName(pkt, off_)
	if err != nil {
		return nil, err
	}
	if off_+10 > len(pkt) {
		return nil, fmt.Errorf("%w: answer fields", ErrTruncated)
	}
	if aType_ := binary.BigEndian.Uint16(pkt[off_ : off_+2]); aType_ != TypeA {
		return nil, fmt.Errorf("%w: %#04x", ErrUnexpectedAnswerType, aType_)
	}
	if aClass_ := binary.BigEndian.Uint16(pkt[off_+2 : off_+4]); aClass_ != ClassIN {
		return nil, fmt.Errorf("%w: %#04x", ErrUnexpectedAnswerClass, aClass_)
	}
	// 4 bytes of TTL at off_+4 are ignored.
	if rdLen_ := binary.BigEndian.Uint16(pkt[off_+8 : off_+10]); rdLen_ != DataLenA {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedDataLength, rdLen_)
	}
	off_ += 10

	if off_+DataLenA > len(pkt) {
		return nil, fmt.Errorf("%w: answer data", ErrTruncated)
	}
	return net.IPv4(pkt[off_], pkt[off_+1], pkt[off_+2], pkt[off_+3]).To4(), nil
}

// skipName advances past a possibly-compressed name starting at off and
// returns the offset of the byte that follows it. A compression pointer ends
// the name in place, so it is never followed; every step is bounds-checked
// and an overrun fails closed.
func skipName(pkt []byte, off int) (int, error) {
	for {
		if off >= len(pkt) {
			return 0, fmt.Errorf("%w: name runs past packet end", ErrMalformedName)
		}
		b_ := pkt[off]
		switch {
		case b_ == 0x00:
			return off + 1, nil
		case b_&pointerMask == pointerMask:
			if off+2 > len(pkt) {
				return 0, fmt.Errorf("%w: dangling compression pointer", ErrMalformedName)
			}
			return off + 2, nil
		case b_&pointerMask != 0:
			// The 0x40 and 0x80 label types were never assigned.
			return 0, fmt.Errorf("%w: reserved label type %#02x", ErrMalformedName, b_)
		default:
			off += 1 + int(b_)
		}
	}
}
