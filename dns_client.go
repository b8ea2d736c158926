package main

import (
	"math/rand"
	"net"
	"time"
)

const (
	DefaultAttemptTimeout = time.Second
	DefaultMaxAttempts    = 3
	DefaultPollInterval   = 50 * time.Millisecond
)

// DnsClient resolves hostnames to IPv4 addresses against a single configured
// server. Calls are synchronous and must not be issued concurrently: each
// Resolve owns one transaction id and one socket for its whole duration.
type DnsClient struct {
	server         string
	port           int
	attemptTimeout time.Duration
	maxAttempts    int
	pollInterval   time.Duration

	// Owned random source for transaction ids, injectable in tests.
	rng  *rand.Rand
	dial func() PacketTransport
}

func NewDnsClient(server string) *DnsClient {
	return &DnsClient{
		server:         server,
		port:           DnsPort,
		attemptTimeout: DefaultAttemptTimeout,
		maxAttempts:    DefaultMaxAttempts,
		pollInterval:   DefaultPollInterval,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
		dial:           func() PacketTransport { return NewUDPTransport() },
	}
}

// Resolve translates hostname into an IPv4 address, driving up to
// maxAttempts send/receive/parse cycles. The transaction id and packet are
// built once per call; every attempt re-sends the packet so a lost datagram
// does not doom the remaining attempts, and the await deadline restarts at
// the top of each attempt. The socket is closed exactly once, on every path.
func (c *DnsClient) Resolve(hostname string) (net.IP, error) {
	if c.server == "" {
		return nil, ErrInvalidServer
	}
	query_, err := BuildQuery(NormalizeHostname(hostname), c.rng)
	if err != nil {
		return nil, err
	}

	transport_ := c.dial()
	defer func() { _ = transport_.Close() }()

	transport_.SetReadTimeout(c.attemptTimeout)
	if err = transport_.Connect(c.server, c.port); err != nil {
		return nil, err
	}

	var lastErr_ error
	for attempt_ := 1; attempt_ <= c.maxAttempts; attempt_++ {
		addr_, err := c.attempt(transport_, query_)
		if err == nil {
			log.Infof("resolved %s to %s in %d attempt(s)", query_.Hostname, addr_, attempt_)
			return addr_, nil
		}
		lastErr_ = err
		log.Debugf("attempt %d/%d for %s failed: %v", attempt_, c.maxAttempts, query_.Hostname, err)
		if !IsRetryable(err) {
			break
		}
	}
	return nil, lastErr_
}

// attempt runs one send/await/parse cycle with a fresh deadline, polling the
// transport for received bytes on the configured interval.
func (c *DnsClient) attempt(transport PacketTransport, query *DnsQuery) (net.IP, error) {
	if err := transport.Send(query.Wire); err != nil {
		return nil, err
	}
	deadline_ := time.Now().Add(c.attemptTimeout)
	for {
		n_, err := transport.Available()
		if err != nil {
			return nil, err
		}
		if n_ > 0 {
			break
		}
		if time.Now().After(deadline_) {
			return nil, ErrTimedOut
		}
		time.Sleep(c.pollInterval)
	}
	pkt_, err := transport.Receive()
	if err != nil {
		return nil, err
	}
	return ParseResponse(pkt_, query.ID)
}
