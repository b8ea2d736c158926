package main

import (
	"net/netip"
	"os"
	"strings"
)

func PathExists(filePath string) bool {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}
	return true
}

// NormalizeHostname strips surrounding whitespace and the trailing dot of a
// fully-qualified name; the wire encoder appends its own terminator.
func NormalizeHostname(hostname string) string {
	return strings.TrimSuffix(strings.TrimSpace(hostname), ".")
}

// ServerAddrUsable reports whether addr parses as a bare IP address,
// eg: 8.8.8.8.
func ServerAddrUsable(addr string) bool {
	_, err := netip.ParseAddr(addr)
	return err == nil
}
