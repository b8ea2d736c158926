package main

import (
	"os"
	"testing"
)

func TestNormalizeHostname(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "example.com", want: "example.com"},
		{name: "trailing dot", in: "example.com.", want: "example.com"},
		{name: "surrounding space", in: "  example.com \n", want: "example.com"},
		{name: "fqdn with space", in: " example.com. ", want: "example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got_ := NormalizeHostname(tt.in); got_ != tt.want {
				t.Errorf("NormalizeHostname(%q) = %q, want %q", tt.in, got_, tt.want)
			}
		})
	}
}

func TestServerAddrUsable(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{name: "ipv4", addr: "8.8.8.8", want: true},
		{name: "ipv6", addr: "2001:db8::1", want: true},
		{name: "hostname", addr: "dns.google", want: false},
		{name: "with port", addr: "8.8.8.8:53", want: false},
		{name: "empty", addr: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got_ := ServerAddrUsable(tt.addr); got_ != tt.want {
				t.Errorf("ServerAddrUsable(%q) = %v, want %v", tt.addr, got_, tt.want)
			}
		})
	}
}

func TestPathExists(t *testing.T) {
	tmpFile_, err := os.CreateTemp("", "exists")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile_.Name())
	_ = tmpFile_.Close()

	if !PathExists(tmpFile_.Name()) {
		t.Errorf("PathExists(%q) = false, want true", tmpFile_.Name())
	}
	if PathExists(tmpFile_.Name() + ".missing") {
		t.Error("PathExists() = true for missing path")
	}
}
