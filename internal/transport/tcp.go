package transport

import (
	"context"
	"net"
	"time"

	"pchat/internal/errors"
	"pchat/util"
)

// Resolve expands host into its IPv4 addresses, in resolver order.
// Numeric addresses short-circuit the resolver.
func Resolve(host string) ([]net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		ip4 := ip.To4()
		if ip4 == nil {
			return nil, errors.Wrap("resolve", host, errors.New("not an IPv4 address"))
		}
		return []net.IP{ip4}, nil
	}

	addrs, err := net.LookupIP(host)
	if err != nil {
		return nil, errors.Wrap("resolve", host, err)
	}
	var ips []net.IP
	for _, ip := range addrs {
		if ip4 := ip.To4(); ip4 != nil {
			ips = append(ips, ip4)
		}
	}
	if len(ips) == 0 {
		return nil, errors.Wrap("resolve", host, errors.New("no IPv4 addresses"))
	}
	return ips, nil
}

// TCPDialer establishes plain IPv4 TCP connections.
type TCPDialer struct {
	// Timeout bounds each single connection attempt.  Zero means the
	// attempt is limited only by ctx.
	Timeout time.Duration
}

// Dial resolves host and attempts each IPv4 candidate in order,
// returning the first connection that succeeds.  When every candidate
// fails, the error from the last attempt is returned.
func (d *TCPDialer) Dial(ctx context.Context, host string, port int) (net.Conn, error) {
	ips, err := Resolve(host)
	if err != nil {
		return nil, err
	}

	dialer := net.Dialer{Timeout: d.Timeout}
	var lastErr error
	for _, ip := range ips {
		conn, err := dialer.DialContext(ctx, "tcp4", util.FormatAddr(ip.String(), port))
		if err == nil {
			return conn, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Wrap("connect", util.FormatAddr(host, port), lastErr)
}
