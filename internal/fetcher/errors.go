package fetcher

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
)

// Kind classifies a transport failure for user-facing advice.
type Kind string

// Transport failure kinds.
const (
	KindTimeout    Kind = "timeout"
	KindTLS        Kind = "tls"
	KindConnection Kind = "connection"
	KindUnknown    Kind = "unknown"
)

// Classify maps a fetch error onto a failure kind.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return KindTimeout
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return KindTLS
	}
	var authErr x509.UnknownAuthorityError
	if errors.As(err, &authErr) {
		return KindTLS
	}
	var hostErr x509.HostnameError
	if errors.As(err, &hostErr) {
		return KindTLS
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindConnection
	}
	return KindUnknown
}

// Advice returns the troubleshooting hint rendered alongside a failed fetch.
func Advice(kind Kind) string {
	switch kind {
	case KindTimeout:
		return "the connection timed out; raise --timeout or check the network"
	case KindTLS:
		return "TLS certificate verification failed"
	case KindConnection:
		return "connection failed; the site may be unreachable or DNS resolution failed"
	default:
		return "unexpected transport failure"
	}
}
