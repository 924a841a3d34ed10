package server

import (
	"crypto/tls"
	"errors"
)

// DefaultTLSConfig returns a TLS 1.2+ configuration restricted to ECDHE
// AEAD cipher suites.
func DefaultTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
		},
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},
	}
}

// ModernTLSConfig returns a TLS 1.3 only configuration.
// Use it when every client is known to support TLS 1.3.
func ModernTLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS13,
		CurvePreferences: []tls.CurveID{
			tls.X25519,
			tls.CurveP256,
		},
	}
}

// loadTLSFromFiles loads a key pair into the default or TLS 1.3 only profile.
func loadTLSFromFiles(certFile, keyFile string, tls13Only bool) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, errors.Join(ErrFailedLoadCert, err)
	}

	cfg := DefaultTLSConfig()
	if tls13Only {
		cfg = ModernTLSConfig()
	}
	cfg.Certificates = []tls.Certificate{cert}
	return cfg, nil
}
