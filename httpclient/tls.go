package httpclient

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// TLSConfig configures TLS settings for the HTTP transport.
type TLSConfig struct {
	// InsecureSkipVerify disables certificate verification. Development only.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`
	// CAFile is a path to a PEM bundle of additional root CAs.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`
	// ServerName overrides the server name used for verification.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
}

// Build constructs a *tls.Config, or nil when nothing is customized.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if !c.InsecureSkipVerify && c.CAFile == "" && c.ServerName == "" {
		return nil, nil
	}

	cfg := &tls.Config{
		InsecureSkipVerify: c.InsecureSkipVerify,
		ServerName:         c.ServerName,
	}

	if c.CAFile != "" {
		pem, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("read CA file: %w", err)
		}
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", c.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
