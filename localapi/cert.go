package localapi

import (
	"context"
	"encoding/pem"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// CertPair fetches the certificate chain and private key for one of the
// node's domains. The domain must be a non-empty DNS name the daemon is
// authorized to issue for; an unauthorized domain yields an *APIError.
func (c *Client) CertPair(ctx context.Context, domain string) (*CertPair, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}

	payload, err := c.send(ctx, http.MethodGet, "/localapi/v0/cert/"+url.PathEscape(domain)+"?type=pair", nil)
	if err != nil {
		return nil, err
	}
	return splitCertPair(payload)
}

// splitCertPair separates the daemon's PEM bundle into the certificate
// chain and the private key, preserving block order within the chain.
func splitCertPair(bundle []byte) (*CertPair, error) {
	var pair CertPair
	rest := bundle
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		switch {
		case block.Type == "CERTIFICATE":
			pair.CertPEM = append(pair.CertPEM, pem.EncodeToMemory(block)...)
		case strings.HasSuffix(block.Type, "PRIVATE KEY"):
			pair.KeyPEM = append(pair.KeyPEM, pem.EncodeToMemory(block)...)
		default:
			return nil, &DecodeError{Body: bundle, Err: errors.New("unrecognized PEM block " + block.Type)}
		}
	}
	if len(pair.CertPEM) == 0 || len(pair.KeyPEM) == 0 {
		return nil, &DecodeError{Body: bundle, Err: errors.New("response is missing a certificate or private key")}
	}
	return &pair, nil
}

func validateDomain(domain string) error {
	trimmed := strings.TrimSpace(domain)
	if trimmed == "" {
		return &ValidationError{Field: "domain", Value: domain, Message: "must not be empty"}
	}
	if trimmed != domain {
		return &ValidationError{Field: "domain", Value: domain, Message: "must not contain whitespace"}
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return &ValidationError{Field: "domain", Value: domain, Message: "empty DNS label"}
		}
		for _, r := range label {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' {
				continue
			}
			return &ValidationError{Field: "domain", Value: domain, Message: "not a DNS name"}
		}
	}
	return nil
}
