package localapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/netip"
	"net/url"
)

// WhoIs resolves the node and user that own a tailnet address. The address
// must be an IPv4 or IPv6 literal; it is validated before any request is
// issued. An address the daemon does not know yields an *APIError with
// KindNotFound.
func (c *Client) WhoIs(ctx context.Context, ip string) (*WhoisResponse, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return nil, &ValidationError{Field: "ip", Value: ip, Message: "not an IPv4 or IPv6 literal"}
	}

	payload, err := c.send(ctx, http.MethodGet, "/localapi/v0/whois?addr="+url.QueryEscape(addr.String()), nil)
	if err != nil {
		return nil, err
	}

	var who WhoisResponse
	if err := json.Unmarshal(payload, &who); err != nil {
		return nil, &DecodeError{Body: payload, Err: err}
	}
	return &who, nil
}
