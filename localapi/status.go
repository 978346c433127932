package localapi

import (
	"context"
	"encoding/json"
	"net/http"
)

// Status fetches the daemon's current node and tailnet snapshot.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	payload, err := c.send(ctx, http.MethodGet, "/localapi/v0/status", nil)
	if err != nil {
		return nil, err
	}

	var st Status
	if err := json.Unmarshal(payload, &st); err != nil {
		return nil, &DecodeError{Body: payload, Err: err}
	}
	return &st, nil
}
