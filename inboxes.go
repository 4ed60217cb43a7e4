package docarchive

import (
	"context"
	"net/http"
)

// ListInboxes lists the archive's inboxes.
func (c *Client) ListInboxes(ctx context.Context) (*InboxListResult, error) {
	var result InboxListResult
	if err := c.api.Do(ctx, http.MethodGet, "/inboxes", nil, nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
