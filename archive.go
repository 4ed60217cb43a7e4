package docarchive

import (
	"context"
	"net/http"

	"github.com/docarchive/client-go/internal/api"
)

// ArchiveStructureParams narrows the archive-structure fetch.
type ArchiveStructureParams struct {
	// ParentFolderID restricts the result to the subtree below this folder.
	// Zero fetches the whole tree.
	ParentFolderID int64
}

// ArchiveStructure fetches the archive's folder tree.
func (c *Client) ArchiveStructure(ctx context.Context, params ArchiveStructureParams) (*ArchiveStructure, error) {
	q := api.NewQuery()
	q.Int64("parent-folder-id", params.ParentFolderID)

	var result ArchiveStructure
	if err := c.api.Do(ctx, http.MethodGet, "/archivestructure", q.Values(), nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
