package docarchive

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/docarchive/client-go/internal/api"
)

// ErrMissingFolderID is returned when a document listing names no folder.
var ErrMissingFolderID = errors.New("folder id is required")

// ListDocumentsParams selects the documents of one folder. Zero-valued
// optional fields never reach the wire.
type ListDocumentsParams struct {
	// FolderID names the folder to list. Required.
	FolderID int64

	// MetadataKeysInclude limits the returned metadata to these keys.
	MetadataKeysInclude []string

	// MetadataKeysExclude strips these keys from the returned metadata.
	MetadataKeysExclude []string

	// WithAutoexportStatus adds each document's autoexport status to the
	// result.
	WithAutoexportStatus bool

	// SubfoldersRecursive includes documents from all subfolders.
	SubfoldersRecursive bool

	// CreatedAfter keeps only documents created on or after this calendar
	// date. Time of day is ignored.
	CreatedAfter time.Time
}

// ListDocuments lists the documents of a folder.
func (c *Client) ListDocuments(ctx context.Context, params ListDocumentsParams) (*DocumentListResult, error) {
	if params.FolderID == 0 {
		return nil, ErrMissingFolderID
	}

	q := api.NewQuery()
	q.Int64("folder-id", params.FolderID)
	q.List("metadata-keys-include", params.MetadataKeysInclude)
	q.List("metadata-keys-exclude", params.MetadataKeysExclude)
	q.Bool("with-autoexport-status", params.WithAutoexportStatus)
	q.Bool("subfolders-recursive", params.SubfoldersRecursive)
	q.Date("filter-date-created-after", params.CreatedAfter)

	var result DocumentListResult
	if err := c.api.Do(ctx, http.MethodGet, "/document/list", q.Values(), nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
