package docarchive

import (
	"context"
	"net/http"
	"time"

	"github.com/docarchive/client-go/internal/api"
)

// SearchParams holds the search filters. Every filter is independent and
// optional; zero-valued fields never reach the wire, so an empty SearchParams
// searches the whole archive.
type SearchParams struct {
	// Page selects a result page, starting at 1.
	Page int

	// PageSize bounds the number of documents per page.
	PageSize int

	// FulltextAll matches documents containing all of these words.
	FulltextAll string

	// FulltextOne matches documents containing at least one of these words.
	FulltextOne string

	// FulltextNone matches documents containing none of these words.
	FulltextNone string

	// CreatedAfter and CreatedBefore bound the creation date. Calendar
	// dates only; time of day is ignored.
	CreatedAfter  time.Time
	CreatedBefore time.Time

	// ModifiedAfter and ModifiedBefore bound the last-modification date.
	ModifiedAfter  time.Time
	ModifiedBefore time.Time

	// Stamps keeps documents carrying all of these stamps.
	Stamps []string

	// StampsExclude drops documents carrying any of these stamps.
	StampsExclude []string

	// FolderID restricts the search to one folder.
	FolderID int64

	// FolderPath restricts the search to the folder at this path.
	FolderPath string

	// SubfoldersRecursive extends a folder-restricted search to all
	// subfolders.
	SubfoldersRecursive bool

	// DocumentType keeps only documents of this type.
	DocumentType string

	// Keywords keeps documents tagged with all of these keywords.
	Keywords []string

	// WorkflowState keeps documents currently in this workflow state.
	WorkflowState string

	// IncludeTrash extends the search to trashed documents.
	IncludeTrash bool

	// ExternalID keeps documents linked to this external record.
	ExternalID string

	// ExternalMetadata keeps documents whose external metadata contains all
	// of these key/value pairs; sent as one JSON-encoded parameter.
	ExternalMetadata map[string]string
}

// Search searches documents across the archive.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	q := api.NewQuery()
	q.Int("page", params.Page)
	q.Int("page-size", params.PageSize)
	q.Str("fulltext-all", params.FulltextAll)
	q.Str("fulltext-one", params.FulltextOne)
	q.Str("fulltext-none", params.FulltextNone)
	q.Date("filter-date-created-after", params.CreatedAfter)
	q.Date("filter-date-created-before", params.CreatedBefore)
	q.Date("filter-date-modified-after", params.ModifiedAfter)
	q.Date("filter-date-modified-before", params.ModifiedBefore)
	q.List("stamps", params.Stamps)
	q.List("stamps-exclude", params.StampsExclude)
	q.Int64("folder-id", params.FolderID)
	q.Str("folder-path", params.FolderPath)
	q.Bool("subfolders-recursive", params.SubfoldersRecursive)
	q.Str("document-type", params.DocumentType)
	q.List("keywords", params.Keywords)
	q.Str("workflow-state", params.WorkflowState)
	q.Bool("include-trash", params.IncludeTrash)
	q.Str("external-id", params.ExternalID)
	q.JSON("external-metadata", params.ExternalMetadata)

	var result SearchResult
	if err := c.api.Do(ctx, http.MethodPost, "/search", q.Values(), nil, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
