package docarchive

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/docarchive/client-go/internal/api"
)

// Upload validation errors.
var (
	// ErrMissingFileName is returned when an upload names no file.
	ErrMissingFileName = errors.New("file name is required")

	// ErrMissingFileContent is returned when an upload carries no content.
	ErrMissingFileContent = errors.New("file content is required")
)

// UploadFileParams describes the optional metadata of a file upload. Every
// zero-valued field is left out of the multipart form entirely.
type UploadFileParams struct {
	// FolderID files the document into this folder instead of the default
	// inbox.
	FolderID int64

	// DocumentType classifies the document.
	DocumentType string

	// Keywords are attached to the document; sent comma-joined.
	Keywords []string

	// ExternalID links the document to a record in an external system.
	ExternalID string

	// ExternalMetadata is attached verbatim; sent as one JSON-encoded form
	// part.
	ExternalMetadata map[string]string

	// ForceNewDocument bypasses the remote's duplicate detection and always
	// creates a new document.
	ForceNewDocument bool
}

// UploadFile uploads a file into the archive. name becomes the document's
// file name; content is read once, in full.
//
// The request is sent exactly once. If it fails in transit the upload may or
// may not have been archived; retrying can create a duplicate document unless
// the remote's own duplicate detection applies.
func (c *Client) UploadFile(ctx context.Context, name string, content io.Reader, params UploadFileParams) (*FileUploadResult, error) {
	if name == "" {
		return nil, ErrMissingFileName
	}
	if content == nil {
		return nil, ErrMissingFileContent
	}

	form := api.NewForm()
	form.Int64("folderId", params.FolderID)
	form.Str("documentType", params.DocumentType)
	form.List("keywords", params.Keywords)
	form.Str("externalId", params.ExternalID)
	form.JSON("externalMetadata", params.ExternalMetadata)
	form.Bool("forceNewDocument", params.ForceNewDocument)
	form.File("file", name, content)

	var result FileUploadResult
	if err := c.api.Do(ctx, http.MethodPost, "/file-upload", nil, form, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
