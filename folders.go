package docarchive

import (
	"context"
	"errors"
	"net/http"
)

// ErrMissingFolderName is returned when a folder creation names no folder.
var ErrMissingFolderName = errors.New("folder name is required")

// CreateFolderParams describes a folder to create.
type CreateFolderParams struct {
	// Name of the new folder. Required.
	Name string

	// ParentFolderID places the folder below this folder.
	ParentFolderID int64

	// ParentFolderPath places the folder below the folder at this path.
	// When both ParentFolderID and ParentFolderPath are set, both are
	// forwarded and the remote decides which one wins.
	ParentFolderPath string
}

// createFolderRequest is the JSON body of the folder-create call. Unset
// parent selectors are omitted entirely.
type createFolderRequest struct {
	Name             string `json:"name"`
	ParentFolderID   int64  `json:"parentFolderId,omitempty"`
	ParentFolderPath string `json:"parentFolderPath,omitempty"`
}

// CreateFolder creates a folder in the archive.
func (c *Client) CreateFolder(ctx context.Context, params CreateFolderParams) (*FolderCreateResult, error) {
	if params.Name == "" {
		return nil, ErrMissingFolderName
	}

	body := createFolderRequest{
		Name:             params.Name,
		ParentFolderID:   params.ParentFolderID,
		ParentFolderPath: params.ParentFolderPath,
	}

	var result FolderCreateResult
	if err := c.api.Do(ctx, http.MethodPost, "/folder/create", nil, body, &result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}
