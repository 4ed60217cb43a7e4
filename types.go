package docarchive

import "time"

// Folder is one node of the archive's folder tree.
type Folder struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	ParentID int64    `json:"parentId,omitempty"`
	Path     string   `json:"path,omitempty"`
	Folders  []Folder `json:"folders,omitempty"`
}

// ArchiveStructure is the hierarchical folder tree exposed by the archive.
type ArchiveStructure struct {
	Folders []Folder `json:"folders"`
}

// Document mirrors the remote's document record. Fields are present exactly
// when the remote declared them.
type Document struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name,omitempty"`
	FolderID         int64             `json:"folderId,omitempty"`
	DocumentType     string            `json:"documentType,omitempty"`
	Keywords         []string          `json:"keywords,omitempty"`
	Revision         int               `json:"revision,omitempty"`
	CreatedAt        time.Time         `json:"createdAt,omitzero"`
	ModifiedAt       time.Time         `json:"modifiedAt,omitzero"`
	Trashed          bool              `json:"trashed,omitempty"`
	ExternalID       string            `json:"externalId,omitempty"`
	ExternalMetadata map[string]string `json:"externalMetadata,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	AutoexportStatus string            `json:"autoexportStatus,omitempty"`
}

// DocumentListResult is the response of the document-listing operation.
type DocumentListResult struct {
	Documents []Document `json:"documents"`
	Count     int        `json:"count,omitempty"`
}

// FileUploadResult is the response of a file upload.
type FileUploadResult struct {
	DocumentID int64 `json:"documentId"`
	Revision   int   `json:"revision,omitempty"`
	// Duplicate reports that the remote matched the upload against an
	// existing document instead of creating a new one.
	Duplicate bool `json:"duplicate,omitempty"`
}

// FolderCreateResult is the response of a folder creation.
type FolderCreateResult struct {
	FolderID int64 `json:"folderId"`
}

// InboxItem is one inbox known to the archive.
type InboxItem struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	DocumentCount int    `json:"documentCount,omitempty"`
}

// InboxListResult is the response of the inbox-listing operation.
type InboxListResult struct {
	Inboxes []InboxItem `json:"inboxes"`
}

// SearchResult is the response of the search operation.
type SearchResult struct {
	Documents  []Document `json:"documents"`
	Page       int        `json:"page,omitempty"`
	PageSize   int        `json:"pageSize,omitempty"`
	TotalCount int        `json:"totalCount,omitempty"`
}
