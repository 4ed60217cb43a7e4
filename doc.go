// Package docarchive provides a Go client SDK for the document-archive API:
// browsing the archive's folder structure, listing and searching documents,
// uploading files, creating folders, and listing inboxes.
//
// Basic usage:
//
//	client, err := docarchive.New("https://archive.example.com", "your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	structure, err := client.ArchiveStructure(ctx, docarchive.ArchiveStructureParams{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, folder := range structure.Folders {
//	    fmt.Println(folder.Name)
//	}
//
// Every operation issues exactly one request and either returns its typed
// result or an error that callers can classify: an *APIError carries the HTTP
// status the remote rejected with, a *NetworkError means the remote could not
// be reached at all. The client never retries; retrying an upload may create
// a duplicate document.
package docarchive
