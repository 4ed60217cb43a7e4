package docarchive

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUploadFile_OnlySuppliedPartsAppear(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/file-upload" {
			t.Errorf("path = %s, want /api/v2/file-upload", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart form: %v", err)
		}

		if len(r.MultipartForm.Value) != 1 {
			t.Errorf("form has %d value fields, want only the supplied one: %v",
				len(r.MultipartForm.Value), r.MultipartForm.Value)
		}
		if got := r.FormValue("documentType"); got != "invoice" {
			t.Errorf("documentType = %q, want invoice", got)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("read file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "report.pdf" {
			t.Errorf("file name = %q, want report.pdf", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "%PDF-1.7" {
			t.Errorf("file content = %q, want %%PDF-1.7", content)
		}

		w.Write([]byte(`{"documentId":321,"revision":1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.UploadFile(context.Background(), "report.pdf",
		strings.NewReader("%PDF-1.7"), UploadFileParams{DocumentType: "invoice"})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
	if result.DocumentID != 321 {
		t.Errorf("DocumentID = %d, want 321", result.DocumentID)
	}
}

func TestUploadFile_AllParts(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart form: %v", err)
		}
		want := map[string]string{
			"folderId":         "7",
			"documentType":     "invoice",
			"keywords":         "tax,2024",
			"externalId":       "crm-42",
			"externalMetadata": `{"source":"crm"}`,
			"forceNewDocument": "true",
		}
		for key, wantVal := range want {
			if got := r.FormValue(key); got != wantVal {
				t.Errorf("form field %q = %q, want %q", key, got, wantVal)
			}
		}
		w.Write([]byte(`{"documentId":1}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.UploadFile(context.Background(), "a.txt", strings.NewReader("hello"),
		UploadFileParams{
			FolderID:         7,
			DocumentType:     "invoice",
			Keywords:         []string{"tax", "2024"},
			ExternalID:       "crm-42",
			ExternalMetadata: map[string]string{"source": "crm"},
			ForceNewDocument: true,
		})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
}

func TestUploadFile_Validation(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, "https://host")

	_, err := client.UploadFile(context.Background(), "", strings.NewReader("x"), UploadFileParams{})
	if !errors.Is(err, ErrMissingFileName) {
		t.Errorf("UploadFile() error = %v, want ErrMissingFileName", err)
	}

	_, err = client.UploadFile(context.Background(), "a.txt", nil, UploadFileParams{})
	if !errors.Is(err, ErrMissingFileContent) {
		t.Errorf("UploadFile() error = %v, want ErrMissingFileContent", err)
	}
}

func TestUploadFile_RemoteRejection(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write([]byte(`{"message":"file too large"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.UploadFile(context.Background(), "a.txt", strings.NewReader("x"), UploadFileParams{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("UploadFile() error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("StatusCode = %d, want 413", apiErr.StatusCode)
	}
}
