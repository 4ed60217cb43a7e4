package api

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

// decodeForm parses an encoded form back into field values and the file part.
func decodeForm(t *testing.T, f *Form) (map[string]string, string, string) {
	t.Helper()

	body, contentType, err := f.encode()
	if err != nil {
		t.Fatalf("encode() error = %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type %q: %v", contentType, err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}

	reader := multipart.NewReader(body, params["boundary"])
	fields := make(map[string]string)
	fileName, fileContent := "", ""
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read part: %v", err)
		}
		data, err := io.ReadAll(part)
		if err != nil {
			t.Fatalf("read part content: %v", err)
		}
		if part.FileName() != "" {
			fileName = part.FileName()
			fileContent = string(data)
			continue
		}
		fields[part.FormName()] = string(data)
	}
	return fields, fileName, fileContent
}

func TestForm_OnlySuppliedFieldsAppear(t *testing.T) {
	t.Parallel()

	f := NewForm()
	f.Int64("folderId", 0)
	f.Str("documentType", "")
	f.List("keywords", nil)
	f.Str("externalId", "crm-42")
	f.JSON("externalMetadata", nil)
	f.Bool("forceNewDocument", false)
	f.File("file", "report.pdf", strings.NewReader("%PDF-1.7"))

	fields, fileName, fileContent := decodeForm(t, f)

	if len(fields) != 1 {
		t.Errorf("form has %d fields, want only the supplied one: %v", len(fields), fields)
	}
	if fields["externalId"] != "crm-42" {
		t.Errorf("externalId = %q, want %q", fields["externalId"], "crm-42")
	}
	if fileName != "report.pdf" {
		t.Errorf("file name = %q, want report.pdf", fileName)
	}
	if fileContent != "%PDF-1.7" {
		t.Errorf("file content = %q, want %%PDF-1.7", fileContent)
	}
}

func TestForm_AllFieldsSupplied(t *testing.T) {
	t.Parallel()

	f := NewForm()
	f.Int64("folderId", 7)
	f.Str("documentType", "invoice")
	f.List("keywords", []string{"tax", "2024"})
	f.JSON("externalMetadata", map[string]string{"source": "crm"})
	f.Bool("forceNewDocument", true)
	f.File("file", "a.txt", strings.NewReader("hello"))

	fields, _, _ := decodeForm(t, f)

	want := map[string]string{
		"folderId":         "7",
		"documentType":     "invoice",
		"keywords":         "tax,2024",
		"externalMetadata": `{"source":"crm"}`,
		"forceNewDocument": "true",
	}
	if len(fields) != len(want) {
		t.Errorf("form has %d fields, want %d: %v", len(fields), len(want), fields)
	}
	for key, wantVal := range want {
		if fields[key] != wantVal {
			t.Errorf("field %q = %q, want %q", key, fields[key], wantVal)
		}
	}
}

func TestForm_FileReadFailure(t *testing.T) {
	t.Parallel()

	f := NewForm()
	f.File("file", "a.txt", failingReader{})
	if _, _, err := f.encode(); err == nil {
		t.Fatal("encode() should return error when the file reader fails")
	}
}
