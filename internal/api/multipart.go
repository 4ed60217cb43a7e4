package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
)

// Form builds a multipart/form-data request body. Optional fields follow the
// same omission rule as Query: a zero value never produces a form part. The
// file part is written last so the remote can read all metadata fields before
// the payload.
type Form struct {
	fields   []formField
	fileKey  string
	fileName string
	file     io.Reader
}

type formField struct {
	key, value string
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// File sets the single file part. Required for every upload.
func (f *Form) File(key, filename string, r io.Reader) {
	f.fileKey = key
	f.fileName = filename
	f.file = r
}

// Str appends a field unless val is empty.
func (f *Form) Str(key, val string) {
	if val != "" {
		f.fields = append(f.fields, formField{key, val})
	}
}

// Int64 appends a field unless val is zero.
func (f *Form) Int64(key string, val int64) {
	if val != 0 {
		f.fields = append(f.fields, formField{key, strconv.FormatInt(val, 10)})
	}
}

// Bool appends a "true" field when val is set.
func (f *Form) Bool(key string, val bool) {
	if val {
		f.fields = append(f.fields, formField{key, "true"})
	}
}

// List appends a comma-joined field unless the list is empty.
func (f *Form) List(key string, vals []string) {
	if len(vals) > 0 {
		f.fields = append(f.fields, formField{key, strings.Join(vals, ",")})
	}
}

// JSON appends the JSON encoding of m as a single field unless m is empty.
func (f *Form) JSON(key string, m map[string]string) {
	if len(m) > 0 {
		data, _ := json.Marshal(m) // cannot fail for map[string]string
		f.fields = append(f.fields, formField{key, string(data)})
	}
}

// encode serializes the form and returns the body together with its
// Content-Type header value (which carries the boundary).
func (f *Form) encode() (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", field.key, err)
		}
	}

	if f.file != nil {
		part, err := w.CreateFormFile(f.fileKey, f.fileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, f.file); err != nil {
			return nil, "", fmt.Errorf("read file content: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}
	return &body, w.FormDataContentType(), nil
}
