package testkit

import (
	"bytes"
	"encoding/csv"
	"mime/multipart"
	"testing"
)

// CSV encodes rows the way a spreadsheet export would
func CSV(t *testing.T, rows ...[]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("testkit: write csv: %v", err)
	}
	return buf.Bytes()
}

// Multipart builds a multipart/form-data body with a single file part.
// It returns the body and the Content-Type header to send with it.
func Multipart(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("testkit: create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("testkit: write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("testkit: close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

// MultipartField builds a multipart/form-data body with one plain text field and no file
func MultipartField(t *testing.T, name, value string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField(name, value); err != nil {
		t.Fatalf("testkit: write field: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("testkit: close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}
