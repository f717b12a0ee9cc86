package domain

import (
	"io"

	"paperwork/internal/adapters/sheet"
	"paperwork/internal/core/paperwork"
)

// Upload is one export handed to the service
type Upload struct {
	// Name is the client supplied file name, only its extension is checked
	Name   string
	Body   io.Reader
	Format sheet.Format
}

// Result is the rendered summary of one upload
type Result struct {
	UploadID    string              `json:"upload_id"`
	Format      sheet.Format        `json:"format"`
	FileName    string              `json:"file_name"`
	ContentType string              `json:"-"`
	Body        []byte              `json:"-"`
	Rows        int                 `json:"rows"`
	Summaries   []paperwork.Summary `json:"summaries"`
}

// ProcessQuery is the query string accepted by the process endpoint
type ProcessQuery struct {
	Format string `query:"format" validate:"omitempty,oneof=xlsx csv json"`
}
