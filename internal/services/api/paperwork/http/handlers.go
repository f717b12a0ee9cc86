// Package http provides the upload endpoint of the paperwork module
package http

import (
	"errors"
	"mime/multipart"
	stdhttp "net/http"

	"paperwork/internal/adapters/sheet"
	"paperwork/internal/modkit/httpkit"
	perr "paperwork/internal/platform/errors"
	"paperwork/internal/platform/net/http/bind"
	"paperwork/internal/services/api/paperwork/domain"
)

// maxMemory is how much of a multipart body is held in memory before spilling to disk
const maxMemory = 8 << 20

// UploadIDHeader carries the id assigned to an upload
const UploadIDHeader = "X-Upload-ID"

// Deps are the handler dependencies
type Deps struct {
	Svc domain.ServicePort
	// DefaultFormat applies when the request has no format query, empty means xlsx
	DefaultFormat sheet.Format
}

type handlers struct{ deps Deps }

// Register mounts the versioned paperwork routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Post(r, "/process", h.process)
}

// RegisterLegacy mounts the unversioned route used by the original front end
func RegisterLegacy(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Post(r, "/api/process", h.process)
	// lets CORS preflight reach the group middleware
	r.Options("/api/process", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusNoContent)
	})
}

// swagger:route POST /paperwork/process Paperwork paperworkProcess
// @Summary Summarize a driver trip export
// @Tags Paperwork
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Produce json
// @Param file formData file true "trip export, .csv"
// @Param format query string false "xlsx (default), csv or json"
// @Success 200 {array} paperwork.Summary "attachment or summaries"
// @Failure 400 {object} httpkit.Envelope "No file part, Invalid file"
// @Router /paperwork/process [post]
func (h *handlers) process(r *stdhttp.Request) (any, error) {
	q, err := bind.ParseQuery[domain.ProcessQuery](r)
	if err != nil {
		return nil, err
	}
	format := h.deps.DefaultFormat
	if q.Format != "" || format == "" {
		if format, err = sheet.ParseFormat(q.Format); err != nil {
			return nil, err
		}
	}

	file, hdr, err := h.upload(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	res, err := h.deps.Svc.Summarize(r.Context(), domain.Upload{
		Name:   hdr.Filename,
		Body:   file,
		Format: format,
	})
	if err != nil {
		return nil, err
	}

	if res.Format == sheet.FormatJSON {
		return httpkit.OK(res).WithHeader(UploadIDHeader, res.UploadID), nil
	}
	return httpkit.Attachment(res.FileName, res.ContentType, res.Body).
		WithHeader(UploadIDHeader, res.UploadID), nil
}

// upload pulls the file part out of a multipart body. A file field sent without
// a file name arrives as a plain value and is reported as an invalid upload.
func (h *handlers) upload(r *stdhttp.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var mbe *stdhttp.MaxBytesError
		switch {
		case errors.As(err, &mbe):
			return nil, nil, perr.WithField(perr.TooLargef("upload exceeds %d bytes", mbe.Limit), domain.UploadField)
		case errors.Is(err, stdhttp.ErrNotMultipart), errors.Is(err, stdhttp.ErrMissingBoundary):
			return nil, nil, domain.ErrMissingUpload
		default:
			return nil, nil, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "invalid multipart body"), domain.UploadField)
		}
	}
	file, hdr, err := r.FormFile(domain.UploadField)
	if errors.Is(err, stdhttp.ErrMissingFile) {
		if _, ok := r.MultipartForm.Value[domain.UploadField]; ok {
			return nil, nil, domain.ErrInvalidUpload
		}
		return nil, nil, domain.ErrMissingUpload
	}
	if err != nil {
		return nil, nil, perr.Wrap(err, perr.ErrorCodeUnknown, "open upload")
	}
	return file, hdr, nil
}
