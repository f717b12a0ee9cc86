// Package service runs the decode, reduce and render pipeline for one upload
package service

import (
	"context"
	"io"
	"time"

	"paperwork/internal/adapters/csvrows"
	"paperwork/internal/adapters/sheet"
	"paperwork/internal/core/paperwork"
	perr "paperwork/internal/platform/errors"
	"paperwork/internal/platform/logger"
	"paperwork/internal/services/api/paperwork/domain"

	"github.com/google/uuid"
)

// ctxCheckEvery is how many rows are read between context checks
const ctxCheckEvery = 1024

// Service defines the paperwork service contract
type Service interface {
	domain.ServicePort
}

// seams for tests
var (
	newID = uuid.NewString
	now   = time.Now
)

// Svc implements the paperwork service. It keeps nothing between calls.
type Svc struct{}

// New constructs a paperwork service
func New() *Svc { return &Svc{} }

// Formats lists the output formats Summarize accepts
func (s *Svc) Formats() []sheet.Format { return sheet.Formats() }

// Summarize reduces one export into per driver summaries rendered in in.Format
func (s *Svc) Summarize(ctx context.Context, in domain.Upload) (domain.Result, error) {
	if in.Body == nil {
		return domain.Result{}, domain.ErrMissingUpload
	}
	if err := domain.CheckFileName(in.Name); err != nil {
		return domain.Result{}, err
	}
	format := in.Format
	if format == "" {
		format = sheet.FormatXLSX
	}

	id := newID()
	ctx = logger.WithUpload(ctx, id)
	log := logger.C(ctx)
	start := now()

	rows, sums, err := reduce(ctx, in.Body)
	if err != nil {
		log.Warn().Err(err).Str("file", in.Name).Int("rows", rows).Msg("upload rejected")
		return domain.Result{}, perr.WithOp(err, "paperwork.summarize")
	}

	body, err := sheet.Render(format, sums)
	if err != nil {
		log.Error().Err(err).Str("format", string(format)).Msg("render failed")
		return domain.Result{}, perr.WithOp(err, "paperwork.render")
	}

	log.Info().
		Str("file", in.Name).
		Int("rows", rows).
		Int("drivers", len(sums)).
		Str("format", string(format)).
		Int("bytes", len(body)).
		Dur("elapsed", now().Sub(start)).
		Msg("upload summarized")

	return domain.Result{
		UploadID:    id,
		Format:      format,
		FileName:    sheet.FileName(format),
		ContentType: sheet.ContentType(format),
		Body:        body,
		Rows:        rows,
		Summaries:   sums,
	}, nil
}

// reduce streams rows from r into a fresh reducer
func reduce(ctx context.Context, r io.Reader) (int, []paperwork.Summary, error) {
	rd := csvrows.NewReader(r)
	red := paperwork.NewReducer()
	for {
		row, err := rd.Next()
		if err == io.EOF {
			return rd.Rows(), red.Summaries(), nil
		}
		if err != nil {
			return rd.Rows(), nil, err
		}
		red.Feed(row)
		if rd.Rows()%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return rd.Rows(), nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "upload cancelled")
			}
		}
	}
}
