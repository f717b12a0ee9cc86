// Package csvrows turns an uploaded export into csv rows
//
// The source must be UTF-8. A leading byte order mark is dropped so the first
// cell reads exactly as typed. Records may have any number of fields and stray
// quotes inside unquoted fields are kept as text.
package csvrows

import (
	"encoding/csv"
	"errors"
	"io"

	perr "paperwork/internal/platform/errors"
	"paperwork/internal/platform/logger"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned when the source is not UTF-8
var ErrInvalidEncoding = perr.New(perr.ErrorCodeValidation, "file is not valid UTF-8")

// Reader streams rows from a csv source
type Reader struct {
	cr      *csv.Reader
	rows    int
	err     error
	sampled bool
}

// NewReader wraps r. The reader validates UTF-8 before dropping any BOM.
func NewReader(r io.Reader) *Reader {
	text := transform.NewReader(r, transform.Chain(
		encoding.UTF8Validator,
		unicode.BOMOverride(transform.Nop),
	))
	cr := csv.NewReader(text)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false
	return &Reader{cr: cr}
}

// Next returns the next row, io.EOF when done. Errors are sticky.
func (rd *Reader) Next() ([]string, error) {
	if rd.err != nil {
		return nil, rd.err
	}
	rec, err := rd.cr.Read()
	if err != nil {
		rd.err = classify(err)
		if rd.err == io.EOF {
			logger.Named("csvrows").Debug().Int("rows", rd.rows).Msg("csv drained")
		}
		return nil, rd.err
	}
	rd.rows++
	if !rd.sampled {
		rd.sampled = true
		logger.Named("csvrows").Debug().Int("cells", len(rec)).Msg("first row")
	}
	return rec, nil
}

// Rows reports how many rows Next has returned
func (rd *Reader) Rows() int { return rd.rows }

// Each calls fn for every row in r, in order
func Each(r io.Reader, fn func([]string)) error {
	rd := NewReader(r)
	for {
		row, err := rd.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fn(row)
	}
}

// Decode reads every row of r
func Decode(r io.Reader) ([][]string, error) {
	rows := [][]string{}
	if err := Each(r, func(row []string) { rows = append(rows, row) }); err != nil {
		return nil, err
	}
	return rows, nil
}

func classify(err error) error {
	switch {
	case err == io.EOF:
		return io.EOF
	case errors.Is(err, encoding.ErrInvalidUTF8):
		return ErrInvalidEncoding
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return perr.Wrapf(err, perr.ErrorCodeValidation, "malformed csv at line %d", pe.StartLine)
	}
	return perr.Wrap(err, perr.ErrorCodeUnknown, "read upload")
}
