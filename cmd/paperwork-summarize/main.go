// Command paperwork-summarize reduces a trip export on disk without the HTTP server
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"paperwork/internal/adapters/sheet"
	perr "paperwork/internal/platform/errors"
	"paperwork/internal/platform/logger"
	"paperwork/internal/services/api/paperwork/domain"
	"paperwork/internal/services/api/paperwork/service"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "paperwork-summarize:", err)
		os.Exit(1)
	}
}

// run parses args, summarizes -in and writes the result to -out or, when -out is empty, the summaries as json to stdout
func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("paperwork-summarize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		in     = fs.String("in", "", "trip export, must end in .csv")
		out    = fs.String("out", "", "output file or directory, empty prints json to stdout")
		format = fs.String("format", "", "xlsx (default), csv or json, ignored without -out")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.PrintDefaults()
			return nil
		}
		return err
	}
	if *in == "" {
		return perr.WithField(perr.New(perr.ErrorCodeValidation, "-in is required"), "in")
	}

	f := sheet.FormatJSON
	if *out != "" {
		parsed, err := sheet.ParseFormat(*format)
		if err != nil {
			return err
		}
		f = parsed
	}

	// the extension check happens before any byte is read
	if err := domain.CheckFileName(*in); err != nil {
		return err
	}
	file, err := os.Open(*in)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeNotFound, "open %s", *in)
	}
	defer file.Close()

	res, err := service.New().Summarize(ctx, domain.Upload{
		Name:   filepath.Base(*in),
		Body:   file,
		Format: f,
	})
	if err != nil {
		return err
	}

	log := logger.Named("summarize")
	if *out == "" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Summaries)
	}

	dst := *out
	if st, err := os.Stat(dst); err == nil && st.IsDir() {
		dst = filepath.Join(dst, res.FileName)
	}
	if err := os.WriteFile(dst, res.Body, 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write %s", dst)
	}
	log.Info().
		Str("upload_id", res.UploadID).
		Str("out", dst).
		Int("drivers", len(res.Summaries)).
		Msg("summary written")
	return nil
}
