package modkit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDeps_LoggerAddsComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := zerolog.New(&buf)
	d := Deps{Log: &base}

	d.Logger("paperwork").Info().Msg("hello")
	if !strings.Contains(buf.String(), `"component":"paperwork"`) {
		t.Fatalf("missing component field: %s", buf.String())
	}
}

func TestDeps_ZeroValueFallsBackToRoot(t *testing.T) {
	t.Parallel()

	var d Deps
	if d.Logger("meta") == nil {
		t.Fatal("expected a logger from zero Deps")
	}
}
