package middleware_test

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"paperwork/internal/platform/logger"
)

// logBuf captures every log line written by the package under test
var logBuf = &syncBuffer{}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "debug", Format: "json", Writer: logBuf})
	os.Exit(m.Run())
}
