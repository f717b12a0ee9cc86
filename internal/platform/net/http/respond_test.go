package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "paperwork/internal/platform/errors"
	pnet "paperwork/internal/platform/net"
	phttp "paperwork/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestJSON_SetsStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithReqID("GET", "/x", "rid-1"), map[string]string{"a": "b"})
	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusOK || env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %d %+v", rec.Code, env)
	}
}

func TestRespondError_MapsCodeAndField(t *testing.T) {
	rec := httptest.NewRecorder()
	err := perr.WithField(perr.Validationf("Invalid file"), "file")
	phttp.RespondError(rec, reqWithReqID("POST", "/x", "rid-e"), err)
	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Code != perr.ErrorCodeValidation || env.Error != "Invalid file" || env.Field != "file" || env.RequestID != "rid-e" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandle_ErrorBodyForeignErrorIs500(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(errors.New("boom")) })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusInternalServerError || env.Error != "boom" {
		t.Fatalf("got %d %+v", rec.Code, env)
	}
}

func TestHandle_OKAndNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.OK([]int{1, 2}) })(rec, reqWithReqID("GET", "/", "rid-ok"))
	if env := decodeEnvelope(t, rec); rec.Code != 200 || env.RequestID != "rid-ok" {
		t.Fatalf("OK got %d %+v", rec.Code, env)
	}

	recN := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() })(recN, httptest.NewRequest("GET", "/", nil))
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("NoContent got %d %q", recN.Code, recN.Body.String())
	}
}

func TestHandle_AttachmentWritesRawBytes(t *testing.T) {
	data := []byte("Driver,Truck\n")
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Attachment("Driver_Paperwork_Summary.csv", "text/csv; charset=utf-8", data).
			WithHeader("X-Upload-ID", "u-1")
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename=Driver_Paperwork_Summary.csv` {
		t.Fatalf("Content-Disposition = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Length"); got != "13" {
		t.Fatalf("Content-Length = %q", got)
	}
	if got := rec.Header().Get("X-Upload-ID"); got != "u-1" {
		t.Fatalf("X-Upload-ID = %q", got)
	}
	if rec.Body.String() != string(data) {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestWithHeader_DoesNotMutateOriginal(t *testing.T) {
	base := phttp.OK(nil).WithHeader("A", "1")
	_ = base.WithHeader("B", "2")
	if base.Header.Get("B") != "" {
		t.Fatalf("WithHeader mutated the receiver's header map")
	}
}
