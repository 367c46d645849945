package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "jubilee/internal/platform/errors"
	pnet "jubilee/internal/platform/net"
	phttp "jubilee/internal/platform/net/http"
)

// helper to build a request carrying a request id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func TestJSONHelper(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.RespondOK(rec, req, map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{perr.Schemaf("missing columns"), http.StatusUnprocessableEntity},
		{perr.DataTypef("bad date"), http.StatusUnprocessableEntity},
		{perr.NotFoundf("run gone"), http.StatusNotFound},
		{perr.TooLargef("upload too big"), http.StatusRequestEntityTooLarge},
		{perr.JSONErrf("bad json"), http.StatusBadRequest},
		{perr.Internalf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := reqWithReqID("GET", "/x", "rid-2")
		phttp.RespondError(rec, req, tc.err)
		if rec.Code != tc.status {
			t.Fatalf("%v: status %d want %d", tc.err, rec.Code, tc.status)
		}
		var env phttp.Envelope
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
		if env.Error == "" || env.Code == 0 {
			t.Fatalf("%v: envelope should carry code and message: %+v", tc.err, env)
		}
	}
}

func TestHandleReturnStyle(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]int{"n": 1})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/ok", "rid-3"))
	if rec.Code != http.StatusOK {
		t.Fatalf("Handle OK code: %d", rec.Code)
	}

	h = phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.NotFoundf("nope"))
	})
	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/missing", "rid-4"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Handle error code: %d", rec.Code)
	}

	h = phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.NoContent()
	})
	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("DELETE", "/gone", "rid-5"))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Handle no content code: %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("no content should have empty body, got %q", rec.Body.String())
	}
}

func TestFileResponse(t *testing.T) {
	b := []byte{0x50, 0x4b, 0x03, 0x04} // zip magic, what xlsx files start with
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.File("入职周年统计表.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/file", "rid-6"))

	if rec.Code != http.StatusOK {
		t.Fatalf("file code: %d", rec.Code)
	}
	if got := rec.Body.Bytes(); len(got) != len(b) || got[0] != 0x50 {
		t.Fatalf("file body passed through wrong: %v", got)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "filename*=UTF-8''") {
		t.Fatalf("content disposition: %q", cd)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("content type: %q", ct)
	}
}
