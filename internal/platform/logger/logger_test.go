package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "debug"},
		{"   nonsense   ", "debug"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestInit_Get_Named_C(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:     "info",
		Format:    "json",
		Service:   "jubilee-test",
		Component: "root",
		Writer:    &buf,
	})

	Get().Info().Str("k", "v").Msg("root-msg")
	if !strings.Contains(buf.String(), "root-msg") {
		t.Fatalf("root logger did not write: %s", buf.String())
	}

	buf.Reset()
	Named("api").Info().Msg("named-msg")
	if !strings.Contains(buf.String(), "named-msg") || !strings.Contains(buf.String(), "api") {
		t.Fatalf("named logger output: %s", buf.String())
	}

	buf.Reset()
	ctx := WithRequest(context.Background(), "req-42")
	C(ctx).Info().Msg("ctx-msg")
	out := buf.String()
	if !strings.Contains(out, "ctx-msg") || !strings.Contains(out, "req-42") {
		t.Fatalf("ctx logger should carry request_id: %s", out)
	}

	// empty request id leaves the logger unenriched
	buf.Reset()
	C(context.Background()).Info().Msg("plain")
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("unexpected request_id: %s", buf.String())
	}
}
