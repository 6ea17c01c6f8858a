package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestZapLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newZapLogger(ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON}, zapcore.AddSync(&buf))

	ctx := WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "task %d added", 7)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "task 7 added" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("expected request_id req-42, got %v", entry["request_id"])
	}
}

func TestZapLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newZapLogger(ZapConfig{Level: "warn", Mode: ModeProduction, Encoding: EncodingJSON}, zapcore.AddSync(&buf))

	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %s", out)
	}
}

func TestZapLoggerBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newZapLogger(ZapConfig{Level: "loud", Encoding: EncodingConsole}, zapcore.AddSync(&buf))

	l.Debug(context.Background(), "debug line")
	l.Info(context.Background(), "info line")

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Errorf("debug should be filtered by fallback level: %s", out)
	}
	if !strings.Contains(out, "info line") {
		t.Errorf("info line missing: %s", out)
	}
}

func TestRequestIDEmpty(t *testing.T) {
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}
