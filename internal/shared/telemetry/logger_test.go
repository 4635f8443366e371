package telemetry

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWriteEmitsOneJSONObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	write(&buf, "info", "pipeline.done", map[string]any{"records": 3})

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("log line is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["level"] != "info" || payload["msg"] != "pipeline.done" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["records"] != float64(3) {
		t.Fatalf("missing field: %v", payload)
	}
	if payload["ts"] == "" {
		t.Fatalf("missing timestamp: %v", payload)
	}
}
