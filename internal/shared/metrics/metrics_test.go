package metrics

import (
	"strings"
	"testing"
)

func TestRenderExposesPipelineCounters(t *testing.T) {
	IncParse()
	IncScore()
	ObserveScoreDurationMs(12)

	out := Render()
	for _, name := range []string{
		"resume_parse_total",
		"resume_score_total",
		"resume_enhance_total",
		"resume_recommend_total",
		"resume_upload_total",
		"resume_upload_failed_total",
		"resume_score_duration_ms_bucket",
		"resume_score_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing metric %s in output:\n%s", name, out)
		}
	}
	if !strings.Contains(out, `le="+Inf"`) {
		t.Fatalf("missing +Inf bucket:\n%s", out)
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("count = %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("bucket counts = %v", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("sum = %v", snap.sum)
	}
}
