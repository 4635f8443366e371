package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	parseTotal        atomic.Uint64
	scoreTotal        atomic.Uint64
	enhanceTotal      atomic.Uint64
	recommendTotal    atomic.Uint64
	uploadTotal       atomic.Uint64
	uploadFailedTotal atomic.Uint64

	scoreDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncParse increments the parse counter.
func IncParse() {
	parseTotal.Add(1)
}

// IncScore increments the score counter.
func IncScore() {
	scoreTotal.Add(1)
}

// IncEnhance increments the enhancement counter.
func IncEnhance() {
	enhanceTotal.Add(1)
}

// IncRecommend increments the recommendation counter.
func IncRecommend() {
	recommendTotal.Add(1)
}

// IncUpload increments the upload counter.
func IncUpload() {
	uploadTotal.Add(1)
}

// IncUploadFailed increments the failed upload counter.
func IncUploadFailed() {
	uploadFailedTotal.Add(1)
}

// ObserveScoreDurationMs records one scoring run's duration in milliseconds.
func ObserveScoreDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scoreDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resume_parse_total", "Total resumes parsed", parseTotal.Load())
	writeCounter(&buf, "resume_score_total", "Total scoring runs", scoreTotal.Load())
	writeCounter(&buf, "resume_enhance_total", "Total enhancement runs", enhanceTotal.Load())
	writeCounter(&buf, "resume_recommend_total", "Total recommendation runs", recommendTotal.Load())
	writeCounter(&buf, "resume_upload_total", "Total document uploads", uploadTotal.Load())
	writeCounter(&buf, "resume_upload_failed_total", "Total failed document uploads", uploadFailedTotal.Load())
	writeHistogram(&buf, "resume_score_duration_ms", "Scoring duration in milliseconds", scoreDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
