package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	formsCreatedTotal        atomic.Uint64
	submissionsReceivedTotal atomic.Uint64
	resumesUploadedTotal     atomic.Uint64
	otpIssuedTotal           atomic.Uint64
	jdParseFailedTotal       atomic.Uint64

	jdParseDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncFormsCreated increments the forms-created counter.
func IncFormsCreated() {
	formsCreatedTotal.Add(1)
}

// IncSubmissionsReceived increments the submissions counter.
func IncSubmissionsReceived() {
	submissionsReceivedTotal.Add(1)
}

// IncResumesUploaded increments the resume upload counter.
func IncResumesUploaded() {
	resumesUploadedTotal.Add(1)
}

// IncOTPIssued increments the OTP issue counter.
func IncOTPIssued() {
	otpIssuedTotal.Add(1)
}

// IncJDParseFailed increments the job-description parse failure counter.
func IncJDParseFailed() {
	jdParseFailedTotal.Add(1)
}

// ObserveJDParseDurationMs records a job-description parse duration in milliseconds.
func ObserveJDParseDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	jdParseDuration.Observe(value)
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
	writeCounter(&buf, "forms_created_total", "Total recruitment forms created", formsCreatedTotal.Load())
	writeCounter(&buf, "submissions_received_total", "Total candidate submissions received", submissionsReceivedTotal.Load())
	writeCounter(&buf, "resumes_uploaded_total", "Total resume files stored", resumesUploadedTotal.Load())
	writeCounter(&buf, "otp_issued_total", "Total verification codes issued", otpIssuedTotal.Load())
	writeCounter(&buf, "jd_parse_failed_total", "Total job-description parse failures", jdParseFailedTotal.Load())
	writeHistogram(&buf, "jd_parse_duration_ms", "Job-description parse duration in milliseconds", jdParseDuration.Snapshot())
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
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
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
