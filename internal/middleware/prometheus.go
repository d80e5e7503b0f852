// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ming0627/bellyfed/internal/metrics"
)

// metricsResponseWriter captures the status code for instrumentation
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// PrometheusMetrics middleware records request counts, durations, and the
// in-flight request gauge for every wrapped endpoint.
//
// The endpoint label uses r.URL.Path. The resolution API has a small fixed
// route surface (the only variable segment is the taxonomy domain, which has
// three values), so path labels stay bounded.
func PrometheusMetrics(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		wrapped := &metricsResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next(wrapped, r)

		metrics.RecordAPIRequest(
			r.Method,
			r.URL.Path,
			strconv.Itoa(wrapped.statusCode),
			time.Since(start),
		)
	}
}
