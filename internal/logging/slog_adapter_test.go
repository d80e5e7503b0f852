// Bellyfed - Restaurant Discovery and Food Entity Resolution
// Copyright 2026 Ming H. (ming0627)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ming0627/bellyfed

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newBufferedSlogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	return slog.New(NewSlogHandlerWithLogger(zl)), &buf
}

func TestSlogHandlerLevels(t *testing.T) {
	logger, buf := newBufferedSlogger()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	tests := []struct {
		name    string
		logFunc func()
		level   string
	}{
		{"Debug", func() { logger.Debug("d") }, `"level":"debug"`},
		{"Info", func() { logger.Info("i") }, `"level":"info"`},
		{"Warn", func() { logger.Warn("w") }, `"level":"warn"`},
		{"Error", func() { logger.Error("e") }, `"level":"error"`},
	}

	for _, tt := range tests {
		buf.Reset()
		tt.logFunc()
		if !strings.Contains(buf.String(), tt.level) {
			t.Errorf("%s: expected %s in output: %s", tt.name, tt.level, buf.String())
		}
	}
}

func TestSlogHandlerAttrs(t *testing.T) {
	logger, buf := newBufferedSlogger()

	logger.Info("attrs",
		slog.String("s", "str"),
		slog.Int("n", 7),
		slog.Bool("b", true),
		slog.Duration("d", 2*time.Second),
	)

	output := buf.String()
	for _, want := range []string{`"s":"str"`, `"n":7`, `"b":true`, `"d":2000`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandlerWithAttrsAndGroup(t *testing.T) {
	logger, buf := newBufferedSlogger()

	child := logger.With(slog.String("svc", "http")).WithGroup("suture")
	child.Info("restarting", slog.String("service", "api-server"))

	output := buf.String()
	if !strings.Contains(output, `"svc":"http"`) {
		t.Errorf("expected pre-configured attr in output: %s", output)
	}
	if !strings.Contains(output, `"suture.service":"api-server"`) {
		t.Errorf("expected group-prefixed attr in output: %s", output)
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	zl := zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel)
	handler := NewSlogHandlerWithLogger(zl)

	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	slogger := NewSlogLogger()
	slogger.Info("bridged")

	if !strings.Contains(buf.String(), "bridged") {
		t.Errorf("expected bridged message in output: %s", buf.String())
	}
}
