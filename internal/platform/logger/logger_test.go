package logger_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"mindmate/internal/platform/logger"
)

func TestRedactsSecretKeys(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.FromZap(zap.New(core)).With("component", "proxy")

	log.Info("upstream configured", "proxy_password", "hunter2", "host", "10.0.0.1", "api_key", "sk-1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["proxy_password"] != "[REDACTED]" || fields["api_key"] != "[REDACTED]" {
		t.Fatalf("secrets leaked: %v", fields)
	}
	if fields["host"] != "10.0.0.1" || fields["component"] != "proxy" {
		t.Fatalf("plain fields lost: %v", fields)
	}
}

func TestNewRejectsUnknownMode(t *testing.T) {
	t.Parallel()
	if _, err := logger.New("verbose"); err == nil {
		t.Fatalf("expected unknown mode to fail")
	}
	if _, err := logger.New("prod"); err != nil {
		t.Fatalf("prod logger: %v", err)
	}
}
