package services_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ldanie38/geniuscrm/internal/application/services"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/ldanie38/geniuscrm/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogService_Ingest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := services.NewLogService(zap.New(core), t.TempDir(), "test")

	svc.Ingest(models.LogEntry{Timestamp: "2024-05-01T10:00:00Z", Level: "warning", Message: "popup closed"})
	svc.Ingest(models.LogEntry{Timestamp: "t2", Level: "shout", Message: "odd level"})
	svc.Ingest(models.LogEntry{Timestamp: "t3", Level: "CRITICAL", Message: "boom"})

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "extension", entries[0].LoggerName)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "2024-05-01T10:00:00Z  popup closed", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.DPanicLevel, entries[2].Level)
}

func TestLogService_Tail(t *testing.T) {
	dir := t.TempDir()
	svc := services.NewLogService(nil, dir, "test")

	_, err := svc.Tail("")
	assert.True(t, errors.IsNotFound(err))

	var b strings.Builder
	for i := 0; i < 250; i++ {
		level := "INFO"
		if i%10 == 0 {
			level = "ERROR"
		}
		b.WriteString(`{"time":"2024-05-01T10:00:00Z","level":"` + level + `","msg":"line"}` + "\n")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.log"), []byte(b.String()), 0o644))

	tail, err := svc.Tail("")
	require.NoError(t, err)
	assert.Equal(t, "test", tail.Environment)
	assert.Len(t, tail.Entries, 200)

	errorsOnly, err := svc.Tail("error")
	require.NoError(t, err)
	assert.Len(t, errorsOnly.Entries, 20)
	for _, line := range errorsOnly.Entries {
		assert.Contains(t, line, `"level":"ERROR"`)
	}

	unknown, err := svc.Tail("loud")
	require.NoError(t, err)
	assert.Empty(t, unknown.Entries)
}

func TestLogService_CriticalRoundTrip(t *testing.T) {
	dir := t.TempDir()
	var console strings.Builder
	logger, closer, err := logging.New(logging.Options{Dir: dir, Env: "test", Level: "info", Console: &console})
	require.NoError(t, err)

	svc := services.NewLogService(logger, dir, "test")
	assert.NotPanics(t, func() {
		svc.Ingest(models.LogEntry{Timestamp: "t", Level: "critical", Message: "boom"})
	})
	svc.Ingest(models.LogEntry{Timestamp: "t", Level: "error", Message: "bad"})
	require.NoError(t, closer())

	critical, err := svc.Tail("critical")
	require.NoError(t, err)
	require.Len(t, critical.Entries, 1)
	assert.Contains(t, critical.Entries[0], `"level":"CRITICAL"`)
	assert.Contains(t, critical.Entries[0], `"msg":"t  boom"`)

	errorsOnly, err := svc.Tail("error")
	require.NoError(t, err)
	assert.Len(t, errorsOnly.Entries, 1)
}
