package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"jobportal/config"
	deliverycontext "jobportal/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func fixedSQL() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_TraceUsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true

	l := newGormSlogLogger(newBufferLogger(&base), cfg)
	ctx := deliverycontext.WithLogger(context.Background(),
		newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), fixedSQL, nil)

	assert.Empty(t, base.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal(scoped.Bytes(), &entry))
	assert.Equal(t, "GORM query", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "SELECT 1", entry["sql"])
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantMsg string
	}{
		{name: "query hidden without debug", begin: time.Now()},
		{name: "record not found ignored", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "failed query logged", begin: time.Now(), err: assert.AnError, wantMsg: "GORM query failed"},
		{name: "slow query logged", begin: time.Now().Add(-time.Second), wantMsg: "GORM slow query"},
		{name: "query logged in debug", debug: true, begin: time.Now(), wantMsg: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			newGormSlogLogger(newBufferLogger(&buf), cfg).Trace(context.Background(), tt.begin, fixedSQL, tt.err)

			if tt.wantMsg == "" {
				assert.Empty(t, buf.String())

				return
			}
			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantMsg, entry["msg"])
		})
	}
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), nil).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), fixedSQL, assert.AnError)
	l.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
