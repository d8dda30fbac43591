package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	m := &poolMonitor{logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	ctx := context.Background()

	m.observe(ctx, sql.DBStats{OpenConnections: 2})
	assert.Empty(t, buf.String())

	m.observe(ctx, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"waits":2`)

	buf.Reset()
	m.observe(ctx, sql.DBStats{WaitCount: 3, WaitDuration: 10*time.Millisecond + poolWaitWarnThreshold})
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":1`)
}
