package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"git.home.luguber.info/inful/railsdocs/internal/versions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextChaining(t *testing.T) {
	ctx := context.Background()
	ctx = WithRunID(ctx, "run-1")
	ctx = WithPair(ctx, versions.Pair{Language: "2.0.0", Framework: "4.0.0"})
	ctx = WithStage(ctx, "merge")

	assert.Equal(t, LogContext{RunID: "run-1", Language: "2.0.0", Framework: "4.0.0", Stage: "merge"}, GetContext(ctx))
}

func TestOverwriteContextValue(t *testing.T) {
	ctx := WithStage(context.Background(), "language_docs")
	ctx = WithStage(ctx, "publish")
	assert.Equal(t, "publish", GetContext(ctx).Stage)
}

func TestEmptyContext(t *testing.T) {
	assert.Equal(t, LogContext{}, GetContext(context.Background()))
	assert.Empty(t, Attrs(context.Background()))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithRunID(context.Background(), "run-7")
	ctx = WithPair(ctx, versions.Pair{Language: "1.9.3", Framework: "3.2.13"})
	Logger(ctx, base).Info("Pair published")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Pair published", entry["msg"])
	assert.Equal(t, "run-7", entry["run_id"])
	assert.Equal(t, "1.9.3", entry["language_version"])
	assert.Equal(t, "3.2.13", entry["framework_version"])
	assert.NotContains(t, entry, "stage")
}

func TestLogger_NilBase(t *testing.T) {
	assert.Same(t, slog.Default(), Logger(context.Background(), nil))
}
