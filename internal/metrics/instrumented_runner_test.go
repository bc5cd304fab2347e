package metrics

import (
	"context"
	"testing"
	"time"

	"git.home.luguber.info/inful/railsdocs/internal/process"
	"git.home.luguber.info/inful/railsdocs/internal/testutil/testutils"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandObservation struct {
	tool    string
	success bool
}

type fakeRecorder struct {
	NoopRecorder
	commands []commandObservation
}

func (f *fakeRecorder) ObserveCommand(tool string, _ time.Duration, success bool) {
	f.commands = append(f.commands, commandObservation{tool, success})
}

func TestInstrumentedRunner(t *testing.T) {
	inner := testutils.NewRecordingRunner().FailWhen(testutils.HasArg("clobber"), 1)
	rec := &fakeRecorder{}
	r := NewInstrumentedRunner(inner, rec)
	ctx := context.Background()

	_, err := r.Run(ctx, process.Command{Name: "/usr/bin/git", Args: []string{"checkout", "v1"}})
	require.NoError(t, err)
	_, err = r.Run(ctx, process.Command{Name: "rake", Args: []string{"clobber"}})
	require.Error(t, err)

	assert.Equal(t, []commandObservation{{"git", true}, {"rake", false}}, rec.commands)
	assert.Len(t, inner.Commands(), 2)
}

func TestInstrumentedRunner_Prometheus(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	r := NewInstrumentedRunner(testutils.NewRecordingRunner(), pr)

	_, err := r.Run(context.Background(), process.Command{Name: "ruby"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(pr.commandResults.WithLabelValues("ruby", "success")))
}
