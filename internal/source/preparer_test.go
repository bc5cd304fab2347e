package source

import (
	"context"
	"testing"

	"git.home.luguber.info/inful/railsdocs/internal/git"
	"git.home.luguber.info/inful/railsdocs/internal/testutil/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trees = Trees{LanguageDir: "/src/ruby", FrameworkDir: "/src/rails", Rake: "rake"}

func TestPrepareLanguage(t *testing.T) {
	runner := testutils.NewRecordingRunner()
	p := NewPreparer(trees, git.NewExecCheckouter(runner, "git"), runner)

	require.NoError(t, p.PrepareLanguage(context.Background(), "2.0.0-p195"))

	assert.Equal(t, []string{"[/src/ruby] git checkout v2_0_0_195"}, runner.Strings())
}

func TestPrepareLanguage_FallbackTag(t *testing.T) {
	runner := testutils.NewRecordingRunner()
	p := NewPreparer(trees, git.NewExecCheckouter(runner, "git"), runner)

	require.NoError(t, p.PrepareLanguage(context.Background(), "2.1"))

	assert.Equal(t, []string{"[/src/ruby] git checkout v2.1"}, runner.Strings())
}

func TestPrepareFramework_CheckoutThenClobber(t *testing.T) {
	runner := testutils.NewRecordingRunner()
	p := NewPreparer(trees, git.NewExecCheckouter(runner, "git"), runner)

	require.NoError(t, p.PrepareFramework(context.Background(), "4.0.0-rc.1"))

	assert.Equal(t, []string{
		"[/src/rails] git checkout v4.0.0-rc.1",
		"[/src/rails] rake clobber",
	}, runner.Strings())
}

func TestPrepareFramework_CheckoutFailureSkipsClobber(t *testing.T) {
	runner := testutils.NewRecordingRunner().FailWhen(testutils.HasArg("checkout"), 128)
	p := NewPreparer(trees, git.NewExecCheckouter(runner, "git"), runner)

	err := p.PrepareFramework(context.Background(), "4.0.0")

	require.Error(t, err)
	assert.Len(t, runner.Commands(), 1)
}

func TestPrepareFramework_GoGitBackend(t *testing.T) {
	repo := testutils.NewTaggedRepo(t, []string{"v3.2.13", "v4.0.0"}, "v4.0.0")
	runner := testutils.NewRecordingRunner()
	p := NewPreparer(Trees{LanguageDir: "/unused", FrameworkDir: repo.Dir}, git.NewGoGitCheckouter(), runner)

	require.NoError(t, p.PrepareFramework(context.Background(), "3.2.13"))

	assert.Equal(t, "v3.2.13", repo.ReadVersion(t))
	assert.Equal(t, []string{"[" + repo.Dir + "] rake clobber"}, runner.Strings())
}
