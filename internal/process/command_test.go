package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "plain",
			cmd:  Command{Name: "rake", Args: []string{"clobber"}},
			want: "rake clobber",
		},
		{
			name: "with dir",
			cmd:  Command{Name: "git", Args: []string{"checkout", "v2_0_0"}, Dir: "/src/ruby"},
			want: "[/src/ruby] git checkout v2_0_0",
		},
		{
			name: "with env",
			cmd: Command{
				Name: "ruby",
				Args: []string{"-I", "/sdoc/lib", "/sdoc/bin/sdoc", "--all"},
				Env:  map[string]string{"SDOC_FORCE_MAIN_PAGE": "README"},
			},
			want: "SDOC_FORCE_MAIN_PAGE=README ruby -I /sdoc/lib /sdoc/bin/sdoc --all",
		},
		{
			name: "quoted arguments",
			cmd: Command{
				Name: "ruby",
				Args: []string{"--title", "Ruby v2.0.0, Rails v4.0.0", "--names", "Ruby,Rails"},
			},
			want: "ruby --title 'Ruby v2.0.0, Rails v4.0.0' --names Ruby,Rails",
		},
		{
			name: "sorted env",
			cmd:  Command{Name: "env", Env: map[string]string{"B": "2", "A": "x y"}},
			want: "A='x y' B=2 env",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestCommandArgvDoesNotAlias(t *testing.T) {
	args := make([]string, 1, 4)
	args[0] = "clobber"
	c := Command{Name: "rake", Args: args}

	argv := c.Argv()
	argv[1] = "changed"
	assert.Equal(t, "clobber", c.Args[0])
}

func TestCommandTool(t *testing.T) {
	assert.Equal(t, "ruby", Command{Name: "/usr/bin/ruby"}.Tool())
	assert.Equal(t, "git", Command{Name: "git"}.Tool())
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{
		Command:  Command{Name: "rake", Args: []string{"clobber"}, Dir: "/src/rails"},
		ExitCode: 2,
	}
	assert.Equal(t, "the execution of the command [/src/rails] rake clobber failed with status 2", err.Error())
}
