package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/railsdocs/cmd/railsdocs/commands"
	"git.home.luguber.info/inful/railsdocs/internal/config"
	ferrors "git.home.luguber.info/inful/railsdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/railsdocs/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Env files must be loaded before kong resolves env-backed flags.
	if _, err := config.LoadEnvFiles(envFiles(args)...); err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).WithOutput(stderr).
			Report(ferrors.ConfigError("failed to load environment file").WithCause(err).Build())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &commands.CLI{}
	parser, err := newParser(cli, stdout, stderr)
	if err != nil {
		return ferrors.NewCLIErrorAdapter(false, nil).WithOutput(stderr).Report(err)
	}
	kctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	err = kctx.Run(&commands.Global{Context: ctx, Stdout: stdout, Logger: cli.Logger()})
	return ferrors.NewCLIErrorAdapter(cli.Verbose, cli.Logger()).WithOutput(stderr).Report(err)
}

func newParser(cli *commands.CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("railsdocs"),
		kong.Description("Generate merged Ruby and Rails API documentation with sdoc for every requested version pair."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.String()},
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
}

// envFiles returns the --env-file values in args, or the default files when
// none are given.
func envFiles(args []string) []string {
	var files []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--env-file="); ok {
			files = append(files, v)
			continue
		}
		if a == "--env-file" && i+1 < len(args) {
			files = append(files, args[i+1])
			i++
		}
	}
	if len(files) == 0 {
		slog.Debug("Using default environment files", "files", config.DefaultEnvFiles)
		return config.DefaultEnvFiles
	}
	return files
}
