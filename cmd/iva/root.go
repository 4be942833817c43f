package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivakit/iva/config"
	"github.com/ivakit/iva/console"
	"github.com/ivakit/iva/fetch"
	"github.com/ivakit/iva/logger"
	"github.com/ivakit/iva/observability"
	"github.com/ivakit/iva/version"
)

const shutdownTimeout = 5 * time.Second

// app carries what the subcommands share once PersistentPreRunE has run.
type app struct {
	configFile string
	envFile    string
	debug      bool

	cfg      AppConfig
	client   *fetch.Client
	console  *console.Console
	shutdown func(context.Context) error
}

// execute runs the CLI and then shuts telemetry down, also after a failed
// command (cobra skips post-run hooks when RunE returns an error).
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	return errors.Join(err, a.close())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Formatting, parsing and fetch helpers",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: search iva.yml, config.yml, ...)")
	flags.StringVar(&a.envFile, "env-file", "", ".env file (default: search .env.iva, .env, ...)")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newSizeCmd(),
		newParseSizeCmd(),
		newBoolCmd(),
		newSortCmd(),
		newFetchCmd(a),
		newCSSCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	if a.envFile != "" {
		opts = append(opts, config.WithEnvFile(a.envFile))
	}
	if err := config.Load(serviceName, &a.cfg, opts...); err != nil {
		return err
	}
	if a.debug {
		a.cfg.Logging.Level = "debug"
	}
	logger.Init(a.cfg.Logging)

	shutdown, err := observability.Setup(ctx, a.cfg.Observability, a.cfg.Name, version.Short())
	if err != nil {
		return err
	}
	a.shutdown = shutdown

	client, err := fetch.New(a.cfg.Fetch, fetch.WithLogger(logger.Get("fetch")))
	if err != nil {
		return err
	}
	a.client = client
	fetch.SetDefault(client)

	a.console = console.New(console.NewLoggerSink(logger.Get("console")))
	logger.Debug("iva started", logger.Fields("environment", a.cfg.Environment, "version", version.Short()))
	return nil
}

func (a *app) close() error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return shutdown(ctx)
}
