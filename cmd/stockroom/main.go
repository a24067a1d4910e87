package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/stockroom/internal/cliconfig"
	"github.com/bft-labs/stockroom/internal/demo"
	"github.com/bft-labs/stockroom/pkg/log"
	"github.com/bft-labs/stockroom/plugins/sinkwatch"
)

const helpDescription = `
Typed in-memory record stores with a persisted inventory log.

Highlights:
  - Repositories keyed by record ID reject duplicates and report typed errors.
  - The inventory log saves to and restores from a JSON, TOML or YAML sink.
  - Persistence is best effort; failures are logged, or fatal with --strict.
  - Configure via file, env (STOCKROOM_*), or flags.
`

var exampleUsage = strings.TrimSpace(`
  stockroom inventory --data-dir /tmp/stock --format yaml
  stockroom show --sink inventory.toml
  stockroom health --patient 2
  stockroom watch --debounce 500ms
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

type app struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  *log.ZerologAdapter
}

// load layers file, env and flags onto the defaults, then validates.
func (a *app) load(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := cliconfig.NewLogger(a.cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration",
		log.String("sink", a.cfg.SinkPath),
		log.String("format", a.cfg.Format),
		log.Bool("strict", a.cfg.Strict),
		log.Duration("debounce", a.cfg.Debounce))
	return nil
}

func (a *app) env(cmd *cobra.Command) demo.Env {
	return demo.Env{
		Out:    cmd.OutOrStdout(),
		Logger: a.logger,
		Codec:  a.cfg.Codec(),
		Strict: a.cfg.Strict,
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig()}

	root := &cobra.Command{
		Use:           "stockroom",
		Short:         "Typed in-memory record stores with a persisted inventory log",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.stockroom/config.toml)")
	pf.StringVar(&a.cfg.DataDir, "data-dir", a.cfg.DataDir, "directory holding the inventory sink")
	pf.StringVar(&a.cfg.SinkName, "sink", a.cfg.SinkName, "sink file name; an extension selects the format")
	pf.StringVar(&a.cfg.Format, "format", a.cfg.Format, "sink format: json, toml or yaml")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log output: console or json")
	pf.BoolVar(&a.cfg.Strict, "strict", a.cfg.Strict, "fail when the sink cannot be saved or loaded")
	pf.DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "delay before reloading a changed sink (watch)")

	root.AddCommand(
		&cobra.Command{
			Use:   "inventory",
			Short: "Seed the inventory log, save it and restore it in a new session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return demo.Inventory(a.env(cmd), a.cfg.SinkPath)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the inventory log stored in the sink",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return demo.ShowInventory(a.env(cmd), a.cfg.SinkPath)
			},
		},
		&cobra.Command{
			Use:   "warehouse",
			Short: "Run stock operations against electronics and grocery repositories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return demo.NewWarehouse(a.env(cmd)).Run()
			},
		},
		newHealthCmd(a),
		newFinanceCmd(a),
		newWatchCmd(a),
	)
	return root
}

func newHealthCmd(a *app) *cobra.Command {
	var patientID int
	cmd := &cobra.Command{
		Use:   "health",
		Short: "List patients and the prescriptions of one patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.NewHealth(a.env(cmd)).Run(patientID)
		},
	}
	cmd.Flags().IntVar(&patientID, "patient", 2, "patient ID whose prescriptions are printed")
	return cmd
}

func newFinanceCmd(a *app) *cobra.Command {
	var (
		account string
		balance int64
	)
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Apply sample transactions to a savings account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo.NewFinance(a.env(cmd), account, balance).Run()
		},
	}
	cmd.Flags().StringVar(&account, "account", "ACC12345", "account number")
	cmd.Flags().Int64Var(&balance, "balance", 100000, "opening balance in cents")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the inventory log whenever its sink is rewritten",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			env := a.env(cmd)
			if err := os.MkdirAll(a.cfg.DataDir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
			if err := demo.ShowInventory(env, a.cfg.SinkPath); err != nil {
				return err
			}

			errCh := make(chan error, 1)
			w := sinkwatch.New(a.cfg.SinkPath, func(context.Context) {
				if err := demo.ShowInventory(env, a.cfg.SinkPath); err != nil {
					select {
					case errCh <- err:
					default:
					}
				}
			}, sinkwatch.Config{DebounceDelay: a.cfg.Debounce, Logger: a.logger})
			if err := w.Start(ctx); err != nil {
				return err
			}

			var runErr error
			select {
			case <-ctx.Done():
				a.logger.Info("received signal, stopping...")
			case runErr = <-errCh:
			}
			if err := w.Shutdown(context.Background()); err != nil {
				return fmt.Errorf("stop watcher: %w", err)
			}
			return runErr
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel).Error("stockroom", log.Err(err))
		os.Exit(1)
	}
}
