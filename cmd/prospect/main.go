// Command prospect runs the ANZ insurance & finance prospect pipeline:
// discover companies, verify hiring, enrich contacts, consolidate into a
// workbook. Stages run independently so a long enrichment can be retried
// without re-discovering.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/consolidate"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/discover"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/enrich"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/fetch"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/hiring"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/pipeline"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/secrets"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/store"
)

var (
	flagDataDir string
	flagConfig  string
)

func main() {
	log.SetFlags(0)

	root := &cobra.Command{
		Use:           "prospect",
		Short:         "ANZ insurance & finance prospect pipeline",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "directory for stage files and the database")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default <data-dir>/config.yml)")

	root.AddCommand(
		stageCmd("discover", "Collect companies from reference sources", runDiscover),
		stageCmd("verify", "Check hiring status on job surfaces", runVerify),
		stageCmd("enrich", "Find executives and contact details", runEnrich),
		stageCmd("consolidate", "Merge stage outputs into the final workbook", runConsolidate),
		runAllCmd(),
		statusCmd(),
		secretsCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds everything a stage needs: config, paths, the shared HTTP
// client, and the open database. Built once per invocation.
type app struct {
	cfg      config.Config
	paths    pipeline.Paths
	client   *fetch.Client
	searcher *fetch.Searcher
	db       *store.DB

	cleanup []func()
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
}

func setup(lock bool) (*app, error) {
	paths := pipeline.Paths{DataDir: flagDataDir}
	if err := paths.EnsureDirs(); err != nil {
		return nil, err
	}

	cfgPath := flagConfig
	if cfgPath == "" {
		var err error
		cfgPath, err = ensureConfig(paths.DataDir)
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", cfgPath, err)
	}
	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !v.OK() {
		return nil, fmt.Errorf("invalid config %s: %s", cfgPath, strings.Join(v.Errors, "; "))
	}

	a := &app{cfg: cfg, paths: paths}

	if lock {
		fl, err := pipeline.AcquireLock(paths)
		if err != nil {
			return nil, err
		}
		a.cleanup = append(a.cleanup, func() { _ = fl.Unlock() })
	}

	db, err := store.Open(paths.Database())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.db = db
	a.cleanup = append(a.cleanup, func() { _ = db.Close() })

	limiter := fetch.NewHostLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)
	a.client = fetch.NewClient(limiter)
	a.searcher = fetch.NewSearcher(a.client)
	return a, nil
}

// ensureConfig seeds the user config from the packaged default, or from
// built-in defaults when no packaged file is shipped alongside the binary.
func ensureConfig(dataDir string) (string, error) {
	path, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	path = filepath.Join(dataDir, "config.yml")
	if err := config.SaveAtomic(path, config.Default()); err != nil {
		return "", err
	}
	return path, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type stageFunc func(ctx context.Context, a *app) (int, error)

func stageCmd(name, short string, fn stageFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(true)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := signalContext()
			defer cancel()
			return runStage(ctx, a, name, fn)
		},
	}
}

// runStage records the execution in the runs table around the stage body.
func runStage(ctx context.Context, a *app, name string, fn stageFunc) error {
	runID, err := store.StartRun(ctx, a.db.Pool, name)
	if err != nil {
		return err
	}

	processed, stageErr := fn(ctx, a)
	note := ""
	failed := 0
	if stageErr != nil {
		note = stageErr.Error()
		failed = 1
	}
	if err := store.FinishRun(context.WithoutCancel(ctx), a.db.Pool, runID, processed, failed, note); err != nil {
		log.Printf("[%s] record run: %v", name, err)
	}
	return stageErr
}

func runDiscover(ctx context.Context, a *app) (int, error) {
	return discover.Run(ctx, discover.BuildSources(a.cfg, a.client), a.paths)
}

func runVerify(ctx context.Context, a *app) (int, error) {
	return hiring.Run(ctx, a.cfg, a.client, a.paths)
}

func runEnrich(ctx context.Context, a *app) (int, error) {
	var verifier *enrich.VerifierClient
	if a.cfg.Enrich.Verifier.URL != "" {
		key, err := secrets.GetVerifierKey(a.cfg.Enrich.Verifier.KeyringAccount)
		if err != nil {
			log.Printf("[enrich] verifier configured but %v; falling back to MX checks", err)
		} else {
			verifier = enrich.NewVerifierClient(a.cfg.Enrich.Verifier.URL, key)
		}
	}
	e := enrich.NewEnricher(a.cfg, a.client, a.searcher, a.db.Pool, verifier)
	return enrich.Run(ctx, e, a.paths)
}

func runConsolidate(ctx context.Context, a *app) (int, error) {
	return consolidate.Run(ctx, a.cfg, a.paths)
}

func runAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run all four stages in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(true)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := signalContext()
			defer cancel()

			stages := []struct {
				name string
				fn   stageFunc
			}{
				{"discover", runDiscover},
				{"verify", runVerify},
				{"enrich", runEnrich},
				{"consolidate", runConsolidate},
			}
			for _, s := range stages {
				if err := runStage(ctx, a, s.name, s.fn); err != nil {
					return fmt.Errorf("stage %s: %w", s.name, err)
				}
			}
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last run of each stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(false)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := signalContext()
			defer cancel()

			for _, stage := range []string{"discover", "verify", "enrich", "consolidate"} {
				r, err := store.LastRun(ctx, a.db.Pool, stage)
				if err != nil {
					return err
				}
				if r.ID == "" {
					fmt.Printf("%-12s never run\n", stage)
					continue
				}
				state := "ok"
				if r.Failed > 0 {
					state = "failed: " + r.Note
				} else if r.FinishedAt == "" {
					state = "running"
				}
				fmt.Printf("%-12s %s  processed=%d  %s\n", stage, r.StartedAt, r.Processed, state)
			}
			return nil
		},
	}
}

func secretsCmd() *cobra.Command {
	parent := &cobra.Command{
		Use:   "secrets",
		Short: "Manage keys stored in the OS keychain",
	}

	setCmd := &cobra.Command{
		Use:   "set-verifier-key",
		Short: "Store the email verification service API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(false)
			if err != nil {
				return err
			}
			defer a.close()

			account := a.cfg.Enrich.Verifier.KeyringAccount
			if account == "" {
				return errors.New("set enrich.verifier.keyring_account in config first")
			}
			fmt.Print("API key: ")
			key, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return err
			}
			if err := secrets.SetVerifierKey(account, strings.TrimSpace(key)); err != nil {
				return err
			}
			fmt.Println("stored")
			return nil
		},
	}

	delCmd := &cobra.Command{
		Use:   "delete-verifier-key",
		Short: "Remove the stored verification service API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(false)
			if err != nil {
				return err
			}
			defer a.close()
			return secrets.DeleteVerifierKey(a.cfg.Enrich.Verifier.KeyringAccount)
		},
	}

	parent.AddCommand(setCmd, delCmd)
	return parent
}
