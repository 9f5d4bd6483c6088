package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pomelo/internal/config"
	"pomelo/internal/history"
	"pomelo/internal/library"
	"pomelo/internal/logging"
	"pomelo/internal/scan"
)

type importOptions struct {
	policy string
	inputs []string
	dryRun bool
}

func registerImportFlags(flags *pflag.FlagSet, opts *importOptions) {
	flags.StringVarP(&opts.policy, "policy", "p", "", "Sort policy: root or date (overrides config)")
	flags.StringArrayVar(&opts.inputs, "input", nil, "Input directory to scan (repeatable, overrides config)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Report what would be imported without moving anything")
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Scan the input directories and sort new files into the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, ctx, opts)
		},
	}
	registerImportFlags(cmd.Flags(), opts)
	return cmd
}

func runImport(cmd *cobra.Command, ctx *commandContext, opts *importOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	policyText := cfg.Import.SortPolicy
	if opts.policy != "" {
		policyText = opts.policy
	}
	policy, err := library.ParsePolicy(policyText)
	if err != nil {
		return err
	}

	inputs := cfg.Paths.InputDirs
	if len(opts.inputs) > 0 {
		inputs = make([]string, 0, len(opts.inputs))
		for _, dir := range opts.inputs {
			expanded, err := config.ExpandPath(dir)
			if err != nil {
				return fmt.Errorf("resolve input directory %q: %w", dir, err)
			}
			inputs = append(inputs, expanded)
		}
	}

	started := time.Now()

	candidates, err := scan.Scan(inputs, cfg.Import.Extensions, logger)
	if err != nil {
		return err
	}
	logger.Info("captured candidate files",
		logging.Int("count", len(candidates)),
		logging.Int("inputs", len(inputs)),
	)

	lib, err := library.Open(cfg.Paths.OutputDir, logger)
	if err != nil {
		return err
	}
	defer lib.Close()

	newFiles, err := lib.CheckNew(candidates)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.dryRun {
		for _, file := range newFiles {
			fmt.Fprintf(out, "would import %s (%s)\n", file.Path, file.Hash.Encode())
		}
		fmt.Fprintf(out, "%d of %d scanned files are new (dry run, nothing moved)\n", len(newFiles), len(candidates))
		return nil
	}

	before := len(lib.Entries())
	placeErr := lib.Place(newFiles, policy)
	placed := len(lib.Entries()) - before

	// Files moved before a mid-batch failure are already in the output tree,
	// so the partial entry set is persisted either way; skipping the persist
	// would orphan them from the index.
	persistErr := lib.Persist()

	recordImportSession(cmd.Context(), cfg, lib, logger, history.Session{
		ID:         uuid.NewString(),
		StartedAt:  started,
		FinishedAt: time.Now(),
		Policy:     policy.String(),
		Scanned:    len(candidates),
		NewFiles:   len(newFiles),
		Placed:     placed,
		ErrorText:  errorText(placeErr, persistErr),
	})

	if placeErr != nil {
		return placeErr
	}
	if persistErr != nil {
		return persistErr
	}

	fmt.Fprintf(out, "Imported %d new files (%d scanned, %d already known)\n",
		placed, len(candidates), len(candidates)-len(newFiles))
	return nil
}

func recordImportSession(ctx context.Context, cfg *config.Config, lib *library.Library, logger *slog.Logger, session history.Session) {
	if !cfg.Import.History {
		return
	}
	store, err := history.Open(lib.MetaRoot())
	if err != nil {
		logger.Warn("import journal unavailable", logging.Error(err))
		return
	}
	defer store.Close()
	if err := store.RecordSession(ctx, session); err != nil {
		logger.Warn("record import session", logging.Error(err))
	}
}

func errorText(errs ...error) string {
	for _, err := range errs {
		if err != nil {
			return err.Error()
		}
	}
	return ""
}
