package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"toolbox/pkg/logger"
	"toolbox/pkg/random"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger   = "failed to initialize logger"
	ErrWriteOutput  = "failed to write output"
	ErrInvalidArg   = "invalid argument"
	ErrReadInput    = "failed to read input"
	ErrLoadTables   = "failed to load rewrite tables"
	ErrToolRejected = "tool rejected input"
)

// cli хранит общие флаги и зависимости команд.
type cli struct {
	rnd    random.Source
	secure random.Source
	now    func() time.Time

	jsonOutput bool
	verbose    bool

	log *logger.Logger
}

// newRootCmd собирает дерево команд. secure используется для паролей,
// now задает текущую дату для roman date-encode.
func newRootCmd(rnd, secure random.Source, now func() time.Time) *cobra.Command {
	c := &cli{rnd: rnd, secure: secure, now: now, log: logger.NewNop()}

	root := &cobra.Command{
		Use:   "toolbox",
		Short: "Offline utilities: units, Roman numerals, test data, passwords, text rewriting",
		Long: `toolbox runs the same tools as the gateway, locally.

Every command prints human readable text; pass --json for machine readable output.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "warn"
			if c.verbose {
				level = "debug"
			}
			log, err := logger.NewLogger(logger.Development, level)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrInitLogger, err)
			}
			c.log = log
			cmd.SetContext(logger.NewContext(cmd.Context(), log))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = c.log.Sync()
		},
	}

	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		c.convertCmd(),
		c.romanCmd(),
		c.cardCmd(),
		c.identityCmd(),
		c.passwordCmd(),
		c.rewriteCmd(),
	)
	return root
}

// print пишет v как JSON при --json, иначе вызывает text.
func (c *cli) print(cmd *cobra.Command, v any, text func(w io.Writer) error) error {
	out := cmd.OutOrStdout()

	var err error
	if c.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	} else {
		err = text(out)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrWriteOutput, err)
	}
	return nil
}

func rejected(err error) error {
	return fmt.Errorf("%s: %w", ErrToolRejected, err)
}
