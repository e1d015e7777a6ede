package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"toolbox/pkg/rewrite"
)

type rewriteOutput struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

func (c *cli) rewriteCmd() *cobra.Command {
	var mode, tablesPath string

	cmd := &cobra.Command{
		Use:   "rewrite [text...]",
		Short: "Rewrite text with the local rule tables, reading stdin when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("%s: %w", ErrReadInput, err)
				}
				text = strings.TrimSpace(string(data))
			}

			tables := rewrite.DefaultTables()
			if tablesPath != "" {
				var err error
				if tables, err = rewrite.LoadTablesFile(tablesPath); err != nil {
					return fmt.Errorf("%s: %w", ErrLoadTables, err)
				}
			}

			m := rewrite.ParseMode(mode)
			result := rewrite.New(tables, c.rnd).Transform(text, m)

			return c.print(cmd, rewriteOutput{Text: result, Mode: string(m)}, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, result)
				return err
			})
		},
	}

	modes := make([]string, 0, len(rewrite.Modes()))
	for _, m := range rewrite.Modes() {
		modes = append(modes, string(m))
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(rewrite.Standard), "rewrite mode ("+strings.Join(modes, ", ")+")")
	cmd.Flags().StringVar(&tablesPath, "tables", "", "YAML file with rule tables")
	return cmd
}
