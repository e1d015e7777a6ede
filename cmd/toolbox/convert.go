package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"toolbox/pkg/logger"
	"toolbox/pkg/units"
)

type conversionOutput struct {
	units.Result
	From     string         `json:"from"`
	To       string         `json:"to"`
	Category units.Category `json:"category"`
}

func (c *cli) convertCmd() *cobra.Command {
	var category, valueFlag string

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between units of one category",
		Long: `Convert a value between units of one category.

A negative value looks like a flag: pass it with --value or after "--".`,
		Example: `  toolbox convert 1 hour minute --category time
  toolbox convert 212 F C -c temperature
  toolbox convert --value=-40 C F -c temperature
  toolbox convert -c temperature -- -40 C F`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("value") {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			raw := valueFlag
			if !cmd.Flags().Changed("value") {
				raw, args = args[0], args[1:]
			}
			from, to := args[0], args[1]

			cat, err := units.ParseCategory(category)
			if err != nil {
				return rejected(err)
			}
			value, err := units.ParseValue(raw)
			if err != nil {
				return rejected(err)
			}

			logger.Log(ctx).Debug(ctx, "converting",
				zap.Float64("value", value), zap.String("from", from), zap.String("to", to))

			res, err := units.Convert(value, from, to, cat)
			if err != nil {
				return rejected(err)
			}

			out := conversionOutput{Result: res, From: from, To: to, Category: cat}
			return c.print(cmd, out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s\n%s\n", res.FormattedValue, res.Formula)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "unit category (length, weight, volume, area, temperature, power, time)")
	cmd.Flags().StringVar(&valueFlag, "value", "", "value to convert, replaces the first argument")
	_ = cmd.MarkFlagRequired("category")

	cmd.AddCommand(c.unitsCmd())
	return cmd
}

func (c *cli) unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List known units",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := units.Categories()
			if len(args) == 1 {
				cat, err := units.ParseCategory(args[0])
				if err != nil {
					return rejected(err)
				}
				categories = []units.Category{cat}
			}

			listing := make(map[units.Category][]units.Unit, len(categories))
			for _, cat := range categories {
				table, err := units.Units(cat)
				if err != nil {
					return rejected(err)
				}
				listing[cat] = table
			}

			return c.print(cmd, listing, func(w io.Writer) error {
				for _, cat := range categories {
					if _, err := fmt.Fprintf(w, "%s:\n", cat); err != nil {
						return err
					}
					for _, u := range listing[cat] {
						factor := "formula"
						if u.Linear() {
							factor = units.Format(u.ToBase)
						}
						if _, err := fmt.Fprintf(w, "  %-8s %-24s %s\n", u.Abbreviation, u.Name, factor); err != nil {
							return err
						}
					}
				}
				return nil
			})
		},
	}
}
