package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"toolbox/pkg/passgen"
	"toolbox/pkg/strength"
)

type passwordOutput struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

func (c *cli) passwordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Assess or generate passwords",
	}
	cmd.AddCommand(c.passwordAssessCmd(), c.passwordGenerateCmd())
	return cmd
}

func (c *cli) passwordAssessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assess <password>",
		Short: "Score a password from 0 to 100",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := strength.Assess(args[0])

			return c.print(cmd, a, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "%d/100 %s, time to crack: %s\n", a.Score, a.Label, a.CrackTime); err != nil {
					return err
				}
				for _, s := range a.Suggestions {
					if _, err := fmt.Fprintf(w, "- %s\n", s); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (c *cli) passwordGenerateCmd() *cobra.Command {
	var (
		noUpper, noLower, noNumbers, noSymbols bool
		count                                  int
	)
	opts := passgen.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Upper, opts.Lower = !noUpper, !noLower
			opts.Numbers, opts.Symbols = !noNumbers, !noSymbols

			count = max(count, 1)
			gen := passgen.NewGenerator(c.secure)
			out := make([]passwordOutput, 0, count)
			for range count {
				password, err := gen.Generate(opts)
				if err != nil {
					return rejected(err)
				}
				out = append(out, passwordOutput{Password: password, Length: len(password)})
			}

			var v any = out
			if len(out) == 1 {
				v = out[0]
			}
			return c.print(cmd, v, func(w io.Writer) error {
				lines := make([]string, 0, len(out))
				for _, p := range out {
					lines = append(lines, p.Password)
				}
				_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
				return err
			})
		},
	}

	cmd.Flags().IntVarP(&opts.Length, "length", "l", passgen.DefaultLength,
		fmt.Sprintf("password length, %d to %d", passgen.MinLength, passgen.MaxLength))
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "exclude digits")
	cmd.Flags().BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	return cmd
}
