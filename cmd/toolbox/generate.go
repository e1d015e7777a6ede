package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"toolbox/pkg/cardgen"
	"toolbox/pkg/identity"
)

type cardsOutput struct {
	Cards  []cardgen.Card `json:"cards"`
	Notice string         `json:"notice"`
}

func (c *cli) cardCmd() *cobra.Command {
	var (
		brand string
		count int
	)

	cmd := &cobra.Command{
		Use:   "card",
		Short: "Generate Luhn-valid test card numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, err := cardgen.NewGenerator(c.rnd).GenerateBatch(cardgen.ParseBrand(brand), count)
			if err != nil {
				return rejected(err)
			}

			return c.print(cmd, cardsOutput{Cards: cards, Notice: cardgen.Notice}, func(w io.Writer) error {
				for _, card := range cards {
					if _, err := fmt.Fprintf(w, "%-10s %s  %s  %s\n", card.Brand, card.Formatted, card.Expiry, card.CVV); err != nil {
						return err
					}
				}
				_, err := fmt.Fprintln(w, cardgen.Notice)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&brand, "brand", "b", string(cardgen.Visa), "card brand (visa, mastercard, amex, discover)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, fmt.Sprintf("number of cards, 1 to %d", cardgen.MaxBatch))
	return cmd
}

func (c *cli) identityCmd() *cobra.Command {
	var (
		gender string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Generate fictitious identities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			people, err := identity.NewGenerator(c.rnd).GenerateBatch(identity.ParseGender(gender), count)
			if err != nil {
				return rejected(err)
			}

			return c.print(cmd, people, func(w io.Writer) error {
				for _, p := range people {
					if _, err := fmt.Fprintf(w, "%s %s <%s> @%s\n", p.FirstName, p.LastName, p.Email, p.Username); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&gender, "gender", "g", "", "male, female or empty for any")
	cmd.Flags().IntVarP(&count, "count", "n", 1, fmt.Sprintf("number of identities, 1 to %d", identity.MaxBatch))
	return cmd
}
