package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"toolbox/pkg/roman"
)

type romanOutput struct {
	Number  int    `json:"number"`
	Numeral string `json:"numeral"`
}

type romanDateOutput struct {
	Date  string `json:"date"`
	Day   int    `json:"day"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
}

func (c *cli) romanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roman",
		Short: "Convert numbers and dates to and from Roman numerals",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "encode <number>",
			Short: "Write a number from 1 to 3999 as a Roman numeral",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := atoi(args[0])
				if err != nil {
					return err
				}
				numeral, err := roman.ToRoman(n)
				if err != nil {
					return rejected(err)
				}
				return c.printNumeral(cmd, romanOutput{Number: n, Numeral: numeral}, numeral)
			},
		},
		&cobra.Command{
			Use:   "decode <numeral>",
			Short: "Read a Roman numeral",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := roman.FromRoman(args[0])
				if err != nil {
					return rejected(err)
				}
				return c.printNumeral(cmd, romanOutput{Number: n, Numeral: args[0]}, strconv.Itoa(n))
			},
		},
		&cobra.Command{
			Use:   "date-encode [day month year]",
			Short: "Write a date as DAY.MONTH.YEAR in Roman numerals, today by default",
			Args: func(_ *cobra.Command, args []string) error {
				if len(args) != 0 && len(args) != 3 {
					return fmt.Errorf("%s: expected 0 or 3 arguments, got %d", ErrInvalidArg, len(args))
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 0 {
					now := c.now()
					date, err := roman.EncodeTime(now)
					if err != nil {
						return rejected(err)
					}
					out := romanDateOutput{Date: date, Day: now.Day(), Month: int(now.Month()), Year: now.Year()}
					return c.printDate(cmd, out, date)
				}

				values := make([]int, 3)
				for i, arg := range args {
					n, err := atoi(arg)
					if err != nil {
						return err
					}
					values[i] = n
				}

				date, err := roman.EncodeDate(values[0], values[1], values[2])
				if err != nil {
					return rejected(err)
				}
				out := romanDateOutput{Date: date, Day: values[0], Month: values[1], Year: values[2]}
				return c.printDate(cmd, out, date)
			},
		},
		&cobra.Command{
			Use:   "date-decode <date>",
			Short: "Read a date written as DAY.MONTH.YEAR in Roman numerals",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := roman.DecodeDate(args[0])
				if err != nil {
					return rejected(err)
				}
				text := fmt.Sprintf("%02d.%02d.%d", d.Day, d.Month, d.Year)
				return c.printDate(cmd, romanDateOutput{Date: args[0], Day: d.Day, Month: d.Month, Year: d.Year}, text)
			},
		},
	)
	return cmd
}

func (c *cli) printNumeral(cmd *cobra.Command, out romanOutput, text string) error {
	return c.print(cmd, out, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, text)
		return err
	})
}

func (c *cli) printDate(cmd *cobra.Command, out romanDateOutput, text string) error {
	return c.print(cmd, out, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, text)
		return err
	})
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", ErrInvalidArg, s, err)
	}
	return n, nil
}
