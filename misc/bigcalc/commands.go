package main

import (
	"strconv"

	"fortio.org/safecast"
	"github.com/pkg/errors"
	bigint "github.com/shabbyrobe/go-bigint"
	"github.com/spf13/cobra"
)

func factCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fact N",
		Short: "Compute N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint(args[0])
			if err != nil {
				return err
			}
			out, err := factorial(cmd.Context(), n, cfg.Jobs())
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), cfg).Print("fact", out)
		},
	}
}

func binomCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "binom N K",
		Short: "Compute the binomial coefficient N choose K",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint(args[0])
			if err != nil {
				return err
			}
			k, err := parseUint(args[1])
			if err != nil {
				return err
			}
			out, err := binomial(n, k)
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), cfg).Print("binom", out)
		},
	}
}

func fibCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "Compute the Nth Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseUint(args[0])
			if err != nil {
				return err
			}
			return newPrinter(cmd.OutOrStdout(), cfg).Print("fib", fibonacci(n))
		},
	}
}

func shlCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "shl V N",
		Short: "Shift the signed integer V left by N bits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInt(args[0])
			if err != nil {
				return err
			}
			n, err := parseUint(args[1])
			if err != nil {
				return err
			}
			by, err := safecast.Conv[uint](n)
			if err != nil {
				return errors.Wrapf(err, "bigcalc: shift %d out of range", n)
			}
			return newPrinter(cmd.OutOrStdout(), cfg).Print("shl", bigint.IntFromInt64(v).Lsh(by))
		},
	}
}

func divCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "div A B",
		Short: "Divide A by B, truncating towards zero",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt(args[0])
			if err != nil {
				return err
			}
			b, err := parseInt(args[1])
			if err != nil {
				return err
			}
			out, err := bigint.IntFromInt64(a).Quo(bigint.IntFromInt64(b))
			if err != nil {
				return errors.Wrapf(err, "bigcalc: %d / %d", a, b)
			}
			return newPrinter(cmd.OutOrStdout(), cfg).Print("div", out)
		},
	}
}

func wordsCmd(cfg *config) *cobra.Command {
	var neg bool
	cmd := &cobra.Command{
		Use:   "words W...",
		Short: "Build a value from hex words, least significant first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words := make([]uint64, len(args))
			for i, arg := range args {
				w, err := strconv.ParseUint(arg, 16, 64)
				if err != nil {
					return errors.Wrapf(err, "bigcalc: word %d", i)
				}
				words[i] = w
			}
			return newPrinter(cmd.OutOrStdout(), cfg).Print("words", fromWords(words, neg))
		},
	}
	cmd.Flags().BoolVar(&neg, "neg", false, "make the value negative")
	return cmd
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bigcalc: invalid unsigned integer %q", s)
	}
	return v, nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "bigcalc: invalid integer %q", s)
	}
	return v, nil
}
