package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const usage = `Exact integer calculator

Results are computed with arbitrary precision and printed in base 10 unless
--hex, --json or --dump is passed. Every persistent flag can also be set from
the environment with a BIGCALC_ prefix, e.g. BIGCALC_HEX=1.`

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Exact integer calculator",
		Long:          usage,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.Bool("hex", false, "print results in base 16")
	flags.Bool("json", false, "print results as a JSON object")
	flags.Bool("dump", false, "dump the internal representation of results")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Int("jobs", 0, "number of workers for parallel commands (0 == GOMAXPROCS)")

	v.SetEnvPrefix("BIGCALC")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	cfg := &config{v: v}
	root.AddCommand(
		factCmd(cfg),
		binomCmd(cfg),
		fibCmd(cfg),
		shlCmd(cfg),
		divCmd(cfg),
		wordsCmd(cfg),
	)
	return root
}

type config struct {
	v *viper.Viper
}

func (c *config) Hex() bool     { return c.v.GetBool("hex") }
func (c *config) JSON() bool    { return c.v.GetBool("json") }
func (c *config) Dump() bool    { return c.v.GetBool("dump") }
func (c *config) Jobs() int     { return c.v.GetInt("jobs") }
func (c *config) Color() string { return c.v.GetString("color") }

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
