package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/polybasis/leg2cheb/binding"
	"github.com/polybasis/leg2cheb/transform"
	"github.com/polybasis/leg2cheb/utils/bignum"
)

// app holds the state shared by the commands once the configuration is resolved.
type app struct {
	cfg *Config
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {

	a := &app{}

	root := &cobra.Command{
		Use:           "leg2cheb",
		Short:         "Convert polynomial coefficients between the Chebyshev and the Legendre bases",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if a.cfg, err = loadConfig(cmd.Flags()); err != nil {
				return
			}
			a.log, err = newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
			return
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "configuration file (yaml, toml or json)")
	flags.String("format", "text", "coefficients format: "+strings.Join(binding.Formats, ", "))
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "console", "log format: console or json")

	root.AddCommand(
		a.newConvertCmd(transform.ChebyshevToLegendre),
		a.newConvertCmd(transform.LegendreToChebyshev),
		a.newRoundTripCmd(),
		a.newApproxCmd(),
	)

	return root
}

func basisName(b bignum.Basis) string {
	switch b {
	case bignum.Chebyshev:
		return "chebyshev"
	case bignum.Legendre:
		return "legendre"
	default:
		return "monomial"
	}
}
