package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/polybasis/leg2cheb/binding"
	"github.com/polybasis/leg2cheb/transform"
	"github.com/polybasis/leg2cheb/utils/structs"
)

func (a *app) newConvertCmd(d transform.Direction) *cobra.Command {

	cmd := &cobra.Command{
		Use:   d.String(),
		Short: fmt.Sprintf("Convert %s coefficients to %s coefficients", basisName(d.Source()), basisName(d.Target())),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			var r io.Reader = cmd.InOrStdin()
			if a.cfg.In != "" && a.cfg.In != "-" {
				var f *os.File
				if f, err = os.Open(a.cfg.In); err != nil {
					return fmt.Errorf("cannot open input: %w", err)
				}
				defer f.Close()
				r = f
			}

			var w io.Writer = cmd.OutOrStdout()
			if a.cfg.Out != "" && a.cfg.Out != "-" {
				var out *os.File
				if out, err = os.Create(a.cfg.Out); err != nil {
					return fmt.Errorf("cannot create output: %w", err)
				}
				defer func() {
					if cerr := out.Close(); cerr != nil && err == nil {
						err = fmt.Errorf("cannot close output: %w", cerr)
					}
				}()
				w = out
			}

			var adapter binding.Adapter
			if adapter, err = binding.NewAdapter(a.cfg.Format, r, w); err != nil {
				return
			}

			obs := &observedAdapter{Adapter: adapter}

			start := time.Now()
			if err = binding.Run(obs, d); err != nil {
				a.log.Errorw("conversion failed", "direction", d, "err", err)
				return
			}

			kv := []any{"direction", d, "format", a.cfg.Format, "n", len(obs.output), "elapsed", time.Since(start)}
			if a.cfg.Digest {
				digest := structs.Vector[float64](obs.output).Digest()
				kv = append(kv, "digest", hex.EncodeToString(digest[:]))
			}
			a.log.Infow("converted coefficients", kv...)

			return
		},
	}

	cmd.Flags().String("in", "", "input file (default stdin)")
	cmd.Flags().String("out", "", "output file (default stdout)")
	cmd.Flags().Bool("digest", false, "log the blake3 digest of the output coefficients")

	return cmd
}

// observedAdapter records the output handed to the wrapped Adapter.
type observedAdapter struct {
	binding.Adapter
	output []float64
}

func (o *observedAdapter) WriteOutput(c []float64) error {
	o.output = c
	return o.Adapter.WriteOutput(c)
}
