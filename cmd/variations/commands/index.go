package commands

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/variations/alphabet"
	"github.com/katalvlaran/variations/internal/logger"
	"github.com/katalvlaran/variations/internal/render"
)

type indexDoc struct {
	Index    string `yaml:"index"`
	Sequence []int  `yaml:"sequence"`
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <index> | index --encode <v1> <v2> ...",
		Short: "Convert between an index and its sequence",
		Long: `Decode an index into the sequence it names, or with --encode turn the given
values into their index. Position 0 is the least significant digit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			space, err := intSpace(cfg)
			if err != nil {
				return err
			}

			var (
				index *big.Int
				seq   []alphabet.Int
			)
			encode, _ := cmd.Flags().GetBool("encode")
			if encode {
				values, err := parseInts(args)
				if err != nil {
					return err
				}
				seq = make([]alphabet.Int, len(values))
				for i, v := range values {
					seq[i] = alphabet.Int(v)
				}
				if index, err = space.Encode(seq); err != nil {
					return errors.WithHintf(errors.Wrap(err, "failed to encode"),
						"values must be %d integers in 0..%d", cfg.Length, cfg.Size-1)
				}
			} else {
				if len(args) != 1 {
					return errors.WithHint(errors.Newf("expected one index, got %d arguments", len(args)),
						"use --encode to pass a sequence")
				}
				var ok bool
				if index, ok = new(big.Int).SetString(args[0], 10); !ok {
					return errors.Newf("%q is not a decimal index", args[0])
				}
				if seq, err = space.Decode(index); err != nil {
					return errors.WithHintf(errors.Wrap(err, "failed to decode"),
						"indices run from 0 to %s", new(big.Int).Sub(space.Count(), big.NewInt(1)))
				}
			}
			logger.Logger.Debugw("Index resolved",
				logger.FieldCommand, cmd.Name(),
				"index", index.String(),
				"encode", encode)

			return output(cmd, cfg, render.View{
				Header: []string{"index", "sequence"},
				Rows:   [][]string{{index.String(), joinValues(seq)}},
				Doc:    indexDoc{Index: index.String(), Sequence: intsOf(seq)},
			})
		},
	}
	addSpaceFlags(cmd)
	cmd.Flags().Bool("encode", false, "Treat arguments as sequence values and print their index")

	return cmd
}
