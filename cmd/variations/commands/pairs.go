package commands

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/variations/fretting"
	"github.com/katalvlaran/variations/internal/logger"
	"github.com/katalvlaran/variations/internal/render"
	"github.com/katalvlaran/variations/pairing"
)

type pairsDoc struct {
	Items     []string       `yaml:"items"`
	Pairs     int            `yaml:"pairs"`
	Symmetric bool           `yaml:"symmetric"`
	Histogram map[int]int    `yaml:"histogram"`
	Listed    []pairEntryDoc `yaml:"listed,omitempty"`
}

type pairEntryDoc struct {
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Norm int    `yaml:"interval_class"`
}

func newPairsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Interval-class histogram over ordered pitch-class pairs",
		Long: `Pair every pitch class with every other (ordered, repetitions included) and
group the pairs by interval class (0..6). --only restricts the pitch classes;
--list prints the pairs themselves, grouped by interval class.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			only, _ := cmd.Flags().GetStringSlice("only")
			var opts []pairing.Option[fretting.PitchClass]
			if len(only) > 0 {
				keep, err := pitchClassSet(only)
				if err != nil {
					return err
				}
				opts = append(opts, pairing.WithPredicate(func(p fretting.PitchClass) bool {
					return slices.Contains(keep, p)
				}))
			}

			ordered, err := pairing.NewOrdered(fretting.PitchClasses(), fretting.IntervalClass, opts...)
			if err != nil {
				return errors.Wrap(err, "failed to build pair table")
			}
			groups := ordered.Groups()
			logger.Logger.Infow("Pairs grouped",
				logger.FieldCommand, cmd.Name(),
				logger.FieldCount, groups.Len(),
				"norms", len(groups.Norms()))

			items := ordered.Items()
			doc := pairsDoc{
				Items:     make([]string, len(items)),
				Pairs:     ordered.Len(),
				Symmetric: ordered.Symmetric(),
				Histogram: groups.Histogram(),
			}
			for i, p := range items {
				doc.Items[i] = p.String()
			}
			view := render.View{Title: "pitch classes " + strings.Join(doc.Items, " ")}

			list, _ := cmd.Flags().GetBool("list")
			if list {
				view.Header = []string{"interval class", "pair"}
				remaining := limited(groups.Len(), cfg.Limit)
				for _, norm := range groups.Norms() {
					for _, np := range groups.Pairs(norm) {
						if remaining == 0 {
							break
						}
						remaining--
						view.Rows = append(view.Rows, []string{strconv.Itoa(norm), np.Pair.String()})
						doc.Listed = append(doc.Listed, pairEntryDoc{A: np.A.String(), B: np.B.String(), Norm: norm})
					}
				}
			} else {
				view.Header = []string{"interval class", "pairs"}
				for _, norm := range groups.Norms() {
					view.Rows = append(view.Rows, []string{strconv.Itoa(norm), strconv.Itoa(groups.Count(norm))})
				}
			}
			view.Doc = doc

			return output(cmd, cfg, view)
		},
	}
	cmd.Flags().StringSlice("only", nil, "Restrict to these pitch classes (e.g. C,E,G)")
	cmd.Flags().Bool("list", false, "List every pair instead of the histogram")

	return cmd
}

// pitchClassSet resolves sharp-spelled names (C, C#, ... B) case-insensitively.
func pitchClassSet(names []string) ([]fretting.PitchClass, error) {
	all := fretting.PitchClasses()
	out := make([]fretting.PitchClass, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(p fretting.PitchClass) bool {
			return strings.EqualFold(p.String(), strings.TrimSpace(name))
		})
		if i < 0 {
			return nil, errors.WithHint(errors.Newf("unknown pitch class %q", name),
				"use sharp spellings: C C# D D# E F F# G G# A A# B")
		}
		out = append(out, all[i])
	}

	return out, nil
}
