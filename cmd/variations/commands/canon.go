package commands

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/variations/fretting"
	"github.com/katalvlaran/variations/internal/logger"
	"github.com/katalvlaran/variations/internal/render"
)

type canonDoc struct {
	Frets  []int      `yaml:"frets"`
	Prime  shapeDoc   `yaml:"prime"`
	Shift  int        `yaml:"shift"`
	Family []shapeDoc `yaml:"family,omitempty"`
}

func newCanonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon <fret> [<fret> ...]",
		Short: "Reduce a fret shape to its prime form",
		Long: `Print the prime form of the given relative frets and the shift that maps the
prime form back onto them. One argument per string. With --family, also list
every translation of that prime form within 0..--span.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			frets := make([]fretting.RelativeFret, len(values))
			for i, v := range values {
				frets[i] = fretting.RelativeFret(v)
			}

			s, err := buildShapes(cfg, len(frets))
			if err != nil {
				return err
			}
			prime, shift, err := s.Canonical(frets)
			if err != nil {
				return errors.WithHintf(errors.Wrap(err, "failed to canonicalize"),
					"frets must lie in 0..%d; raise --span for wider shapes", cfg.Span)
			}
			logger.Logger.Debugw("Canonical form",
				logger.FieldCommand, cmd.Name(),
				"prime", prime.String(),
				"shift", shift)

			doc := canonDoc{
				Frets: values,
				Prime: shapeDoc{Index: prime.Index.String(), Frets: intsOf(prime.Frets)},
				Shift: shift,
			}
			view := render.View{
				Title:  "prime form of " + joinValues(frets),
				Header: []string{"index", "frets", "shift"},
				Rows:   [][]string{{prime.Index.String(), joinValues(prime.Frets), "+" + strconv.Itoa(shift)}},
			}

			family, _ := cmd.Flags().GetBool("family")
			if family {
				translations, err := s.TranslationsOf(prime)
				if err != nil {
					return errors.Wrap(err, "failed to list translations")
				}
				for _, t := range translations {
					view.Rows = append(view.Rows, []string{
						t.Index.String(), joinValues(t.Frets), "+" + strconv.Itoa(t.Shift),
					})
					doc.Family = append(doc.Family, shapeDoc{
						Index: t.Index.String(), Frets: intsOf(t.Frets), Shift: t.Shift,
					})
				}
			}
			view.Doc = doc

			return output(cmd, cfg, view)
		},
	}
	cmd.Flags().Int("span", 4, "Highest relative fret (frets are 0..span)")
	cmd.Flags().Bool("family", false, "Also list every translation of the prime form")

	return cmd
}
