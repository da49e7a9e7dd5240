package commands

import (
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/variations/fretting"
	"github.com/katalvlaran/variations/internal/config"
	"github.com/katalvlaran/variations/internal/logger"
	"github.com/katalvlaran/variations/internal/render"
	"github.com/katalvlaran/variations/shapes"
)

type shapeDoc struct {
	Index string `yaml:"index"`
	Frets []int  `yaml:"frets"`
	Shift int    `yaml:"shift,omitempty"`
	Prime string `yaml:"prime,omitempty"`
}

type shapesDoc struct {
	Span         int        `yaml:"span"`
	Strings      int        `yaml:"strings"`
	Count        string     `yaml:"count"`
	Primes       int        `yaml:"primes"`
	Translations int        `yaml:"translations"`
	Listed       []shapeDoc `yaml:"listed"`
}

func newShapesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "List prime fret shapes or their translations",
		Long: `Build every shape of --strings relative frets in 0..--span and list the prime
forms (shapes touching fret 0). With --translations, list the remaining shapes
with the shift that maps each prime form onto them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			start := time.Now()
			s, err := buildShapes(cfg, cfg.Strings)
			if err != nil {
				return err
			}
			primes := s.PrimeForms()
			translations := s.Translations()
			logger.Logger.Infow("Shapes built",
				logger.FieldCommand, cmd.Name(),
				logger.FieldSpan, cfg.Span,
				logger.FieldStrings, cfg.Strings,
				logger.FieldCount, s.Count().String(),
				logger.FieldPrimes, len(primes),
				logger.FieldDurationMS, time.Since(start).Milliseconds())

			doc := shapesDoc{
				Span:         cfg.Span,
				Strings:      cfg.Strings,
				Count:        s.Count().String(),
				Primes:       len(primes),
				Translations: len(translations),
			}
			view := render.View{}

			withTranslations, _ := cmd.Flags().GetBool("translations")
			if withTranslations {
				n := limited(len(translations), cfg.Limit)
				view.Title = "translations " + strconv.Itoa(n) + "/" + strconv.Itoa(len(translations))
				view.Header = []string{"index", "frets", "shift", "prime"}
				for _, t := range translations[:n] {
					p, err := t.Prime()
					if err != nil {
						return errors.Wrapf(err, "failed to resolve prime of %s", t.Index)
					}
					view.Rows = append(view.Rows, []string{
						t.Index.String(), joinValues(t.Frets), "+" + strconv.Itoa(t.Shift), p.String(),
					})
					doc.Listed = append(doc.Listed, shapeDoc{
						Index: t.Index.String(), Frets: intsOf(t.Frets), Shift: t.Shift, Prime: p.Index.String(),
					})
				}
			} else {
				n := limited(len(primes), cfg.Limit)
				view.Title = "prime forms " + strconv.Itoa(n) + "/" + strconv.Itoa(len(primes))
				view.Header = []string{"index", "frets"}
				for _, p := range primes[:n] {
					view.Rows = append(view.Rows, []string{p.Index.String(), joinValues(p.Frets)})
					doc.Listed = append(doc.Listed, shapeDoc{Index: p.Index.String(), Frets: intsOf(p.Frets)})
				}
			}
			view.Doc = doc

			return output(cmd, cfg, view)
		},
	}
	cmd.Flags().Int("span", 4, "Highest relative fret (frets are 0..span)")
	cmd.Flags().Int("strings", 4, "Number of strings per shape")
	cmd.Flags().Bool("translations", false, "List translations instead of prime forms")

	return cmd
}

// buildShapes checks the space size against max_space before building the
// equivalence tables for span and stringCount.
func buildShapes(cfg *config.Config, stringCount int) (*shapes.Shapes[fretting.RelativeFret], error) {
	if cfg.Span < 0 {
		return nil, errors.WithHint(errors.Newf("span must be >= 0, got %d", cfg.Span),
			"frets run from 0 to --span")
	}
	if stringCount <= 0 {
		return nil, errors.Newf("string count must be > 0, got %d", stringCount)
	}
	n := big.NewInt(int64(cfg.Span + 1))
	count := new(big.Int).Exp(n, big.NewInt(int64(stringCount)), nil)
	if err := cfg.CheckSpace(count); err != nil {
		return nil, err
	}

	s, err := shapes.New(fretting.RelativeFrets(cfg.Span), stringCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build shapes")
	}

	return s, nil
}
