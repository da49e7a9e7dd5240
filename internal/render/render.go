// Package render writes CLI results either as a pterm table or as a YAML
// document. Commands build both views of the same data and let the
// configured format decide.
package render

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/variations/internal/config"
)

// View is one result: a titled table and the equivalent YAML document.
type View struct {
	Title  string
	Header []string
	Rows   [][]string
	Doc    any
}

// Renderer writes views to out in a fixed format.
type Renderer struct {
	format string
	out    io.Writer
}

// New returns a renderer for format (config.FormatTable or config.FormatYAML).
func New(format string, out io.Writer) (*Renderer, error) {
	switch format {
	case config.FormatTable, config.FormatYAML:
		return &Renderer{format: format, out: out}, nil
	default:
		return nil, errors.Newf("render: unknown format %q", format)
	}
}

// Render writes v.
func (r *Renderer) Render(v View) error {
	if r.format == config.FormatYAML {
		return r.yaml(v.Doc)
	}

	return r.table(v)
}

// table renders the header and rows with pterm, title on its own line.
func (r *Renderer) table(v View) error {
	if v.Title != "" {
		if _, err := fmt.Fprintln(r.out, pterm.Bold.Sprint(v.Title)); err != nil {
			return err
		}
	}
	data := make(pterm.TableData, 0, len(v.Rows)+1)
	data = append(data, v.Header)
	data = append(data, v.Rows...)

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	_, err = fmt.Fprintln(r.out, s)

	return err
}

// yaml encodes doc with two-space indentation.
func (r *Renderer) yaml(doc any) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "render yaml")
	}

	return enc.Close()
}
