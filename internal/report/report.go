// Package report prints the accepted ordering and its prerequisite
// explanations for a human reader.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
	"github.com/alexisbeaulieu97/rto/internal/ordering"
)

// Printer writes report sections to out. Colors are only emitted when enabled,
// which callers tie to stdout being a terminal.
type Printer struct {
	out    io.Writer
	color  bool
	styles styles
}

// NewPrinter creates a Printer.
func NewPrinter(out io.Writer, color bool) *Printer {
	renderer := lipgloss.NewRenderer(out)
	if color {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return &Printer{out: out, color: color, styles: newStyles(renderer)}
}

// Style colors text with the item's color tag. It satisfies ordering.Style.
func (p *Printer) Style(item catalog.Item, text string) string {
	if !p.color {
		return text
	}
	style, ok := p.styles.item(item.Color)
	if !ok {
		return text
	}
	return style.Render(text)
}

// Ordering lists every item with its 1-based position.
func (p *Printer) Ordering(items []catalog.Item) {
	for i, item := range items {
		ref := ordering.Reference{Position: i, Item: item}
		fmt.Fprintln(p.out, ref.Label(p.Style))
	}
}

// Explanations prints, for each constrained item, one line per clause.
func (p *Printer) Explanations(explanations []ordering.Explanation) {
	fmt.Fprintf(p.out, "\n%s\n", p.heading("Check prerequisites:"))
	for _, exp := range explanations {
		fmt.Fprintf(p.out, "\n%s\n", exp.Label(p.Style))
		for _, clause := range exp.Clauses {
			fmt.Fprintf(p.out, "  %s\n", clause.Text)
		}
	}
}

// Written reports the path of the generated splits file.
func (p *Printer) Written(path string) {
	fmt.Fprintf(p.out, "\nWritten: %s\n", path)
}

// TotalCost prints the summed cost of the items that have one.
func (p *Printer) TotalCost(items []catalog.Item) {
	fmt.Fprintf(p.out, "\nTotal cost: %d Rosaries\n", catalog.TotalCost(items))
}

// Feasibility prints the outcome of a satisfiability check, with a witness
// ordering when one exists.
func (p *Printer) Feasibility(result *ordering.Feasibility) {
	if !result.Satisfiable {
		fmt.Fprintln(p.out, p.failure("Catalog is unsatisfiable: no ordering meets every prerequisite."))
		return
	}
	fmt.Fprintln(p.out, p.heading("Catalog is satisfiable. Example ordering:"))
	p.Ordering(result.Witness)
}

// UnknownReferences lists atoms whose target item is missing from the catalog.
func (p *Printer) UnknownReferences(refs []catalog.Reference) {
	if len(refs) == 0 {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", p.heading("Unknown references (treated as never placed):"))
	for _, ref := range refs {
		fmt.Fprintf(p.out, "  %s -> %s\n", ref.Item, ref.Target)
	}
}

func (p *Printer) heading(text string) string {
	if !p.color {
		return text
	}
	return p.styles.heading.Render(text)
}

func (p *Printer) failure(text string) string {
	if !p.color {
		return text
	}
	return p.styles.failure.Render(text)
}
