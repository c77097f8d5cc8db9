package shell

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/yourorg/shoplist/internal/models"
)

var tableHeader = []string{"#", "Name", "Shop", "Category", "Status", "ID"}

// Renderer writes tables and messages for the shell. Bought rows are
// struck through.
type Renderer struct {
	out     io.Writer
	header  *color.Color
	bought  *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

func NewRenderer(out io.Writer, noColor bool) *Renderer {
	r := &Renderer{
		out:     out,
		header:  color.New(color.Bold),
		bought:  color.New(color.CrossedOut, color.Faint),
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{r.header, r.bought, r.success, r.warn, r.fail} {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) Table(products []*models.Product, summary models.Summary) {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			p.Name,
			string(p.Shop),
			string(p.Category),
			models.StatusOf(p.IsBought).Label(),
			p.ID,
		}
	}

	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	r.header.Fprintln(r.out, formatRow(tableHeader, widths))
	for i, row := range rows {
		line := formatRow(row, widths)
		if products[i].IsBought {
			r.bought.Fprintln(r.out, line)
			continue
		}
		fmt.Fprintln(r.out, line)
	}

	if len(products) == 0 {
		fmt.Fprintln(r.out, "(no products)")
	}
	fmt.Fprintf(r.out, "%d shown; %d total, %d bought, %d remaining\n",
		len(products), summary.Total, summary.Bought, summary.Remaining)
}

func formatRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
	}
	return b.String()
}

func (r *Renderer) Catalog() {
	r.header.Fprintln(r.out, "Shops:")
	for _, s := range models.Shops() {
		fmt.Fprintf(r.out, "  %s\n", s)
	}
	r.header.Fprintln(r.out, "Categories:")
	for _, c := range models.Categories() {
		fmt.Fprintf(r.out, "  %s\n", c)
	}
}

// AllBought is the one-time completion banner.
func (r *Renderer) AllBought() {
	r.success.Fprintln(r.out, "All products have been bought!")
}

func (r *Renderer) Warn(format string, args ...any) {
	r.warn.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Error(err error) {
	r.fail.Fprint(r.out, "error: ")
	fmt.Fprintln(r.out, err)
}

func (r *Renderer) Help() {
	fmt.Fprint(r.out, helpText)
}

const helpText = `Commands:
  add "<name>" [shop=<shop>] [category=<category>]
  toggle <id|#row>
  delete <id|#row>
  list                      show every product and clear the filter
  filter [name="<text>"] [shop=<shop|any>] [category=<category|any>] [status=all|bought|not-bought]
  catalog                   show known shops and categories
  help
  quit
`
