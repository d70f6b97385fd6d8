package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	domain "github.com/donaldgifford/flower-finder/pkg/types"
)

// product holds the shopping item fields shown in table output.
type product struct {
	Title    string `json:"title"`
	LPrice   string `json:"lprice"`
	MallName string `json:"mallName"`
	Link     string `json:"link"`
}

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printFlowerDetail(w io.Writer, f *domain.Flower) error {
	tw := newTabWriter(w)
	tw.writef("Name:\t%s\n", f.FlowerName)
	tw.writef("Korean name:\t%s\n", f.FlowerNameLocalized)
	tw.writef("Binomial name:\t%s\n", f.BinomialName)
	tw.writef("Classification:\t%s\n", f.Classification)
	tw.writef("Habitat:\t%s\n", f.Habitat)
	return tw.finish()
}

func printProductTable(w io.Writer, products []product, limit int) error {
	shown := products
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	tw := newTabWriter(w)
	tw.writef("#\tTITLE\tPRICE\tMALL\n")
	for i := range shown {
		tw.writef("%d\t%s\t%s\t%s\n",
			i+1,
			truncate(stripTags(shown[i].Title), 50),
			shown[i].LPrice,
			shown[i].MallName,
		)
	}
	if len(shown) < len(products) {
		tw.writef("\t(%d of %d shown)\t\t\n", len(shown), len(products))
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var tagReplacer = strings.NewReplacer("<b>", "", "</b>", "")

// stripTags removes the <b> highlighting the search API puts around matches.
func stripTags(s string) string {
	return tagReplacer.Replace(s)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
