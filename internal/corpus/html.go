package corpus

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector lists the elements whose text becomes one corpus line.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, pre"

// HTMLLines flattens an HTML document into text lines, one per block
// element, in document order. Text inside <pre> keeps its line breaks.
func HTMLLines(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	lines := make([]string, 0)
	doc.Find(blockSelector).Each(func(i int, sel *goquery.Selection) {
		// Nested blocks (a <p> inside an <li>) are emitted by the inner node.
		if sel.Find(blockSelector).Length() > 0 {
			return
		}

		if goquery.NodeName(sel) == "pre" {
			for _, l := range strings.Split(sel.Text(), "\n") {
				lines = append(lines, strings.TrimRight(l, " \t\r"))
			}
			return
		}

		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text != "" {
			lines = append(lines, text)
		}
	})

	return lines, nil
}
