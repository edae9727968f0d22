package render

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/alexisbeaulieu97/miever/pkg/style"
)

// Apply merges decls into the style attribute of every element matching
// selector. Existing declarations are kept and the new ones appended after
// them, so the new ones win. It returns the number of elements updated.
func Apply(doc *goquery.Document, selector string, decls style.Declarations) (int, error) {
	var (
		count    int
		applyErr error
	)

	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		existing, err := ParseStyle(s.AttrOr("style", ""))
		if err != nil {
			applyErr = fmt.Errorf("element %d matching %q: %w", count, selector, err)
			return false
		}

		merged := append(existing, decls...)
		s.SetAttr("style", FormatStyle(merged))
		count++
		return true
	})

	return count, applyErr
}
