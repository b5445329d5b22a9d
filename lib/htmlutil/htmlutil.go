package htmlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NotFoundError reports a structural piece of markup (an element, an
// attribute, or a literal embedded pattern) that was absent where the
// page is expected to always render it. It signals that the page shape
// differs from what the scraper understands, not a legitimately empty
// field.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func Parse(markup string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(markup))
}

// Attr returns the named attribute of the first element matching the
// selector, distinguishing a missing element from a missing attribute.
func Attr(doc *goquery.Document, selector, attr string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", NotFound("%s is missing", selector)
	}
	val, ok := sel.Attr(attr)
	if !ok {
		return "", NotFound("%s is not having %q attribute", selector, attr)
	}
	return val, nil
}
