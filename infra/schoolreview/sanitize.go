package schoolreview

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const maxExcerpt = 200

var strictPolicy = bluemonday.StrictPolicy()

// errorExcerpt turns a non-JSON error body (a proxy or framework HTML error
// page) into a short single line of text for the request log. Entity and
// comment content never goes through here: it is plain text and is kept
// byte for byte.
func errorExcerpt(data []byte) string {
	text := html.UnescapeString(string(strictPolicy.SanitizeBytes(data)))
	text = strings.Join(strings.Fields(text), " ")
	if r := []rune(text); len(r) > maxExcerpt {
		text = string(r[:maxExcerpt]) + "…"
	}
	return text
}
