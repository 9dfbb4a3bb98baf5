package template

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// blockBoundary matches tags that end a visual line: explicit breaks plus
// closing block-level elements.
var blockBoundary = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>|</h[1-6]>|</tr>`)

// multiNewline collapses runs of blank lines left behind by adjacent block
// boundaries.
var multiNewline = regexp.MustCompile(`\n{3,}`)

// stripPolicy removes every tag, keeping only text content.
var stripPolicy = bluemonday.StrictPolicy()

// HTMLToText derives a readable plain-text rendition of an HTML fragment
// for the text/plain alternative part. The rule set is deliberately
// minimal and documented rather than a full layout engine:
//
//   - <br> and closing block tags (</p>, </div>, </li>, </h1>..</h6>,
//     </tr>) become one newline each;
//   - all remaining markup is stripped;
//   - character entities (&amp;, &lt;, &gt;, &quot;, &#39;, &nbsp;, ...)
//     are decoded;
//   - runs of three or more newlines collapse to two.
//
// Text order is preserved exactly as it appears in the HTML source.
func HTMLToText(htmlBody string) string {
	text := blockBoundary.ReplaceAllString(htmlBody, "\n")
	text = stripPolicy.Sanitize(text)
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, " ", " ")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimRight(text, "\n ")
}
