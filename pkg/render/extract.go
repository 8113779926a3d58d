package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy = bluemonday.StrictPolicy()

	// Document head carries no visible text, but its title and style nodes
	// survive tag stripping as text runs. Drop the whole element up front.
	headPattern = regexp.MustCompile(`(?is)<head\b.*?</head>`)
)

// ExtractText strips all markup from an HTML render and normalizes the
// remaining visible text: one line per non-empty text run. It implements the
// cross-target equivalence check between the HTML output and the
// word-processor paragraph tree.
func ExtractText(htmlInput string) string {
	// Block boundaries must survive as line breaks before tags are dropped,
	// or adjacent paragraphs would fuse into one line.
	replacer := strings.NewReplacer(
		"</p>", "\n", "</h1>", "\n", "</h2>", "\n", "</h3>", "\n",
		"</li>", "\n", "</td>", "\n", "</tr>", "\n", "</div>", "\n",
		"<br>", "\n", "<br/>", "\n", "<br />", "\n",
	)
	stripped := stripPolicy.Sanitize(replacer.Replace(headPattern.ReplaceAllString(htmlInput, "")))
	stripped = html.UnescapeString(stripped)

	var lines []string
	for _, line := range strings.Split(stripped, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
