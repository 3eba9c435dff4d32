// Package formatting converts markdown inline spans into the HTML markup
// consumed by the layout engine. Handles bold, italic, links, and emoji removal.
package formatting

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// linkColor is the fixed color applied to hyperlinks in rendered output.
const linkColor = "blue"

var (
	// emojiPattern matches the decoration glyphs commonly used in contact lines.
	emojiPattern = regexp.MustCompile(`[📧🔗📄💼🎓🏆📍]`)

	// linkPattern matches [text](url) spans.
	linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// boldPattern matches **text** spans non-greedily so multiple bolds on
	// one line stay separate.
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

	// italicPattern matches single-asterisk spans while excluding asterisks
	// that belong to a ** pair. The lookarounds are why this one needs
	// regexp2 instead of the standard library.
	italicPattern = regexp2.MustCompile(`(?<!\*)\*(?!\*)(.+?)(?<!\*)\*(?!\*)`, regexp2.None)
)

// ConvertInline converts markdown inline formatting to HTML tags.
//
// Supported conversions:
//   - **bold text** -> <b>bold text</b>
//   - *italic text* -> <i>italic text</i>
//   - [link text](url) -> <a href="url" style="color: blue">link text</a>
//   - Emoji symbols (📧🔗) are removed
//
// Links are processed before bold conversion so URL characters are not
// reinterpreted as bold markers. Empty input is returned unchanged.
func ConvertInline(text string) string {
	if text == "" {
		return text
	}

	// Remove emoji symbols (common in contact info)
	text = emojiPattern.ReplaceAllString(text, "")

	// Links [text](url)
	text = linkPattern.ReplaceAllString(text, `<a href="${2}" style="color: `+linkColor+`">${1}</a>`)

	// Bold **text**
	text = boldPattern.ReplaceAllString(text, "<b>${1}</b>")

	// Italic *text*, skipping asterisks already consumed by bold pairs
	if converted, err := italicPattern.Replace(text, "<i>$1</i>", -1, -1); err == nil {
		text = converted
	}

	return text
}

// ContactLine formats contact items into a single block with <br/> separators
// for vertical stacking. Empty items are dropped; each surviving item goes
// through ConvertInline.
func ContactLine(items []string) string {
	if len(items) == 0 {
		return ""
	}

	formatted := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		formatted = append(formatted, ConvertInline(item))
	}

	return strings.Join(formatted, "<br/>")
}
