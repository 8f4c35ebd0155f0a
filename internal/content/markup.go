package content

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[a-zA-Z][^>]*>`)

// NormalizeMarkup prepares body or HUD text for the panel layout engine.
// Text that already contains an element-like tag passes through unchanged.
// Otherwise double newlines split paragraphs and single newlines within a
// paragraph become soft breaks, each paragraph emitted as a <p> container.
// Empty input yields empty output, not an empty container.
func NormalizeMarkup(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if tagPattern.MatchString(text) {
		return text
	}

	var b strings.Builder
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(para, "\n", "<br/>"))
		b.WriteString("</p>")
	}
	return b.String()
}
