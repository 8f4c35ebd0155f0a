package document

import "strings"

const delimiter = "---"

// Document is one parsed tour source: decoded front matter plus body text.
type Document struct {
	SourceID string
	Meta     map[string]any
	Body     string
}

// Parse decodes a raw source document. The text must begin, after leading
// whitespace, with a `---` delimiter line, followed by the metadata block,
// a closing `---` line, and the body. The returned error is always a
// *MalformedError.
func Parse(sourceID, text string) (*Document, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	open := 0
	for open < len(lines) && strings.TrimSpace(lines[open]) == "" {
		open++
	}
	if open >= len(lines) || strings.TrimSpace(lines[open]) != delimiter {
		return nil, &MalformedError{SourceID: sourceID, Line: open + 1, Wrapped: ErrMissingOpen}
	}

	end := -1
	for i := open + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return nil, &MalformedError{SourceID: sourceID, Wrapped: ErrMissingClose}
	}

	meta := make(map[string]any)
	block := lines[open+1 : end]
	for i := 0; i < len(block); {
		if strings.TrimSpace(block[i]) == "" {
			i++
			continue
		}
		entry, next, err := ScanEntry(block, i)
		if err != nil {
			return nil, &MalformedError{SourceID: sourceID, Line: open + 1 + i + 1, Wrapped: err}
		}
		meta[entry.Key] = entry.Value
		i = next
	}

	body := strings.TrimSpace(strings.Join(lines[end+1:], "\n"))

	return &Document{SourceID: sourceID, Meta: meta, Body: body}, nil
}
