package document

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Entry is one decoded metadata assignment.
type Entry struct {
	Key   string
	Value any
}

// ScanEntry decodes the metadata entry starting at lines[i] and returns the
// entry together with the index of the first line it did not consume. It is a
// pure function over the line slice; callers are expected to skip blank lines
// themselves.
//
// A value of exactly `|` or `>` introduces a block scalar: all following
// lines with positive indentation (plus interior blank lines) belong to the
// block. Literal blocks keep newlines; folded blocks collapse all whitespace
// runs to single spaces.
func ScanEntry(lines []string, i int) (Entry, int, error) {
	line := lines[i]
	sep := strings.Index(line, ":")
	if sep < 0 {
		return Entry{}, i, ErrInvalidEntry
	}

	key := strings.TrimSpace(line[:sep])
	raw := strings.TrimSpace(line[sep+1:])

	switch raw {
	case "|", ">":
		content, next := scanBlock(lines, i+1)
		if raw == "|" {
			return Entry{Key: key, Value: strings.Join(content, "\n")}, next, nil
		}
		folded := strings.Join(strings.Fields(strings.Join(content, " ")), " ")
		return Entry{Key: key, Value: folded}, next, nil
	default:
		return Entry{Key: key, Value: coerceScalar(key, raw)}, i + 1, nil
	}
}

// scanBlock collects the indented lines of a block scalar starting at i.
// Interior blank lines are preserved as empty lines; trailing blanks are
// dropped. Returned lines are stripped of their indentation.
func scanBlock(lines []string, i int) ([]string, int) {
	var content []string
	next := i
	for next < len(lines) {
		line := lines[next]
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.TrimSpace(line) == "":
			content = append(content, "")
		case len(trimmed) < len(line):
			content = append(content, trimmed)
		default:
			// Unindented non-blank line ends the block.
			return trimTrailingBlanks(content), next
		}
		next++
	}
	return trimTrailingBlanks(content), next
}

func trimTrailingBlanks(content []string) []string {
	for len(content) > 0 && content[len(content)-1] == "" {
		content = content[:len(content)-1]
	}
	return content
}

// coerceScalar applies the value coercion rules in order: strict JSON for
// bracketed values, quote stripping, boolean literals, finite numbers, and
// finally the raw string.
func coerceScalar(key, raw string) any {
	if raw == "" {
		return ""
	}

	if raw[0] == '[' || raw[0] == '{' {
		var v any
		err := json.Unmarshal([]byte(raw), &v)
		if err == nil {
			return v
		}
		logger().Warn("structured value failed to parse, keeping raw string",
			"key", key, "value", raw, "err", err)
		return raw
	}

	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return raw[1 : len(raw)-1]
		}
	}

	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}

	return raw
}
