package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/starford/reelmd/internal/models"
)

var (
	varDeclRe  = regexp.MustCompile(`^!var\s+\$?(\w+)\s+(.+)$`)
	varRefRe   = regexp.MustCompile(`\$(\w+)`)
	keyValueRe = regexp.MustCompile(`^(\w+):\s*(.+)$`)
)

const separator = "---"

func newID() string {
	return uuid.NewString()
}

// collectVariables harvests every `!var NAME VALUE` line in the document,
// ignoring scene boundaries. Later declarations win. NAME is letters, digits
// and underscores, the same set a $NAME reference matches; other
// declarations are skipped.
func collectVariables(lines []string) models.Variables {
	vars := make(models.Variables)
	for _, line := range lines {
		m := varDeclRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		vars[m[1]] = strings.TrimSpace(m[2])
	}
	return vars
}

// IsVarDecl reports whether line is a well-formed `!var NAME VALUE`.
func IsVarDecl(line string) bool {
	return varDeclRe.MatchString(strings.TrimSpace(line))
}

// substitute replaces $name references with their values. Unknown names are
// left untouched.
func substitute(line string, vars models.Variables) string {
	if len(vars) == 0 || !strings.Contains(line, "$") {
		return line
	}
	return varRefRe.ReplaceAllStringFunc(line, func(ref string) string {
		if v, ok := vars[ref[1:]]; ok {
			return v
		}
		return ref
	})
}

// parseKeyValue matches a `key: value` line. The value is trimmed and
// unquoted.
func parseKeyValue(line string) (key, value string, ok bool) {
	m := keyValueRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	return m[1], unquote(strings.TrimSpace(m[2])), true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Highlight lists are clamped: a range wider than maxRangeSpan is skipped
// and the list stops growing at maxRangeLines entries.
const (
	maxRangeSpan  = 5000
	maxRangeLines = 5000
)

// expandRanges turns "1,3,5-7" into [1 3 5 6 7]. Malformed and oversized
// parts are skipped.
func expandRanges(list string) []int {
	var out []int
	for _, part := range strings.Split(unquote(strings.TrimSpace(list)), ",") {
		if len(out) >= maxRangeLines {
			break
		}
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, found := strings.Cut(part, "-"); found {
			start, err1 := strconv.Atoi(strings.TrimSpace(lo))
			end, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil || start < 0 || start > end || end-start > maxRangeSpan {
				continue
			}
			for n := start; len(out) < maxRangeLines; n++ {
				out = append(out, n)
				if n == end {
					break
				}
			}
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// floatOr parses s as a float, returning def when s is empty or malformed.
func floatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

// secondsOr parses "2", "2s", "2.5s" or "500ms" into seconds.
func secondsOr(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if ms, ok := strings.CutSuffix(s, "ms"); ok {
		v, err := strconv.ParseFloat(ms, 64)
		if err != nil {
			return def
		}
		return v / 1000
	}
	return floatOr(strings.TrimSuffix(s, "s"), def)
}

func intOr(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if ferr != nil {
			return def
		}
		return int(f)
	}
	return v
}

func boolOr(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	default:
		return def
	}
}

func stringOr(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}

// trimBlankEdges drops leading and trailing blank lines and joins the rest.
func trimBlankEdges(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
