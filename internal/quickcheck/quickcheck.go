// Package quickcheck gives fast editor feedback from raw lines without running
// the full parser.
package quickcheck

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	sceneRe    = regexp.MustCompile(`^!(?:scene|slide|frame|section|page)(?:\s|$)`)
	durationRe = regexp.MustCompile(`^!(?:duration|dur|time)\s+(\d+(?:\.\d+)?)(ms|s)?\s*$`)
)

const (
	defaultSceneDuration = 3.0
	fence                = "```"
)

// Issue is a positional problem found by Check. Line is 1-based.
type Issue struct {
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Report summarises a document.
type Report struct {
	HasScenes         bool    `json:"hasScenes"`
	SceneCount        int     `json:"sceneCount"`
	EstimatedDuration float64 `json:"estimatedDuration"`
	Issues            []Issue `json:"issues"`
}

// Check counts scenes, estimates the duration and reports unclosed code
// fences.
func Check(markdown string) Report {
	lines := strings.Split(markdown, "\n")
	r := Report{Issues: []Issue{}}

	var durations []float64
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if sceneRe.MatchString(line) {
			durations = append(durations, defaultSceneDuration)
			continue
		}
		if m := durationRe.FindStringSubmatch(line); m != nil && len(durations) > 0 {
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if m[2] == "ms" {
				v /= 1000
			}
			durations[len(durations)-1] = v
		}
	}
	for _, d := range durations {
		r.EstimatedDuration += d
	}
	r.SceneCount = len(durations)
	r.HasScenes = r.SceneCount > 0

	for i := 0; i < len(lines); i++ {
		if !isFence(lines[i]) {
			continue
		}
		closed := false
		for j := i + 1; j < len(lines); j++ {
			if isFence(lines[j]) {
				closed = true
				i = j
				break
			}
		}
		if !closed {
			r.Issues = append(r.Issues, Issue{
				Line:     i + 1,
				Message:  "Unclosed code block",
				Severity: "error",
			})
			break
		}
	}
	return r
}

func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fence)
}

var (
	openerSuggestions  = []string{"!scene", "!slide", "!frame", "!section", "!page"}
	contentSuggestions = []string{"!text", "!code", "!image", "!terminal", "!chart"}
)

// Suggest proposes directives for the position after the last non-empty
// line of partial: scene openers at the start of the document or after a
// separator, content directives right after a scene opener, nothing
// elsewhere.
func Suggest(partial string) []string {
	lines := strings.Split(partial, "\n")
	last := ""
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			last = l
			break
		}
	}
	switch {
	case last == "" || last == "---":
		return append([]string(nil), openerSuggestions...)
	case sceneRe.MatchString(last):
		return append([]string(nil), contentSuggestions...)
	default:
		return []string{}
	}
}
