// Package validator reports semantic problems in scene markdown.
//
// Parsing is lenient; this package is where bad values surface, as data.
package validator

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/starford/reelmd/internal/models"
	"github.com/starford/reelmd/internal/parser"
)

// Severity is the level of a diagnostic.
type Severity string

// Severities. Only errors make a document invalid.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one reported problem. Line is 1-based; zero means the problem
// is not tied to a line.
type Diagnostic struct {
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Line       int      `json:"line,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Result is the outcome of Validate. Scenes is the parse the diagnostics
// were computed from.
type Result struct {
	Valid         bool           `json:"valid"`
	Errors        []Diagnostic   `json:"errors"`
	Warnings      []Diagnostic   `json:"warnings"`
	Scenes        []models.Scene `json:"scenes"`
	SceneCount    int            `json:"sceneCount"`
	TotalDuration float64        `json:"totalDuration"`
}

// parseFull is replaced in tests to exercise the recovery path.
var parseFull = parser.ParseFull

// Validate parses markdown and checks the result. A document is valid when
// it has at least one scene and no errors.
func Validate(markdown string) Result {
	doc, err := safeParse(markdown)
	if err != nil {
		r := &report{}
		r.errorf(0, "", "Failed to parse markdown: %v", err)
		return r.result(models.Document{})
	}
	return ValidateDocument(doc, markdown)
}

// ValidateDocument checks a document already parsed from markdown. The raw
// text is still needed for the directive spelling checks.
func ValidateDocument(doc models.Document, markdown string) Result {
	r := &report{}
	if len(doc.Scenes) == 0 {
		r.warnf(0, "Start a scene with !scene, then add content such as !text", "No scenes found")
	}
	for i, s := range doc.Scenes {
		checkScene(r, i+1, s)
	}
	if total := doc.TotalDuration(); total > MaxTotalDuration {
		r.warnf(0, "Consider splitting the video into parts",
			"Total duration is %gs, longer than %ds", total, MaxTotalDuration)
	}
	checkDirectives(r, markdown)

	return r.result(doc)
}

func safeParse(markdown string) (doc models.Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return parseFull(markdown), nil
}

type report struct {
	errors   []Diagnostic
	warnings []Diagnostic
}

func (r *report) errorf(line int, suggestion, format string, a ...any) {
	r.errors = append(r.errors, Diagnostic{
		Severity:   SeverityError,
		Message:    fmt.Sprintf(format, a...),
		Line:       line,
		Suggestion: suggestion,
	})
}

func (r *report) warnf(line int, suggestion, format string, a ...any) {
	r.warnings = append(r.warnings, Diagnostic{
		Severity:   SeverityWarning,
		Message:    fmt.Sprintf(format, a...),
		Line:       line,
		Suggestion: suggestion,
	})
}

func (r *report) result(doc models.Document) Result {
	res := Result{
		Valid:         len(r.errors) == 0 && len(doc.Scenes) > 0,
		Errors:        r.errors,
		Warnings:      r.warnings,
		Scenes:        doc.Scenes,
		SceneCount:    len(doc.Scenes),
		TotalDuration: doc.TotalDuration(),
	}
	if res.Scenes == nil {
		res.Scenes = []models.Scene{}
	}
	if res.Errors == nil {
		res.Errors = []Diagnostic{}
	}
	if res.Warnings == nil {
		res.Warnings = []Diagnostic{}
	}
	return res
}

// oneOf reports an error when value is set and not in valid.
func (r *report) oneOf(n, line int, what, value string, valid []string) {
	in := make([]any, len(valid))
	for i, v := range valid {
		in[i] = v
	}
	if err := validation.Validate(value, validation.In(in...)); err != nil {
		r.errorf(line, "Valid values: "+strings.Join(valid, ", "),
			"Scene %d: invalid %s %q", n, what, value)
	}
}

func checkScene(r *report, n int, s models.Scene) {
	line := s.Line

	switch {
	case s.Duration <= 0:
		r.errorf(line, "Use a positive number of seconds, e.g. !duration 3",
			"Scene %d: duration must be positive, got %g", n, s.Duration)
	case s.Duration > MaxSceneDuration:
		r.warnf(line, "Consider splitting it into several scenes",
			"Scene %d: duration %gs is longer than %ds", n, s.Duration, MaxSceneDuration)
	}
	r.oneOf(n, line, "transition", s.Transition, Transitions)

	switch c := s.Content.(type) {
	case nil:
		r.warnf(line, "Add content such as !text", "Scene %d: text content is empty", n)
	case *models.Text:
		if strings.TrimSpace(c.Content) == "" {
			r.warnf(line, "Add text lines after !text", "Scene %d: text content is empty", n)
		}
		r.oneOf(n, line, "font family", c.FontFamily, FontFamilies)
		r.oneOf(n, line, "text animation", c.Animation, TextAnimations)
	case *models.Code:
		if strings.TrimSpace(c.Content) == "" {
			r.warnf(line, "Add a fenced ``` block after !code", "Scene %d: code content is empty", n)
		}
		r.oneOf(n, line, "font family", c.FontFamily, FontFamilies)
	case *models.Chart:
		r.oneOf(n, line, "chart type", c.ChartType, ChartTypes)
		if len(c.Data) == 0 {
			r.warnf(line, "Add rows such as `Label: 10`", "Scene %d: chart has no data", n)
		}
	case *models.Mockup:
		r.oneOf(n, line, "device type", c.Device, DeviceTypes)
	case *models.Image:
		if c.Src == "" {
			r.errorf(line, "Use !image path/to/file.jpg", "Scene %d: image is missing src", n)
		}
	case *models.Video:
		if c.Src == "" {
			r.errorf(line, "Use !video path/to/clip.mp4", "Scene %d: video is missing src", n)
		}
	case *models.QR:
		checkQR(r, n, line, c)
	case *models.Emoji:
		r.oneOf(n, line, "emoji animation", c.Animation, EmojiAnimations)
	case *models.Countdown:
		r.oneOf(n, line, "countdown style", c.Style, CountdownStyles)
	case *models.Progress:
		checkProgress(r, n, line, c)
	}

	if s.Particles != nil {
		r.oneOf(n, line, "particle type", s.Particles.Type, ParticleTypes)
	}
	if s.Camera != nil {
		r.oneOf(n, line, "camera effect", s.Camera.Effect, CameraEffects)
	}
	if s.Presenter != nil {
		r.oneOf(n, line, "presenter position", s.Presenter.Position, PresenterPositions)
	}
}

func checkQR(r *report, n, line int, q *models.QR) {
	if q.URL == "" {
		r.errorf(line, "Use !qr url:https://example.com", "Scene %d: QR code is missing url", n)
		return
	}
	if err := validation.Validate(q.URL, is.RequestURL); err != nil {
		r.errorf(line, "Use an absolute URL such as https://example.com",
			"Scene %d: invalid QR url %q", n, q.URL)
	}
}

func checkProgress(r *report, n, line int, p *models.Progress) {
	r.oneOf(n, line, "progress style", p.Style, ProgressStyles)
	if p.Max <= 0 {
		r.errorf(line, "Use a positive max, e.g. max:100", "Scene %d: progress max must be positive", n)
		return
	}
	if err := validation.Validate(p.Value, validation.Min(0.0), validation.Max(p.Max)); err != nil {
		r.errorf(line, fmt.Sprintf("Use a value between 0 and %g", p.Max),
			"Scene %d: progress value %g is out of range", n, p.Value)
	}
}

// checkDirectives scans raw lines for misspelled or unknown directive words.
// It does not depend on the parse result.
func checkDirectives(r *report, markdown string) {
	inFence := false
	for i, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		word, _, ok := parser.SplitDirective(line)
		if !ok {
			continue
		}
		if fix, ok := typos[word]; ok {
			r.warnf(i+1, fmt.Sprintf("Did you mean !%s?", fix), "Unknown directive !%s", word)
			continue
		}
		if inFence {
			continue
		}
		switch parser.Lookup(word) {
		case parser.DirUnknown:
			r.warnf(i+1, "", "Unknown directive !%s is ignored", word)
		case parser.DirVar:
			if !parser.IsVarDecl(line) {
				r.warnf(i+1, "Variable names may contain only letters, digits and _",
					"Variable declaration is ignored: %s", line)
			}
		}
	}
}
