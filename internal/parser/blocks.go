package parser

import (
	"regexp"
	"strings"

	"github.com/starford/reelmd/internal/models"
)

// Sub-block parsers. Each takes the document lines and the index of the first
// line after the directive, and returns its result together with the index of
// the first line it did not consume. A boundary line (directive or separator)
// is never consumed.

var (
	annotationRe = regexp.MustCompile(`^-\s*(\d+):\s*(.+)$`)
	promptRe     = regexp.MustCompile(`^([$>])(?:\s+(.*))?$`)
	chartRowRe   = regexp.MustCompile(`^(.+?):\s*(-?\d+(?:\.\d+)?)(?:\s+(\S+))?\s*$`)
)

const fence = "```"

// readFence collects lines up to the closing fence. An unterminated fence
// runs to the end of the document.
func readFence(lines []string, i int) (string, int) {
	var body []string
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), fence) {
			return strings.Join(body, "\n"), i + 1
		}
		body = append(body, lines[i])
		i++
	}
	return strings.Join(body, "\n"), i
}

func fenceLanguage(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fence) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, fence)), true
}

func parseTextBlock(lines []string, i int, a args) (*models.Text, int) {
	t := newText()
	for k, v := range a.attrs {
		applyTextOption(t, k, v)
	}
	var body []string
	if len(a.positional) > 0 {
		body = append(body, strings.Join(a.positional, " "))
	}
	for i < len(lines) && !isBoundary(lines[i]) {
		line := lines[i]
		if k, v, ok := parseKeyValue(line); ok && applyTextOption(t, k, v) {
			i++
			continue
		}
		body = append(body, strings.TrimRight(line, " \t"))
		i++
	}
	t.Content = trimBlankEdges(body)
	return t, i
}

// applyTextOption reports whether key is a text option. Unknown keys are
// left to be treated as content.
func applyTextOption(t *models.Text, key, value string) bool {
	switch key {
	case "animation":
		t.Animation = value
	case "size":
		t.Size = value
	case "color":
		t.Color = value
	case "fontFamily", "font":
		t.FontFamily = value
	case "stagger":
		t.Stagger = secondsOr(value, t.Stagger)
	case "align":
		t.Align = value
	default:
		return false
	}
	return true
}

func parseCodeBlock(lines []string, i int, a args) (*models.Code, int) {
	c := newCode()
	c.Language = stringOr(a.pos(0), c.Language)
	for k, v := range a.attrs {
		applyCodeOption(c, k, v)
	}
	for i < len(lines) {
		line := lines[i]
		if isBoundary(line) {
			return c, i
		}
		if lang, ok := fenceLanguage(line); ok {
			if lang != "" {
				c.Language = lang
			}
			c.Content, i = readFence(lines, i+1)
			return c, i
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "annotations:" {
			var anns []models.CodeAnnotation
			anns, i = parseAnnotations(lines, i+1)
			c.Annotations = append(c.Annotations, anns...)
			continue
		}
		if k, v, ok := parseKeyValue(trimmed); ok {
			applyCodeOption(c, k, v)
		}
		i++
	}
	return c, i
}

func applyCodeOption(c *models.Code, key, value string) {
	switch key {
	case "highlight":
		c.Highlight = expandRanges(value)
	case "typing":
		c.Typing = boolOr(value, c.Typing)
	case "speed":
		c.Speed = floatOr(value, c.Speed)
	case "fontSize":
		c.FontSize = intOr(strings.TrimSuffix(value, "px"), c.FontSize)
	case "fontFamily", "font":
		c.FontFamily = value
	case "height":
		c.Height = intOr(strings.TrimSuffix(value, "px"), c.Height)
	case "width":
		c.Width = intOr(strings.TrimSuffix(value, "px"), c.Width)
	case "theme":
		c.Theme = value
	case "language", "lang":
		c.Language = value
	}
}

// parseAnnotations reads consecutive `- N: text` lines.
func parseAnnotations(lines []string, i int) ([]models.CodeAnnotation, int) {
	var out []models.CodeAnnotation
	for i < len(lines) {
		m := annotationRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			break
		}
		out = append(out, models.CodeAnnotation{
			Line: intOr(m[1], 0),
			Text: unquote(strings.TrimSpace(m[2])),
		})
		i++
	}
	return out, i
}

func parseTerminalBlock(lines []string, i int, a args) (*models.Terminal, int) {
	t := newTerminal()
	t.Title = stringOr(a.pos(0), t.Title)
	for k, v := range a.attrs {
		applyTerminalOption(t, k, v)
	}

	var (
		cur    *models.TerminalCommand
		output []string
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.Output = trimBlankEdges(output)
		t.Commands = append(t.Commands, *cur)
		cur, output = nil, nil
	}

	for i < len(lines) && !isBoundary(lines[i]) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		switch m := promptRe.FindStringSubmatch(trimmed); {
		case m != nil:
			flush()
			cur = &models.TerminalCommand{Prompt: m[1], Command: strings.TrimSpace(m[2])}
		case cur == nil:
			if k, v, ok := parseKeyValue(trimmed); ok {
				applyTerminalOption(t, k, v)
			}
		default:
			output = append(output, strings.TrimRight(line, " \t"))
		}
		i++
	}
	flush()
	return t, i
}

func applyTerminalOption(t *models.Terminal, key, value string) {
	switch key {
	case "typing":
		t.Typing = boolOr(value, t.Typing)
	case "speed":
		t.Speed = floatOr(value, t.Speed)
	case "title":
		t.Title = value
	case "prompt":
		t.Prompt = value
	}
}

func parseDiffBlock(lines []string, i int, a args) (*models.Diff, int) {
	d := &models.Diff{
		Language: stringOr(a.pos(0), defaultLanguage),
		Filename: a.get("filename", "file"),
		Lines:    []models.DiffLine{},
	}
	for i < len(lines) && !isBoundary(lines[i]) {
		line := strings.TrimRight(lines[i], " \t")
		i++
		if line == "" {
			continue
		}
		switch line[0] {
		case '+':
			d.Lines = append(d.Lines, models.DiffLine{Kind: models.DiffAdd, Content: line[1:]})
		case '-':
			d.Lines = append(d.Lines, models.DiffLine{Kind: models.DiffRemove, Content: line[1:]})
		default:
			d.Lines = append(d.Lines, models.DiffLine{Kind: models.DiffContext, Content: strings.TrimPrefix(line, " ")})
		}
	}
	return d, i
}

func parseChartBlock(lines []string, i int, a args) (*models.Chart, int) {
	c := &models.Chart{
		ChartType: stringOr(a.get("type"), stringOr(a.pos(0), "bar")),
		Title:     a.get("title"),
		Animate:   boolOr(a.get("animate"), true),
		Data:      []models.ChartDataItem{},
	}
	for i < len(lines) && !isBoundary(lines[i]) {
		m := chartRowRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		i++
		if m == nil {
			continue
		}
		c.Data = append(c.Data, models.ChartDataItem{
			Label: unquote(strings.TrimSpace(m[1])),
			Value: floatOr(m[2], 0),
			Color: strings.Trim(m[3], "[]()"),
		})
	}
	return c, i
}

func parseMockupBlock(lines []string, i int, a args) (*models.Mockup, int) {
	m := newMockup()
	m.Device = stringOr(a.get("device"), stringOr(a.pos(0), m.Device))
	m.Background = stringOr(a.get("bg", "background"), m.Background)

	var body []string
	for i < len(lines) && !isBoundary(lines[i]) {
		line := lines[i]
		if lang, ok := fenceLanguage(line); ok {
			m.Content.Type = "code"
			m.Content.Language = stringOr(lang, m.Content.Language)
			m.Content.Value, i = readFence(lines, i+1)
			continue
		}
		i++
		if k, v, ok := parseKeyValue(line); ok && applyMockupOption(&m.Content, k, v) {
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			body = append(body, trimmed)
		}
	}
	if m.Content.Value == "" {
		m.Content.Value = strings.Join(body, "\n")
	}
	return m, i
}

func applyMockupOption(c *models.MockupContent, key, value string) bool {
	switch key {
	case "type":
		c.Type = value
	case "color":
		c.Color = value
	case "size":
		c.Size = value
	case "language", "lang":
		c.Language = value
	case "src", "content":
		c.Value = value
	default:
		return false
	}
	return true
}

// parseCameraBlock reads the directive defaults and any `- at:Ns zoom:Z x:X y:Y`
// keyframe lines that immediately follow.
func parseCameraBlock(lines []string, i int, a args) (*models.Camera, int) {
	c := newCamera()
	c.Effect = stringOr(a.get("effect"), stringOr(a.pos(0), c.Effect))
	c.Value = floatOr(stringOr(a.get("value", "zoom"), a.pos(1)), c.Value)
	c.Duration = secondsOr(a.get("duration"), c.Duration)
	for i < len(lines) {
		rest, ok := strings.CutPrefix(strings.TrimSpace(lines[i]), "- ")
		if !ok {
			break
		}
		ka := parseArgs(rest)
		c.Keyframes = append(c.Keyframes, models.CameraKeyframe{
			At:   secondsOr(ka.get("at", "time"), 0),
			Zoom: floatOr(ka.get("zoom"), 1),
			X:    floatOr(strings.TrimSuffix(ka.get("x"), "%"), 50),
			Y:    floatOr(strings.TrimSuffix(ka.get("y"), "%"), 50),
		})
		i++
	}
	return c, i
}

func parseSplitBlock(lines []string, i int, a args) (*models.Split, int) {
	s := &models.Split{
		Left:  a.get("left"),
		Right: a.get("right"),
		Ratio: floatOr(a.get("ratio"), 0.5),
	}
	for i < len(lines) && !isBoundary(lines[i]) {
		if k, v, ok := parseKeyValue(lines[i]); ok {
			switch k {
			case "left":
				s.Left = v
			case "right":
				s.Right = v
			case "ratio":
				s.Ratio = floatOr(v, s.Ratio)
			}
		}
		i++
	}
	return s, i
}
