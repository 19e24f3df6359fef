package parser

import (
	"strings"

	"github.com/starford/reelmd/internal/models"
)

// state carries the accumulators shared by consecutive scenes of one parse.
// It is owned by a single ParseFull call.
type state struct {
	lines      []string
	colorIndex int
	offset     float64 // start time of the scene being parsed
	chapters   []models.Chapter
	scenes     []models.Scene
}

// parseScene parses the scene opened at lines[start]. It returns the scene and
// the index of the next scene opener, separator or end of input.
func (st *state) parseScene(start int) (models.Scene, int) {
	scene := models.Scene{
		ID:         newID(),
		Line:       start + 1,
		Duration:   defaultDuration,
		Background: SceneColors[st.colorIndex%len(SceneColors)],
	}
	_, rest, _ := SplitDirective(st.lines[start])
	st.applyOpener(&scene, parseArgs(rest))

	i := start + 1
	for i < len(st.lines) {
		line := st.lines[i]
		if strings.TrimSpace(line) == separator || IsSceneOpener(line) {
			break
		}
		word, rest, ok := SplitDirective(line)
		if !ok {
			i++
			continue
		}
		i = st.applyDirective(&scene, Lookup(word), rest, i)
	}
	return scene, i
}

// applyOpener applies inline attributes of the opener line, e.g.
// `!scene duration:5 bg:#000 transition:fade`.
func (st *state) applyOpener(scene *models.Scene, a args) {
	if v := a.get("duration", "dur"); v != "" {
		scene.Duration = secondsOr(v, scene.Duration)
	}
	if v := a.get("bg", "background"); v != "" {
		scene.Background = v
	}
	if v := a.get("transition"); v != "" {
		scene.Transition = v
		scene.TransitionDuration = defaultTransitionDuration
	}
	if v := a.get("layout"); v != "" {
		scene.Layout = v
	}
	if v := a.get("locale", "lang"); v != "" {
		scene.Locale = v
	}
	if v := a.get("chapter"); v != "" {
		st.addChapter(scene, v)
	}
}

func (st *state) addChapter(scene *models.Scene, title string) {
	scene.Chapter = title
	st.chapters = append(st.chapters, models.Chapter{
		ID:    newID(),
		Title: title,
		Time:  st.offset,
	})
}

// applyDirective handles the directive at lines[i] and returns the index of
// the next line to examine.
func (st *state) applyDirective(scene *models.Scene, d Directive, rest string, i int) int {
	a := parseArgs(rest)
	next := i + 1

	switch d {
	case DirChapter:
		title, ok := quotedText(rest)
		if !ok {
			title = rest
		}
		if title != "" {
			st.addChapter(scene, title)
		}

	case DirTransition:
		scene.Transition = stringOr(a.pos(0), a.get("type", "name"))
		scene.TransitionDuration = secondsOr(stringOr(a.get("duration"), a.pos(1)), defaultTransitionDuration)

	case DirDuration:
		scene.Duration = secondsOr(stringOr(a.pos(0), a.get("value")), defaultDuration)

	case DirText:
		if at := a.get("at"); at != "" {
			if content, ok := quotedText(rest); ok {
				scene.TimelineElements = append(scene.TimelineElements, models.TimelineElement{
					Kind:      "text",
					Content:   content,
					At:        secondsOr(at, 0),
					Duration:  secondsOr(a.get("duration"), defaultElementDuration),
					Animation: stringOr(a.get("animation"), "fadeIn"),
					Position:  a.get("position"),
				})
				return next
			}
		}
		scene.Content, next = parseTextBlock(st.lines, next, a)

	case DirCode:
		scene.Content, next = parseCodeBlock(st.lines, next, a)

	case DirTerminal:
		scene.Content, next = parseTerminalBlock(st.lines, next, a)

	case DirDiff:
		scene.Content, next = parseDiffBlock(st.lines, next, a)

	case DirChart:
		scene.Content, next = parseChartBlock(st.lines, next, a)

	case DirMockup:
		scene.Content, next = parseMockupBlock(st.lines, next, a)

	case DirSplit:
		scene.Content, next = parseSplitBlock(st.lines, next, a)

	case DirCamera:
		scene.Camera, next = parseCameraBlock(st.lines, next, a)

	case DirCallout:
		text, ok := quotedText(rest)
		if !ok {
			text = strings.Join(a.positional, " ")
		}
		scene.Callout = &models.Callout{
			Text:     text,
			Position: stringOr(a.get("position", "pos"), "top-right"),
			Style:    stringOr(a.get("style", "type"), "info"),
			At:       secondsOr(a.get("at"), 0),
			Duration: secondsOr(a.get("duration"), 0),
		}

	case DirParticles:
		scene.Particles = &models.Particles{
			Type:      stringOr(a.get("type"), stringOr(a.pos(0), "confetti")),
			Intensity: stringOr(a.get("intensity"), stringOr(a.pos(1), "medium")),
			Color:     a.get("color"),
		}

	case DirPresenter:
		scene.Presenter = &models.Presenter{
			Src:      stringOr(a.get("src"), a.pos(0)),
			Name:     a.get("name"),
			Position: stringOr(a.get("position", "pos"), "bottom-right"),
			Size:     stringOr(a.get("size"), "md"),
			Shape:    stringOr(a.get("shape"), "circle"),
		}

	case DirLayout:
		scene.Layout = stringOr(a.pos(0), stringOr(a.get("type"), defaultLayout))

	case DirImage:
		scene.Content = &models.Image{
			Src:       stringOr(a.get("src"), a.pos(0)),
			Alt:       a.get("alt"),
			Caption:   a.get("caption"),
			Fit:       stringOr(a.get("fit"), "cover"),
			Animation: stringOr(a.get("animation"), "kenBurns"),
		}

	case DirVideo:
		scene.Content = &models.Video{
			Src:    stringOr(a.get("src"), a.pos(0)),
			Muted:  boolOr(a.get("muted"), true),
			Loop:   boolOr(a.get("loop"), false),
			Start:  secondsOr(a.get("start"), 0),
			Volume: floatOr(a.get("volume"), 1),
		}

	case DirEmoji:
		scene.Content = &models.Emoji{
			Emoji:     stringOr(a.pos(0), "✨"),
			Animation: stringOr(a.get("animation"), "bounce"),
			Size:      stringOr(a.get("size"), "xl"),
		}

	case DirQR:
		scene.Content = &models.QR{
			URL:        stringOr(a.get("url"), a.pos(0)),
			Label:      a.get("label"),
			Size:       intOr(a.get("size"), 256),
			Color:      stringOr(a.get("color"), "#000000"),
			Background: stringOr(a.get("bg", "background"), "#ffffff"),
		}

	case DirCountdown:
		scene.Content = &models.Countdown{
			From:  intOr(stringOr(a.get("from"), a.pos(0)), 10),
			Style: stringOr(a.get("style"), "digital"),
			Label: a.get("label"),
		}

	case DirProgress:
		scene.Content = &models.Progress{
			Value: floatOr(stringOr(a.get("value"), a.pos(0)), 0),
			Max:   floatOr(a.get("max"), 100),
			Style: stringOr(a.get("style"), "bar"),
			Label: a.get("label"),
			Color: stringOr(a.get("color"), "#4ade80"),
		}

	case DirBackground:
		if v := unquote(rest); v != "" {
			scene.Background = v
		}

	case DirLocale:
		scene.Locale = a.pos(0)

	case DirScene, DirVar, DirExport, DirLocales, DirStrings, DirUnknown:
		// inert inside a scene
	}
	return next
}
