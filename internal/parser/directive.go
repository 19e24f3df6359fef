package parser

import (
	"regexp"
	"strings"
)

// Directive is the canonical kind of a `!word` line after alias resolution.
type Directive int

// Canonical directive kinds.
const (
	DirUnknown Directive = iota
	DirScene
	DirChapter
	DirTransition
	DirDuration
	DirText
	DirCode
	DirTerminal
	DirDiff
	DirChart
	DirMockup
	DirCallout
	DirParticles
	DirCamera
	DirPresenter
	DirLayout
	DirImage
	DirVideo
	DirSplit
	DirEmoji
	DirQR
	DirCountdown
	DirProgress
	DirBackground
	DirLocale
	DirVar
	DirExport
	DirLocales
	DirStrings
)

var directiveNames = [...]string{
	DirUnknown:    "unknown",
	DirScene:      "scene",
	DirChapter:    "chapter",
	DirTransition: "transition",
	DirDuration:   "duration",
	DirText:       "text",
	DirCode:       "code",
	DirTerminal:   "terminal",
	DirDiff:       "diff",
	DirChart:      "chart",
	DirMockup:     "mockup",
	DirCallout:    "callout",
	DirParticles:  "particles",
	DirCamera:     "camera",
	DirPresenter:  "presenter",
	DirLayout:     "layout",
	DirImage:      "image",
	DirVideo:      "video",
	DirSplit:      "split",
	DirEmoji:      "emoji",
	DirQR:         "qr",
	DirCountdown:  "countdown",
	DirProgress:   "progress",
	DirBackground: "background",
	DirLocale:     "locale",
	DirVar:        "var",
	DirExport:     "export",
	DirLocales:    "locales",
	DirStrings:    "strings",
}

// String returns the canonical directive name.
func (d Directive) String() string {
	if int(d) < len(directiveNames) {
		return directiveNames[d]
	}
	return directiveNames[DirUnknown]
}

// directiveAliases maps every accepted spelling to its canonical kind.
// Lookups are case-sensitive.
var directiveAliases = map[string]Directive{
	"scene":   DirScene,
	"slide":   DirScene,
	"frame":   DirScene,
	"section": DirScene,
	"page":    DirScene,

	"chapter": DirChapter,
	"marker":  DirChapter,

	"transition": DirTransition,
	"trans":      DirTransition,

	"duration": DirDuration,
	"dur":      DirDuration,
	"time":     DirDuration,

	"text":     DirText,
	"heading":  DirText,
	"title":    DirText,
	"h1":       DirText,
	"subtitle": DirText,

	"code":    DirCode,
	"snippet": DirCode,

	"terminal": DirTerminal,
	"cli":      DirTerminal,
	"shell":    DirTerminal,
	"console":  DirTerminal,

	"diff":    DirDiff,
	"changes": DirDiff,

	"chart": DirChart,
	"graph": DirChart,

	"mockup": DirMockup,
	"device": DirMockup,

	"callout": DirCallout,
	"note":    DirCallout,
	"tip":     DirCallout,

	"particles": DirParticles,
	"fx":        DirParticles,

	"camera": DirCamera,
	"cam":    DirCamera,

	"presenter": DirPresenter,
	"avatar":    DirPresenter,
	"host":      DirPresenter,

	"layout": DirLayout,

	"image":   DirImage,
	"img":     DirImage,
	"picture": DirImage,

	"video": DirVideo,
	"clip":  DirVideo,

	"split":   DirSplit,
	"columns": DirSplit,

	"emoji": DirEmoji,
	"icon":  DirEmoji,

	"qr":     DirQR,
	"qrcode": DirQR,

	"countdown": DirCountdown,
	"timer":     DirCountdown,

	"progress":    DirProgress,
	"progressbar": DirProgress,

	"background": DirBackground,
	"bg":         DirBackground,

	"locale": DirLocale,
	"lang":   DirLocale,

	"var":     DirVar,
	"export":  DirExport,
	"locales": DirLocales,
	"strings": DirStrings,
}

// SceneOpeners lists the spellings that start a scene.
var SceneOpeners = []string{"scene", "slide", "frame", "section", "page"}

var directiveRe = regexp.MustCompile(`^!(\w+)(?:\s+(.*))?$`)

// Lookup resolves a directive word (without the leading !) to its canonical kind.
func Lookup(word string) Directive {
	if d, ok := directiveAliases[word]; ok {
		return d
	}
	return DirUnknown
}

// SplitDirective splits a `!word rest` line. ok is false when the line is not
// a directive.
func SplitDirective(line string) (word, rest string, ok bool) {
	m := directiveRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// IsSceneOpener reports whether line starts a new scene.
func IsSceneOpener(line string) bool {
	word, _, ok := SplitDirective(line)
	return ok && Lookup(word) == DirScene
}

// isBoundary reports whether a sub-block must stop before line: any
// directive or the scene separator.
func isBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == separator {
		return true
	}
	_, _, ok := SplitDirective(trimmed)
	return ok
}
