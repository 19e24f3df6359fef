// Package timeline derives absolute time positions from parsed scenes.
package timeline

import (
	"strings"
	"unicode/utf8"

	"github.com/starford/reelmd/internal/models"
)

// Segment is one scene's span on the timeline, in seconds.
type Segment struct {
	SceneID   string           `json:"sceneId"`
	Index     int              `json:"index"`
	Type      models.SceneType `json:"type"`
	StartTime float64          `json:"startTime"`
	EndTime   float64          `json:"endTime"`
	Duration  float64          `json:"duration"`
	Color     string           `json:"color"`
	Label     string           `json:"label"`
	Chapter   string           `json:"chapter,omitempty"`
}

// Timeline is the ordered list of segments and the total duration.
type Timeline struct {
	Segments      []Segment `json:"segments"`
	TotalDuration float64   `json:"totalDuration"`
}

// Position locates a time within a scene.
type Position struct {
	Scene     models.Scene `json:"scene"`
	Index     int          `json:"index"`
	SceneTime float64      `json:"sceneTime"`
}

var typeColors = map[models.SceneType]string{
	models.SceneText:      "#6366f1",
	models.SceneCode:      "#22c55e",
	models.SceneImage:     "#f59e0b",
	models.SceneVideo:     "#ef4444",
	models.SceneSplit:     "#14b8a6",
	models.SceneTerminal:  "#64748b",
	models.SceneDiff:      "#84cc16",
	models.SceneChart:     "#3b82f6",
	models.SceneMockup:    "#a855f7",
	models.SceneQR:        "#0ea5e9",
	models.SceneCountdown: "#f97316",
	models.SceneProgress:  "#4ade80",
	models.SceneEmoji:     "#ec4899",
}

const labelMax = 24

// Build lays the scenes end to end starting at zero.
func Build(scenes []models.Scene) Timeline {
	tl := Timeline{Segments: make([]Segment, 0, len(scenes))}
	var t float64
	for i, s := range scenes {
		tl.Segments = append(tl.Segments, Segment{
			SceneID:   s.ID,
			Index:     i,
			Type:      s.Type(),
			StartTime: t,
			EndTime:   t + s.Duration,
			Duration:  s.Duration,
			Color:     typeColors[s.Type()],
			Label:     Label(s),
			Chapter:   s.Chapter,
		})
		t += s.Duration
	}
	tl.TotalDuration = t
	return tl
}

// SceneAt returns the scene playing at time t. A scene covers [start, end);
// t equal to the total duration resolves to the last scene. ok is false when
// t is outside [0, total] or there are no scenes.
func SceneAt(scenes []models.Scene, t float64) (Position, bool) {
	if len(scenes) == 0 || t < 0 {
		return Position{}, false
	}
	var start float64
	for i, s := range scenes {
		end := start + s.Duration
		if t < end {
			return Position{Scene: s, Index: i, SceneTime: t - start}, true
		}
		start = end
	}
	if t == start {
		last := len(scenes) - 1
		return Position{Scene: scenes[last], Index: last, SceneTime: scenes[last].Duration}, true
	}
	return Position{}, false
}

// Label is a short human-readable summary of a scene.
func Label(s models.Scene) string {
	if s.Chapter != "" {
		return s.Chapter
	}
	var summary string
	switch c := s.Content.(type) {
	case *models.Text:
		summary = firstLine(c.Content)
	case *models.Code:
		summary = c.Language
	case *models.Terminal:
		if len(c.Commands) > 0 {
			summary = c.Commands[0].Prompt + " " + c.Commands[0].Command
		} else {
			summary = c.Title
		}
	case *models.Diff:
		summary = stringOr(c.Filename, c.Language)
	case *models.Chart:
		summary = stringOr(c.Title, c.ChartType+" chart")
	case *models.Image:
		summary = stringOr(c.Caption, c.Src)
	case *models.Video:
		summary = c.Src
	case *models.Mockup:
		summary = c.Device
	case *models.QR:
		summary = stringOr(c.Label, c.URL)
	case *models.Countdown:
		summary = stringOr(c.Label, "countdown")
	case *models.Progress:
		summary = stringOr(c.Label, "progress")
	case *models.Emoji:
		summary = c.Emoji
	case *models.Split:
		summary = firstLine(c.Left)
	}
	if summary == "" {
		summary = string(s.Type())
	}
	return truncate(summary, labelMax)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

func stringOr(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
