// Package models defines the domain types produced by the scene markdown parser.
package models

import "encoding/json"

// SceneType identifies which content payload a scene carries.
type SceneType string

// Scene types.
const (
	SceneText      SceneType = "text"
	SceneCode      SceneType = "code"
	SceneImage     SceneType = "image"
	SceneVideo     SceneType = "video"
	SceneSplit     SceneType = "split"
	SceneTerminal  SceneType = "terminal"
	SceneDiff      SceneType = "diff"
	SceneChart     SceneType = "chart"
	SceneMockup    SceneType = "mockup"
	SceneQR        SceneType = "qr"
	SceneCountdown SceneType = "countdown"
	SceneProgress  SceneType = "progress"
	SceneEmoji     SceneType = "emoji"
)

// Scene is one timed unit of the output video.
//
// Content is a closed sum type: exactly one payload is attached and the
// scene's type is derived from it. Overlays (particles, camera, presenter,
// callout, timeline elements) are independent of the type.
type Scene struct {
	ID                 string
	Line               int // 1-based line of the scene opener
	Duration           float64
	Transition         string
	TransitionDuration float64
	Background         string
	Chapter            string
	Locale             string
	Layout             string
	Content            Content

	Particles        *Particles
	Camera           *Camera
	Presenter        *Presenter
	Callout          *Callout
	TimelineElements []TimelineElement
}

// Type returns the scene type selected by the content payload.
func (s Scene) Type() SceneType {
	if s.Content == nil {
		return SceneText
	}
	return s.Content.SceneType()
}

// sceneJSON is the wire shape: the payload is keyed by the scene type.
type sceneJSON struct {
	ID                 string            `json:"id"`
	Type               SceneType         `json:"type"`
	Line               int               `json:"line,omitempty"`
	Duration           float64           `json:"duration"`
	Transition         string            `json:"transition,omitempty"`
	TransitionDuration float64           `json:"transitionDuration,omitempty"`
	Background         string            `json:"background"`
	Chapter            string            `json:"chapter,omitempty"`
	Locale             string            `json:"locale,omitempty"`
	Layout             string            `json:"layout,omitempty"`
	Text               *Text             `json:"text,omitempty"`
	Code               *Code             `json:"code,omitempty"`
	Image              *Image            `json:"image,omitempty"`
	Video              *Video            `json:"video,omitempty"`
	Split              *Split            `json:"split,omitempty"`
	Terminal           *Terminal         `json:"terminal,omitempty"`
	Diff               *Diff             `json:"diff,omitempty"`
	Chart              *Chart            `json:"chart,omitempty"`
	Mockup             *Mockup           `json:"mockup,omitempty"`
	QR                 *QR               `json:"qr,omitempty"`
	Countdown          *Countdown        `json:"countdown,omitempty"`
	Progress           *Progress         `json:"progress,omitempty"`
	Emoji              *Emoji            `json:"emoji,omitempty"`
	Particles          *Particles        `json:"particles,omitempty"`
	Camera             *Camera           `json:"camera,omitempty"`
	Presenter          *Presenter        `json:"presenter,omitempty"`
	Callout            *Callout          `json:"callout,omitempty"`
	TimelineElements   []TimelineElement `json:"timelineElements,omitempty"`
}

// MarshalJSON flattens the payload under a key named after the scene type.
func (s Scene) MarshalJSON() ([]byte, error) {
	out := sceneJSON{
		ID:                 s.ID,
		Type:               s.Type(),
		Line:               s.Line,
		Duration:           s.Duration,
		Transition:         s.Transition,
		TransitionDuration: s.TransitionDuration,
		Background:         s.Background,
		Chapter:            s.Chapter,
		Locale:             s.Locale,
		Layout:             s.Layout,
		Particles:          s.Particles,
		Camera:             s.Camera,
		Presenter:          s.Presenter,
		Callout:            s.Callout,
		TimelineElements:   s.TimelineElements,
	}
	switch c := s.Content.(type) {
	case *Text:
		out.Text = c
	case *Code:
		out.Code = c
	case *Image:
		out.Image = c
	case *Video:
		out.Video = c
	case *Split:
		out.Split = c
	case *Terminal:
		out.Terminal = c
	case *Diff:
		out.Diff = c
	case *Chart:
		out.Chart = c
	case *Mockup:
		out.Mockup = c
	case *QR:
		out.QR = c
	case *Countdown:
		out.Countdown = c
	case *Progress:
		out.Progress = c
	case *Emoji:
		out.Emoji = c
	}
	return json.Marshal(out)
}

// Chapter is a named marker at an absolute timeline offset (seconds).
type Chapter struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Time  float64 `json:"time"`
}

// Variables maps variable names (without the leading $) to their values.
type Variables map[string]string

// Document is the full output of a parse.
type Document struct {
	Scenes    []Scene   `json:"scenes"`
	Chapters  []Chapter `json:"chapters"`
	Variables Variables `json:"variables"`
}

// TotalDuration returns the sum of all scene durations.
func (d Document) TotalDuration() float64 {
	var total float64
	for _, s := range d.Scenes {
		total += s.Duration
	}
	return total
}
