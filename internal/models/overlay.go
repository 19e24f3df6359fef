package models

import "time"

// Particles is a particle effect layered over the scene.
type Particles struct {
	Type      string `json:"type"`
	Intensity string `json:"intensity"`
	Color     string `json:"color,omitempty"`
}

// Camera is a camera move applied to the whole scene.
type Camera struct {
	Effect    string           `json:"effect"`
	Value     float64          `json:"value"`
	Duration  float64          `json:"duration"`
	Keyframes []CameraKeyframe `json:"keyframes,omitempty"`
}

// CameraKeyframe positions the camera at a scene-relative time.
// X and Y are percentages of the frame.
type CameraKeyframe struct {
	At   float64 `json:"at"`
	Zoom float64 `json:"zoom"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Presenter is a picture-in-picture avatar.
type Presenter struct {
	Src      string `json:"src,omitempty"`
	Name     string `json:"name,omitempty"`
	Position string `json:"position"`
	Size     string `json:"size"`
	Shape    string `json:"shape"`
}

// Callout is a highlighted note box.
type Callout struct {
	Text     string  `json:"text"`
	Position string  `json:"position"`
	Style    string  `json:"style"`
	At       float64 `json:"at,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// TimelineElement is an overlay bounded in time within its scene.
type TimelineElement struct {
	Kind      string  `json:"type"`
	Content   string  `json:"content"`
	At        float64 `json:"at"`
	Duration  float64 `json:"duration"`
	Animation string  `json:"animation"`
	Position  string  `json:"position,omitempty"`
}

// ScriptMetadata is a lightweight description of a script file on disk.
type ScriptMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
