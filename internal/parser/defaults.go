package parser

import "github.com/starford/reelmd/internal/models"

// SceneColors is the background palette cycled by scene index.
var SceneColors = []string{
	"#1a1a2e",
	"#16213e",
	"#0f3460",
	"#533483",
	"#2d4059",
	"#222831",
	"#1b262c",
	"#2c3e50",
}

const (
	defaultDuration           = 3.0
	defaultTransitionDuration = 0.5
	defaultLayout             = "center"
	defaultLanguage           = "plaintext"
	defaultElementDuration    = 2.0
)

func newText() *models.Text {
	return &models.Text{
		Animation:  "fadeIn",
		Size:       "lg",
		Align:      "center",
		Color:      "#ffffff",
		FontFamily: "serif",
	}
}

func newCode() *models.Code {
	return &models.Code{
		Language:   defaultLanguage,
		Speed:      30,
		FontSize:   16,
		FontFamily: "mono",
		Theme:      "dark",
	}
}

func newTerminal() *models.Terminal {
	return &models.Terminal{
		Title:    "Terminal",
		Prompt:   "$",
		Typing:   true,
		Speed:    50,
		Commands: []models.TerminalCommand{},
	}
}

func newMockup() *models.Mockup {
	return &models.Mockup{
		Device:     "iphone",
		Background: "#1a1a2e",
		Content: models.MockupContent{
			Type:  "text",
			Color: "#ffffff",
			Size:  "md",
		},
	}
}

func newCamera() *models.Camera {
	return &models.Camera{Effect: "zoom", Value: 1.5, Duration: 1}
}
