package models

// Content is the type-specific payload of a scene. The set of
// implementations is closed to this package.
type Content interface {
	SceneType() SceneType
	isContent()
}

// Text is a block of animated text.
type Text struct {
	Content    string  `json:"content"`
	Animation  string  `json:"animation"`
	Size       string  `json:"size"`
	Align      string  `json:"align"`
	Color      string  `json:"color"`
	FontFamily string  `json:"fontFamily"`
	Stagger    float64 `json:"stagger,omitempty"`
}

// Code is a fenced source listing with optional highlights and annotations.
type Code struct {
	Content     string           `json:"content"`
	Language    string           `json:"language"`
	Highlight   []int            `json:"highlight,omitempty"`
	Annotations []CodeAnnotation `json:"annotations,omitempty"`
	Typing      bool             `json:"typing"`
	Speed       float64          `json:"speed"`
	FontSize    int              `json:"fontSize"`
	FontFamily  string           `json:"fontFamily"`
	Theme       string           `json:"theme"`
	Height      int              `json:"height,omitempty"`
	Width       int              `json:"width,omitempty"`
}

// CodeAnnotation attaches a note to a 1-based source line.
type CodeAnnotation struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Image is a full-frame still image.
type Image struct {
	Src       string `json:"src"`
	Alt       string `json:"alt,omitempty"`
	Caption   string `json:"caption,omitempty"`
	Fit       string `json:"fit"`
	Animation string `json:"animation"`
}

// Video is an embedded clip.
type Video struct {
	Src    string  `json:"src"`
	Muted  bool    `json:"muted"`
	Loop   bool    `json:"loop"`
	Start  float64 `json:"start"`
	Volume float64 `json:"volume"`
}

// Split shows two panes side by side.
type Split struct {
	Left  string  `json:"left"`
	Right string  `json:"right"`
	Ratio float64 `json:"ratio"`
}

// Terminal replays a shell session.
type Terminal struct {
	Title    string            `json:"title"`
	Prompt   string            `json:"prompt"`
	Typing   bool              `json:"typing"`
	Speed    float64           `json:"speed"`
	Commands []TerminalCommand `json:"commands"`
}

// TerminalCommand is one prompt line and the output printed after it.
type TerminalCommand struct {
	Prompt  string `json:"prompt"`
	Command string `json:"command"`
	Output  string `json:"output,omitempty"`
}

// DiffLineKind classifies a diff line.
type DiffLineKind string

// Diff line kinds.
const (
	DiffAdd     DiffLineKind = "add"
	DiffRemove  DiffLineKind = "remove"
	DiffContext DiffLineKind = "context"
)

// Diff is a unified-style change listing.
type Diff struct {
	Language string     `json:"language"`
	Filename string     `json:"filename,omitempty"`
	Lines    []DiffLine `json:"lines"`
}

// DiffLine is one classified line of a diff.
type DiffLine struct {
	Kind    DiffLineKind `json:"type"`
	Content string       `json:"content"`
}

// Chart is an animated data chart.
type Chart struct {
	ChartType string          `json:"type"`
	Title     string          `json:"title,omitempty"`
	Animate   bool            `json:"animate"`
	Data      []ChartDataItem `json:"data"`
}

// ChartDataItem is one labelled value.
type ChartDataItem struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Mockup frames embedded content in a device.
type Mockup struct {
	Device     string        `json:"device"`
	Background string        `json:"background"`
	Content    MockupContent `json:"content"`
}

// MockupContent is the payload shown inside a device mockup.
type MockupContent struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Language string `json:"language,omitempty"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

// QR renders a scannable code.
type QR struct {
	URL        string `json:"url"`
	Label      string `json:"label,omitempty"`
	Size       int    `json:"size"`
	Color      string `json:"color"`
	Background string `json:"background"`
}

// Countdown counts down from a number.
type Countdown struct {
	From  int    `json:"from"`
	Style string `json:"style"`
	Label string `json:"label,omitempty"`
}

// Progress is a progress indicator.
type Progress struct {
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
	Style string  `json:"style"`
	Label string  `json:"label,omitempty"`
	Color string  `json:"color"`
}

// Emoji is a single large animated emoji.
type Emoji struct {
	Emoji     string `json:"emoji"`
	Animation string `json:"animation"`
	Size      string `json:"size"`
}

func (*Text) SceneType() SceneType      { return SceneText }
func (*Code) SceneType() SceneType      { return SceneCode }
func (*Image) SceneType() SceneType     { return SceneImage }
func (*Video) SceneType() SceneType     { return SceneVideo }
func (*Split) SceneType() SceneType     { return SceneSplit }
func (*Terminal) SceneType() SceneType  { return SceneTerminal }
func (*Diff) SceneType() SceneType      { return SceneDiff }
func (*Chart) SceneType() SceneType     { return SceneChart }
func (*Mockup) SceneType() SceneType    { return SceneMockup }
func (*QR) SceneType() SceneType        { return SceneQR }
func (*Countdown) SceneType() SceneType { return SceneCountdown }
func (*Progress) SceneType() SceneType  { return SceneProgress }
func (*Emoji) SceneType() SceneType     { return SceneEmoji }

func (*Text) isContent()      {}
func (*Code) isContent()      {}
func (*Image) isContent()     {}
func (*Video) isContent()     {}
func (*Split) isContent()     {}
func (*Terminal) isContent()  {}
func (*Diff) isContent()      {}
func (*Chart) isContent()     {}
func (*Mockup) isContent()    {}
func (*QR) isContent()        {}
func (*Countdown) isContent() {}
func (*Progress) isContent()  {}
func (*Emoji) isContent()     {}
