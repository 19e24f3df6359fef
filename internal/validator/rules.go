package validator

// Closed value sets accepted for enum-like scene properties.
var (
	Transitions = []string{
		"fade", "slide", "slideUp", "slideDown", "slideLeft", "slideRight",
		"zoom", "zoomIn", "zoomOut", "wipe", "dissolve", "blur", "flip", "none",
	}
	TextAnimations = []string{
		"fadeIn", "fadeOut", "slideUp", "slideDown", "slideLeft", "slideRight",
		"typewriter", "zoomIn", "bounce", "blur", "none",
	}
	FontFamilies       = []string{"serif", "sans", "mono", "display", "handwriting"}
	ChartTypes         = []string{"bar", "line", "pie", "donut", "area"}
	DeviceTypes        = []string{"iphone", "android", "browser", "laptop", "tablet", "desktop", "watch"}
	ParticleTypes      = []string{"confetti", "snow", "stars", "fireworks", "bubbles", "sparkles", "rain"}
	CameraEffects      = []string{"zoom", "pan", "shake", "rotate", "dolly", "focus"}
	PresenterPositions = []string{"top-left", "top-right", "bottom-left", "bottom-right", "left", "right", "center"}
	EmojiAnimations    = []string{"bounce", "pulse", "spin", "shake", "float", "none"}
	CountdownStyles    = []string{"digital", "circle", "flip", "minimal"}
	ProgressStyles     = []string{"bar", "circle", "steps", "ring"}
)

// Thresholds above which durations draw a warning, in seconds.
const (
	MaxSceneDuration = 60
	MaxTotalDuration = 600
)

// typos maps common misspellings of directive words to the intended word.
var typos = map[string]string{
	"scence":    "scene",
	"scen":      "scene",
	"sene":      "scene",
	"secne":     "scene",
	"sceen":     "scene",
	"txt":       "text",
	"tex":       "text",
	"txet":      "text",
	"cod":       "code",
	"cdoe":      "code",
	"durration": "duration",
	"duraton":   "duration",
	"duation":   "duration",
	"transtion": "transition",
	"transiton": "transition",
	"trasition": "transition",
	"backgroud": "background",
	"backround": "background",
	"termnal":   "terminal",
	"termial":   "terminal",
	"chrat":     "chart",
	"imgae":     "image",
	"iamge":     "image",
	"vidoe":     "video",
	"chpater":   "chapter",
	"chaptr":    "chapter",
	"partciles": "particles",
	"particels": "particles",
	"camrea":    "camera",
	"mockpu":    "mockup",
	"presneter": "presenter",
	"countdonw": "countdown",
	"progres":   "progress",
}
