package validator

import (
	"strings"
	"testing"

	"github.com/starford/reelmd/internal/models"
	"github.com/starford/reelmd/internal/parser"
)

func TestValidate_Empty(t *testing.T) {
	r := Validate("")
	if r.Valid {
		t.Error("expected invalid for empty document")
	}
	if len(r.Errors) != 0 {
		t.Errorf("errors = %+v, want none", r.Errors)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("warnings = %+v, want 1", r.Warnings)
	}
	if r.Scenes == nil || len(r.Scenes) != 0 {
		t.Errorf("scenes = %#v, want empty non-nil", r.Scenes)
	}
}

func TestValidate_ValidDocument(t *testing.T) {
	r := Validate("!scene\n!text\nHello\n!transition fade\n---\n!scene\n!code go\n```go\nx := 1\n```")
	if !r.Valid {
		t.Errorf("expected valid, errors = %+v", r.Errors)
	}
	if r.SceneCount != 2 || r.TotalDuration != 6 {
		t.Errorf("scenes = %d total = %v, want 2 6", r.SceneCount, r.TotalDuration)
	}
	if len(r.Scenes) != 2 || r.Scenes[1].Type() != models.SceneCode {
		t.Errorf("scenes = %+v, want text then code", r.Scenes)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("warnings = %+v, want none", r.Warnings)
	}
}

func TestValidate_BadTransition(t *testing.T) {
	r := Validate("!scene\n!text\nHi\n!transition bogus")
	if r.Valid {
		t.Error("expected invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly 1", r.Errors)
	}
	e := r.Errors[0]
	if e.Severity != SeverityError {
		t.Errorf("severity = %q, want error", e.Severity)
	}
	for _, name := range Transitions {
		if !strings.Contains(e.Suggestion, name) {
			t.Errorf("suggestion %q missing %q", e.Suggestion, name)
		}
	}
	if e.Line != 1 {
		t.Errorf("line = %d, want 1", e.Line)
	}
}

func TestValidate_QR(t *testing.T) {
	cases := []struct {
		doc    string
		errors int
	}{
		{"!scene\n!qr url:not-a-url", 1},
		{"!scene\n!qr url:https://x.com", 0},
		{"!scene\n!qr https://x.com/path?q=1", 0},
		{"!scene\n!qr", 1},
	}
	for _, tc := range cases {
		r := Validate(tc.doc)
		if len(r.Errors) != tc.errors {
			t.Errorf("%q: errors = %+v, want %d", tc.doc, r.Errors, tc.errors)
		}
	}
}

func TestValidate_Durations(t *testing.T) {
	r := Validate("!scene\n!text\nHi\n!duration 0")
	if len(r.Errors) != 1 || r.Valid {
		t.Errorf("zero duration: errors = %+v", r.Errors)
	}

	r = Validate("!scene\n!text\nHi\n!duration 90")
	if len(r.Errors) != 0 || len(r.Warnings) != 1 || !r.Valid {
		t.Errorf("long scene: errors = %+v warnings = %+v", r.Errors, r.Warnings)
	}

	var b strings.Builder
	for range 11 {
		b.WriteString("!scene\n!text\nHi\n!duration 60\n")
	}
	r = Validate(b.String())
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0].Message, "Total duration") {
		t.Errorf("long video: warnings = %+v", r.Warnings)
	}
}

func TestValidate_PayloadChecks(t *testing.T) {
	cases := []struct {
		doc     string
		message string
	}{
		{"!scene\n!text\nHi\nfontFamily: comic", "font family"},
		{"!scene\n!text\nHi\nanimation: wiggle", "text animation"},
		{"!scene\n!chart type:radar\nA: 1", "chart type"},
		{"!scene\n!mockup device:pager", "device type"},
		{"!scene\n!image alt:nothing", "missing src"},
		{"!scene\n!text\nHi\n!particles glitter", "particle type"},
		{"!scene\n!text\nHi\n!camera spin", "camera effect"},
		{"!scene\n!text\nHi\n!presenter me.png position:middle", "presenter position"},
		{"!scene\n!emoji 🎉 animation:wobble", "emoji animation"},
		{"!scene\n!countdown 5 style:sand", "countdown style"},
		{"!scene\n!progress 50 style:pie", "progress style"},
		{"!scene\n!progress 120", "out of range"},
		{"!scene\n!progress -5", "out of range"},
		{"!scene\n!progress 5 max:0", "max must be positive"},
	}
	for _, tc := range cases {
		r := Validate(tc.doc)
		if len(r.Errors) != 1 {
			t.Errorf("%q: errors = %+v, want 1", tc.doc, r.Errors)
			continue
		}
		if !strings.Contains(r.Errors[0].Message, tc.message) {
			t.Errorf("%q: message = %q, want it to contain %q", tc.doc, r.Errors[0].Message, tc.message)
		}
	}
}

func TestValidate_EmptyContentWarnings(t *testing.T) {
	r := Validate("!scene\n!text\n---\n!scene\n!code")
	if !r.Valid {
		t.Errorf("expected valid, errors = %+v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("warnings = %+v, want 2", r.Warnings)
	}
}

func TestValidate_SceneWithoutContent(t *testing.T) {
	r := Validate("!scene\n!duration 2\n")
	if !r.Valid {
		t.Errorf("expected valid, errors = %+v", r.Errors)
	}
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0].Message, "text content is empty") {
		t.Errorf("warnings = %+v, want one empty-text warning", r.Warnings)
	}
	if r.Warnings[0].Line != 1 {
		t.Errorf("line = %d, want 1", r.Warnings[0].Line)
	}
}

func TestValidate_BadVariableName(t *testing.T) {
	r := Validate("!var brand-color #f00\n!scene\n!text\nHi")
	if len(r.Warnings) != 1 || r.Warnings[0].Line != 1 {
		t.Errorf("warnings = %+v, want one on line 1", r.Warnings)
	}
	if r := Validate("!var brand #f00\n!scene\n!text\n$brand"); len(r.Warnings) != 0 {
		t.Errorf("warnings = %+v, want none", r.Warnings)
	}
}

func TestValidateDocument_UsesGivenParse(t *testing.T) {
	src := "!scene\n!text\nHi"
	doc := parser.ParseFull(src)
	r := ValidateDocument(doc, src)
	if !r.Valid || len(r.Scenes) != 1 {
		t.Fatalf("result = %+v", r)
	}
	if r.Scenes[0].ID != doc.Scenes[0].ID {
		t.Errorf("scene id = %q, want %q", r.Scenes[0].ID, doc.Scenes[0].ID)
	}
}

func TestValidate_Typos(t *testing.T) {
	r := Validate("!scence\n!scene\n!text\nHi\n!wobble")
	if len(r.Warnings) != 2 {
		t.Fatalf("warnings = %+v, want 2", r.Warnings)
	}
	if w := r.Warnings[0]; w.Line != 1 || !strings.Contains(w.Suggestion, "!scene") {
		t.Errorf("typo warning = %+v", w)
	}
	if w := r.Warnings[1]; w.Line != 5 || !strings.Contains(w.Message, "!wobble") {
		t.Errorf("unknown warning = %+v", w)
	}
}

func TestValidate_UnknownInsideFenceIgnored(t *testing.T) {
	r := Validate("!scene\n!code\n```\n!important\n```")
	if len(r.Warnings) != 0 {
		t.Errorf("warnings = %+v, want none", r.Warnings)
	}
}

func TestValidate_RecoversFromParserPanic(t *testing.T) {
	orig := parseFull
	parseFull = func(string) models.Document { panic("boom") }
	t.Cleanup(func() { parseFull = orig })

	r := Validate("!scene")
	if r.Valid {
		t.Error("expected invalid")
	}
	if len(r.Errors) != 1 || !strings.Contains(r.Errors[0].Message, "boom") {
		t.Errorf("errors = %+v", r.Errors)
	}
}
