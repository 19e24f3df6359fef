// Package parser turns scene markdown into structured scenes.
//
// The parser is lenient: unknown directives, missing sub-content and
// malformed values fall back to defaults or are skipped. Diagnostics are the
// validator's job.
package parser

import (
	"strings"

	"github.com/starford/reelmd/internal/models"
)

// Parse returns the scenes of a document.
func Parse(markdown string) []models.Scene {
	return ParseFull(markdown).Scenes
}

// ParseFull parses a document into scenes, chapters and the variable table.
// The returned slices and map are never nil.
func ParseFull(markdown string) models.Document {
	lines := splitLines(markdown)
	vars := collectVariables(lines)
	for i, line := range lines {
		lines[i] = substitute(line, vars)
	}

	st := &state{
		lines:    lines,
		chapters: []models.Chapter{},
		scenes:   []models.Scene{},
	}
	for i := 0; i < len(lines); {
		word, _, ok := SplitDirective(lines[i])
		if !ok {
			i++
			continue
		}
		switch Lookup(word) {
		case DirScene:
			var scene models.Scene
			scene, i = st.parseScene(i)
			st.scenes = append(st.scenes, scene)
			st.colorIndex++
			st.offset += scene.Duration
		case DirLocales, DirStrings, DirExport:
			i = skipBlock(lines, i+1)
		default:
			i++
		}
	}

	return models.Document{
		Scenes:    st.scenes,
		Chapters:  st.chapters,
		Variables: vars,
	}
}

// splitLines splits on \n and drops a trailing \r from each line.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// skipBlock returns the index of the next directive or separator at or after i.
func skipBlock(lines []string, i int) int {
	for i < len(lines) && !isBoundary(lines[i]) {
		i++
	}
	return i
}
