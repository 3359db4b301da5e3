// Package render draws the profile card as an SVG document.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/naka-gawa/github-profile-card/internal/profile"
)

const (
	svgWidth   = 1000
	lineHeight = 24
	topOffset  = 20
	// verticalMargin is the top plus bottom space added to the rows.
	verticalMargin = 40
	leftMargin     = 20
	charWidth      = 9
	columnPadding  = 40
)

//go:embed templates/card.svg.tmpl
var cardTemplate string

var cardTmpl = template.Must(
	template.New("card").
		Funcs(template.FuncMap{
			"xml": template.HTMLEscapeString,
		}).
		Parse(cardTemplate),
)

type span struct {
	Fill string
	Text string
}

type textElement struct {
	X       int
	Y       int
	Fill    string
	Content string
	Spans   []span
}

type cardViewModel struct {
	Width      int
	Height     int
	Background string
	Texts      []textElement
}

// Render lays the ASCII art out on the left and the profile lines on the right.
// Label/value lines are dot-filled to profile.DefaultWidth characters.
func Render(asciiLines []string, lines []profile.Line, scheme ColorScheme) ([]byte, error) {
	return RenderWidth(asciiLines, lines, scheme, profile.DefaultWidth)
}

// RenderWidth is Render with an explicit line width for the dot-fill.
func RenderWidth(asciiLines []string, lines []profile.Line, scheme ColorScheme, width int) ([]byte, error) {
	rows := max(len(asciiLines), len(lines))
	profileX := profileColumnOffset(asciiLines)

	vm := cardViewModel{
		Width:      svgWidth,
		Height:     rows*lineHeight + verticalMargin,
		Background: scheme.Background,
	}
	for i := 0; i < rows; i++ {
		y := topOffset + i*lineHeight
		if i < len(asciiLines) {
			vm.Texts = append(vm.Texts, textElement{
				X:       leftMargin,
				Y:       y,
				Fill:    scheme.ASCIIImage,
				Content: asciiLines[i],
			})
		}
		if i < len(lines) {
			vm.Texts = append(vm.Texts, textElement{
				X:     profileX,
				Y:     y,
				Spans: lineSpans(lines[i], scheme, width),
			})
		}
	}

	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, vm); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	return buf.Bytes(), nil
}

// profileColumnOffset places the profile column after the second ASCII line.
// The first line is trimmed when the art is parsed, so the second one carries
// the real width of the block.
func profileColumnOffset(asciiLines []string) int {
	var boundary string
	switch {
	case len(asciiLines) > 1:
		boundary = asciiLines[1]
	case len(asciiLines) == 1:
		boundary = asciiLines[0]
	}
	return utf8.RuneCountInString(boundary)*charWidth + columnPadding
}

func lineSpans(line profile.Line, scheme ColorScheme, width int) []span {
	if !line.IsPair() {
		return []span{{Fill: scheme.ASCII, Text: line.Text}}
	}
	return []span{
		{Fill: scheme.Label, Text: " . "},
		{Fill: scheme.Label, Text: line.Label},
		{Fill: scheme.ASCII, Text: " " + DotFill(line.Label, line.Value, width) + " "},
		{Fill: scheme.Value, Text: line.Value},
	}
}

// DotFill returns the dots that justify label against value within width.
// It is empty when label and value already fill the line.
func DotFill(label, value string, width int) string {
	n := width - utf8.RuneCountInString(label) - utf8.RuneCountInString(value) - 2
	if n <= 0 {
		return ""
	}
	return strings.Repeat(".", n)
}
