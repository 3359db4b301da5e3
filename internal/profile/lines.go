package profile

import (
	"strings"
)

// DefaultWidth is the number of characters a profile line is justified to.
const DefaultWidth = 62

// Spacer separates sections and nested groups.
const Spacer = " ."

// Line is one row of the profile column: either plain text or a label/value pair.
type Line struct {
	Text  string
	Label string
	Value string
	pair  bool
}

// TextLine returns a plain line such as a header or a spacer.
func TextLine(text string) Line {
	return Line{Text: text}
}

// PairLine returns a label/value line that is rendered with a dot-fill between the two.
func PairLine(label, value string) Line {
	return Line{Label: label, Value: value, pair: true}
}

// IsPair reports whether l is a label/value line.
func (l Line) IsPair() bool {
	return l.pair
}

// GenerateLines flattens t into display lines, justified to width.
//
// Every section starts with a header and ends with one spacer; the spacer after
// the last section is dropped. Within the primary section, leaves of a nested
// group are labelled "<group>.<leaf>:" instead of "<leaf>:".
func GenerateLines(t Template, width int, primary string) []Line {
	var lines []Line
	for _, section := range t {
		lines = append(lines, header(section.Key, width))

		switch v := section.Value.(type) {
		case Group:
			spaced := false
			for _, entry := range v {
				sub, nested := entry.Value.(Group)
				if !nested {
					lines = append(lines, PairLine(entry.Key+":", display(entry.Value)+" "))
					continue
				}
				for _, leaf := range sub {
					label := leaf.Key + ":"
					if section.Key == primary {
						label = entry.Key + "." + leaf.Key + ":"
					}
					lines = append(lines, PairLine(label, display(leaf.Value)+" "))
				}
				lines = append(lines, TextLine(Spacer))
				spaced = true
			}
			if !spaced {
				lines = append(lines, TextLine(Spacer))
			}
		default:
			lines = append(lines, PairLine(section.Key, display(section.Value)+" "), TextLine(Spacer))
		}
	}

	if len(lines) == 0 {
		return lines
	}
	return lines[:len(lines)-1]
}

func header(name string, width int) Line {
	fill := width - len([]rune(name)) - 1
	if fill < 0 {
		fill = 0
	}
	return TextLine(" - " + name + strings.Repeat("-", fill) + " ")
}

func display(v Value) string {
	switch v := v.(type) {
	case Scalar:
		return string(v)
	case Group:
		return v.String()
	default:
		return ""
	}
}
