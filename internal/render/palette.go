package render

// ColorScheme is the set of colours a card is drawn with.
type ColorScheme struct {
	Label      string
	Value      string
	ASCII      string
	Background string
	ASCIIImage string
}

// Palettes holds the schemes a card may be drawn with.
var Palettes = []ColorScheme{
	{Label: "#7FDBFF", Value: "#FFFFFF", ASCII: "#AAAAAA", Background: "#001F3F", ASCIIImage: "#FFFFFF"},
	{Label: "#FF6B6B", Value: "#F7FFF7", ASCII: "#4ECDC4", Background: "#2C3E50", ASCIIImage: "#FFE66D"},
	{Label: "#9B59B6", Value: "#ECF0F1", ASCII: "#3498DB", Background: "#2C3E50", ASCIIImage: "#E74C3C"},
	{Label: "#2ECC71", Value: "#FDFEFE", ASCII: "#F1C40F", Background: "#1A1A1A", ASCIIImage: "#E74C3C"},
	{Label: "#E67E22", Value: "#F5F6FA", ASCII: "#95A5A6", Background: "#2C3E50", ASCIIImage: "#3498DB"},
}

// Rand is the source of randomness used to pick a scheme.
// *math/rand/v2.Rand satisfies it through IntN.
type Rand interface {
	IntN(n int) int
}

// PickScheme returns a scheme chosen uniformly at random from Palettes.
func PickScheme(rng Rand) ColorScheme {
	return Palettes[rng.IntN(len(Palettes))]
}

// SchemeAt returns the scheme at index i, or false when i is out of range.
func SchemeAt(i int) (ColorScheme, bool) {
	if i < 0 || i >= len(Palettes) {
		return ColorScheme{}, false
	}
	return Palettes[i], true
}
