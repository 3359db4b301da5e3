package publish

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# old content\nlots of it\n"), 0o644))

	p := NewPublisher(filepath.Join(dir, "profile_card.svg"), readme, "", "octocat")
	require.NoError(t, p.Publish([]byte("<svg></svg>")))

	svg, err := os.ReadFile(filepath.Join(dir, "profile_card.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(svg))

	md, err := os.ReadFile(readme)
	require.NoError(t, err)
	assert.Equal(t, "<img src=\"https://raw.githubusercontent.com/octocat/octocat/main/profile_card.svg\" alt=\"profile card\"/>\n", string(md))
}

func TestPublisher_CustomImageURL(t *testing.T) {
	p := NewPublisher("card.svg", "README.md", "https://example.com/card.svg", "octocat")
	assert.Equal(t, "https://example.com/card.svg", p.ImageURL)
}

func TestPublisher_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	p := NewPublisher(filepath.Join(dir, "missing", "card.svg"), readme, "", "octocat")

	err := p.Publish([]byte("<svg/>"))
	assert.ErrorContains(t, err, "failed to write SVG")

	_, statErr := os.Stat(readme)
	assert.True(t, os.IsNotExist(statErr), "README must not be written when the SVG write fails")
}
