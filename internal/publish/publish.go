// Package publish writes the rendered card and the README that embeds it.
package publish

import (
	"fmt"
	"os"
	"path/filepath"
)

// rawURLFormat points at the card committed to the user's profile repository.
const rawURLFormat = "https://raw.githubusercontent.com/%[1]s/%[1]s/main/%[2]s"

// Publisher writes the SVG card and overwrites the README with an image tag.
type Publisher struct {
	SVGPath    string
	ReadmePath string
	ImageURL   string
}

// NewPublisher returns a Publisher. When imageURL is empty the README points
// at the raw copy of the card in login's profile repository.
func NewPublisher(svgPath, readmePath, imageURL, login string) *Publisher {
	if imageURL == "" {
		imageURL = RawURL(login, filepath.Base(svgPath))
	}
	return &Publisher{
		SVGPath:    svgPath,
		ReadmePath: readmePath,
		ImageURL:   imageURL,
	}
}

// RawURL returns the raw.githubusercontent.com URL of file in login's profile repository.
func RawURL(login, file string) string {
	return fmt.Sprintf(rawURLFormat, login, file)
}

// ReadmeMarkdown returns the whole README content embedding imageURL.
func ReadmeMarkdown(imageURL string) string {
	return fmt.Sprintf("<img src=\"%s\" alt=\"profile card\"/>\n", imageURL)
}

// Publish writes svg to SVGPath and then replaces the README.
func (p *Publisher) Publish(svg []byte) error {
	if err := os.WriteFile(p.SVGPath, svg, 0o644); err != nil {
		return fmt.Errorf("failed to write SVG to %s: %w", p.SVGPath, err)
	}
	if err := os.WriteFile(p.ReadmePath, []byte(ReadmeMarkdown(p.ImageURL)), 0o644); err != nil {
		return fmt.Errorf("failed to write README to %s: %w", p.ReadmePath, err)
	}
	return nil
}
