package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxNesting is the deepest a mapping may be nested: section, group, leaf.
const maxNesting = 3

//go:embed assets/template.yaml
var defaultTemplate string

//go:embed assets/ascii.txt
var defaultASCIIArt string

// ErrTooDeep is returned when a template nests mappings deeper than section, group and leaf.
var ErrTooDeep = errors.New("template nested too deeply")

// DefaultTemplate returns the built-in profile template.
func DefaultTemplate() Template {
	t, err := LoadTemplate(strings.NewReader(defaultTemplate))
	if err != nil {
		panic(fmt.Sprintf("invalid built-in template: %v", err))
	}
	return t
}

// DefaultASCIIArt returns the built-in ASCII art lines.
func DefaultASCIIArt() []string {
	return ParseASCIIArt(defaultASCIIArt)
}

// ParseASCIIArt trims surrounding whitespace from the whole block and splits it into lines.
// Only the block is trimmed, so inner lines keep their leading spaces.
func ParseASCIIArt(s string) []string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// LoadTemplate reads a YAML mapping into a Template, keeping key order.
// A sequence of scalars becomes one value with its items joined by ", ".
func LoadTemplate(r io.Reader) (Template, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Template{}, nil
		}
		return nil, fmt.Errorf("failed to decode profile template: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("profile template must be a mapping, got line %d", root.Line)
	}
	g, err := decodeGroup(root, 1)
	if err != nil {
		return nil, err
	}
	return Template(g), nil
}

func decodeGroup(n *yaml.Node, depth int) (Group, error) {
	g := make(Group, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, node := n.Content[i], n.Content[i+1]
		v, err := decodeValue(node, depth)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key.Value, err)
		}
		g = append(g, Entry{Key: key.Value, Value: v})
	}
	return g, nil
}

func decodeValue(n *yaml.Node, depth int) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return Scalar(""), nil
		}
		return Scalar(n.Value), nil
	case yaml.MappingNode:
		if depth >= maxNesting {
			return nil, ErrTooDeep
		}
		return decodeGroup(n, depth+1)
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := decodeValue(item, maxNesting)
			if err != nil {
				return nil, err
			}
			items = append(items, display(v))
		}
		return Scalar(strings.Join(items, ", ")), nil
	case yaml.AliasNode:
		return decodeValue(n.Alias, depth)
	default:
		return nil, fmt.Errorf("unsupported value at line %d", n.Line)
	}
}
