// Package frontmatter reads and writes the YAML block at the top of a
// markdown note. Field order and value styles are kept so that rewriting one
// field leaves the others as they were.
package frontmatter

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter is the marker line that opens and closes a front-matter block.
const Delimiter = "---"

// Fields is an ordered mapping of front-matter keys to values.
type Fields struct {
	node *yaml.Node
}

// NewFields returns an empty mapping.
func NewFields() *Fields {
	return &Fields{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// Len returns the number of keys.
func (f *Fields) Len() int {
	return len(f.node.Content) / 2
}

// Get returns the scalar value stored under name. Null values, nested
// mappings and sequences report false.
func (f *Fields) Get(name string) (string, bool) {
	idx := f.index(name)
	if idx < 0 {
		return "", false
	}
	value := f.node.Content[idx+1]
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.ScalarNode || value.ShortTag() == "!!null" {
		return "", false
	}
	return value.Value, true
}

// Set stores value as a string under name, replacing any previous value in
// place or appending the key when it is new.
func (f *Fields) Set(name, value string) {
	scalar := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if idx := f.index(name); idx >= 0 {
		f.node.Content[idx+1] = scalar
		return
	}
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
	f.node.Content = append(f.node.Content, key, scalar)
}

func (f *Fields) index(name string) int {
	for i := 0; i+1 < len(f.node.Content); i += 2 {
		if f.node.Content[i].Value == name {
			return i
		}
	}
	return -1
}

// Split separates a note into its front-matter fields and body. The block
// must start on the first line and end at the next delimiter line. When there
// is no block, or the block is not a YAML mapping, ok is false and the whole
// content is returned as the body.
func Split(content string) (*Fields, string, bool) {
	lines := strings.Split(content, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != Delimiter {
		return NewFields(), content, false
	}

	var end int
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == Delimiter {
			end = i
			break
		}
	}

	if end == 0 {
		return NewFields(), content, false
	}

	raw := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")

	fields, ok := parseFields(raw)
	if !ok {
		return NewFields(), content, false
	}
	return fields, body, true
}

func parseFields(raw string) (*Fields, bool) {
	if strings.TrimSpace(raw) == "" {
		return NewFields(), true
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, false
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		// Comments only.
		return NewFields(), true
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, false
	}
	return &Fields{node: root}, true
}

// Serialize renders the mapping as YAML with a trailing newline. An empty
// mapping renders as the empty string so that "---\n---\n" stays valid.
func Serialize(f *Fields) (string, error) {
	if f == nil || f.Len() == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.node); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render assembles a full note from fields and body. An empty body becomes a
// single blank line.
func Render(f *Fields, body string) (string, error) {
	yamlText, err := Serialize(f)
	if err != nil {
		return "", err
	}
	if body == "" {
		body = "\n"
	}
	return Delimiter + "\n" + yamlText + Delimiter + "\n" + body, nil
}

// Codec exposes Split and Render as a value, for callers that take the
// front-matter handling as a dependency.
type Codec struct{}

func (Codec) Split(content string) (*Fields, string, bool) { return Split(content) }

func (Codec) Render(f *Fields, body string) (string, error) { return Render(f, body) }
