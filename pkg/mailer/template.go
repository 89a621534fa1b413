package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frontmatter holds the keys the mailer understands. Any other key is kept
// in Template.Metadata and exposed to layouts.
type Frontmatter struct {
	Subject  string `yaml:"Subject"`
	Campaign string `yaml:"Campaign"`
	Keyword  string `yaml:"Keyword"`
}

// Template is a parsed newsletter source: YAML frontmatter between "---"
// lines followed by a markdown body.
type Template struct {
	Frontmatter
	Metadata map[string]any
	Body     string
}

var delimiter = []byte("---")

// ParseTemplate splits content into frontmatter and body. Content without a
// leading delimiter is all body.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, delimiter) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, delimiter), "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	head, body, found := bytes.Cut(rest, delimiter)
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}
	switch {
	case bytes.HasPrefix(body, []byte("\r\n")):
		body = body[2:]
	case bytes.HasPrefix(body, []byte("\n")):
		body = body[1:]
	}

	tmpl := &Template{Metadata: map[string]any{}, Body: string(body)}
	if len(bytes.TrimSpace(head)) == 0 {
		return tmpl, nil
	}
	if err := yaml.Unmarshal(head, &tmpl.Metadata); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	if err := yaml.Unmarshal(head, &tmpl.Frontmatter); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}
	return tmpl, nil
}
