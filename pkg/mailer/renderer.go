package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer turns markdown newsletter templates into HTML and plain text.
// Parsed templates and layouts are cached; rendered output never is.
type Renderer struct {
	fs          fs.FS
	md          goldmark.Markdown
	templateDir string
	layoutDir   string

	templates parsedCache[*parsedTemplate]
	layouts   parsedCache[*template.Template]
}

type parsedTemplate struct {
	source *Template
	body   *texttemplate.Template
}

// RendererConfig locates templates and layouts inside the renderer's FS.
type RendererConfig struct {
	TemplateDir string // default "."
	LayoutDir   string // default "layouts"
}

// NewRenderer creates a Renderer with the default directories.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithConfig(fsys, RendererConfig{})
}

// NewRendererWithConfig creates a Renderer. Bare URLs in the markdown are
// turned into links so they can be tracked in the HTML part.
func NewRendererWithConfig(fsys fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}
	return &Renderer{
		fs:          fsys,
		md:          goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Table)),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult is a rendered newsletter.
type RenderResult struct {
	Frontmatter
	Metadata map[string]any
	HTML     string
	// Text is the executed markdown, used as the plain-text part.
	Text string
}

// Render executes templateName with data, converts it to HTML and wraps it
// with layout. Layouts receive .Content and .Metadata.
func (r *Renderer) Render(layout, templateName string, data any) (*RenderResult, error) {
	tmpl, err := r.template(templateName)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := tmpl.body.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, templateName, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := layoutTmpl.Execute(&html, map[string]any{
		"Content":  template.HTML(content.String()),
		"Metadata": tmpl.source.Metadata,
	}); err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		Frontmatter: tmpl.source.Frontmatter,
		Metadata:    tmpl.source.Metadata,
		HTML:        html.String(),
		Text:        md.String(),
	}, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	return r.templates.load(name, func() (*parsedTemplate, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
		}
		src, err := ParseTemplate(content)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRenderFailed, name, err)
		}
		body, err := texttemplate.New(name).Parse(src.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
		}
		return &parsedTemplate{source: src, body: body}, nil
	})
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	return r.layouts.load(name, func() (*template.Template, error) {
		content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
		}
		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
		}
		return tmpl, nil
	})
}

// parsedCache memoizes successful parses by name.
type parsedCache[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func (c *parsedCache[T]) load(name string, parse func() (T, error)) (T, error) {
	c.mu.RLock()
	v, ok := c.items[name]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.items[name]; ok {
		return v, nil
	}
	v, err := parse()
	if err != nil {
		return v, err
	}
	if c.items == nil {
		c.items = make(map[string]T)
	}
	c.items[name] = v
	return v, nil
}
