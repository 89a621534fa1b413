package mailer

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html><title>{{.Metadata.Title}}</title><body>{{.Content}}</body></html>`),
		},
		"welcome.md": &fstest.MapFile{
			Data: []byte(`---
Subject: Welcome {{.Name}}
Title: Hello
---
Hello **{{.Name}}**!

| a | b |
|---|---|
| 1 | 2 |
`),
		},
	}

	res, err := NewRenderer(fsys).Render("default.html", "welcome.md", map[string]string{"Name": "Alice"})
	require.NoError(t, err)

	assert.Equal(t, "Welcome {{.Name}}", res.Subject)
	assert.Contains(t, res.Text, "Hello **Alice**!")
	assert.NotContains(t, res.Text, "<strong>")
	assert.Contains(t, res.HTML, "<title>Hello</title>")
	assert.Contains(t, res.HTML, "<strong>Alice</strong>")
	assert.Contains(t, res.HTML, "<table>")
}

// countingFS counts file reads.
type countingFS struct {
	fstest.MapFS
	opens atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.opens.Add(1)
	return c.MapFS.ReadFile(name)
}

func TestRenderer_CachesParsedFiles(t *testing.T) {
	t.Parallel()

	cfs := &countingFS{MapFS: fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"a.md":              &fstest.MapFile{Data: []byte(`Hi {{.}}`)},
	}}
	r := NewRenderer(cfs)

	first, err := r.Render("base.html", "a.md", "one")
	require.NoError(t, err)
	second, err := r.Render("base.html", "a.md", "two")
	require.NoError(t, err)

	assert.Equal(t, int32(2), cfs.opens.Load())
	assert.Contains(t, first.HTML, "Hi one")
	assert.Contains(t, second.HTML, "Hi two")
}

func TestRenderer_FailedParseIsNotCached(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"layouts/base.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)}}
	r := NewRenderer(fsys)

	_, err := r.Render("base.html", "late.md", nil)
	require.ErrorIs(t, err, ErrTemplateNotFound)

	fsys["late.md"] = &fstest.MapFile{Data: []byte("now here")}
	res, err := r.Render("base.html", "late.md", nil)
	require.NoError(t, err)
	assert.Contains(t, res.HTML, "now here")
}

func TestRenderer_InvalidFrontmatter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"bad.md": &fstest.MapFile{Data: []byte("---\nSubject: [\n---\nbody")}}

	_, err := NewRenderer(fsys).Render("base.html", "bad.md", nil)
	require.ErrorIs(t, err, ErrRenderFailed)
	require.ErrorIs(t, err, ErrInvalidFrontmatter)
}

func TestRenderer_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r := NewRenderer(fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"a.md":              &fstest.MapFile{Data: []byte(`Item {{.}}`)},
	})

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Render("base.html", "a.md", i)
			assert.NoError(t, err)
			assert.Contains(t, res.Text, "Item")
		}()
	}
	wg.Wait()
}
