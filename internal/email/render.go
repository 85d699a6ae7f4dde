package email

import (
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"sync"
)

// Renderer renders named HTML email templates from a file system.
// Templates are looked up as "<name>.html", parsed once, and cached.
// Safe for concurrent use.
type Renderer struct {
	fsys  fs.FS
	mu    sync.RWMutex
	cache map[string]*template.Template
}

// NewRenderer creates a renderer reading templates from fsys.
func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys:  fsys,
		cache: make(map[string]*template.Template),
	}
}

// Render executes the named template with data and returns the HTML.
// Returns an error wrapping ErrTemplateNotFound when no template file
// matches name, or ErrRenderFailed when parsing or execution fails.
func (r *Renderer) Render(name string, data any) (string, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return buf.String(), nil
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring the write lock
	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	content, err := fs.ReadFile(r.fsys, name+".html")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	tmpl, err = template.New(name).Parse(string(content))
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	r.cache[name] = tmpl
	return tmpl, nil
}
