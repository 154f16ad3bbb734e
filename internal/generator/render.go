package generator

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// Renderer handles template parsing and rendering with caching.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex // protect cache for concurrent access
}

// NewRenderer creates a renderer with built-in helper functions.
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderString renders a template from a string. The name is used for
// caching and error messages.
func (r *Renderer) RenderString(name, templateStr string, data any) ([]byte, error) {
	cacheKey := "string:" + name

	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	tmpl, err := template.New(name).Funcs(r.funcMap).Option("missingkey=error").Parse(templateStr)
	if err != nil {
		return nil, &RenderError{Name: name, Err: err}
	}

	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// RenderFS renders a template from an embedded filesystem.
func (r *Renderer) RenderFS(fsys embed.FS, path string, data any) ([]byte, error) {
	cacheKey := "fs:" + path

	r.mu.RLock()
	if tmpl, ok := r.cache[cacheKey]; ok {
		r.mu.RUnlock()
		return r.executeTemplate(tmpl, data)
	}
	r.mu.RUnlock()

	templateBytes, err := fsys.ReadFile(path)
	if err != nil {
		return nil, &RenderError{Name: path, Err: fmt.Errorf("reading template: %w", err)}
	}

	tmpl, err := template.New(path).Funcs(r.funcMap).Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return nil, &RenderError{Name: path, Err: err}
	}

	r.mu.Lock()
	r.cache[cacheKey] = tmpl
	r.mu.Unlock()

	return r.executeTemplate(tmpl, data)
}

// ClearCache clears the template cache (useful for testing).
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, &RenderError{Name: tmpl.Name(), Err: err}
	}
	return buf.Bytes(), nil
}

// defaultFuncMap returns helpers available inside template bodies.
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"trim":      strings.TrimSpace,
		"replace":   strings.ReplaceAll,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"quote":     func(s string) string { return fmt.Sprintf("%q", s) },
		"default":   defaultValue,
	}
}

// defaultValue returns defaultVal when val is nil or an empty string.
func defaultValue(defaultVal, val any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}
