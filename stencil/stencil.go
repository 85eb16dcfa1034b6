// Copyright (c) 2012-present The sqlcraft authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package stencil renders named SQL templates with placeholder substitution.
//
// A template pattern is a plain string containing placeholders in the form
// $name or ${name}, where a name starts with a letter or underscore and
// continues with letters, digits or underscores. "$$" produces a literal
// "$"; a "$" followed by anything else is literal text.
//
// Substitution is safe by default: placeholders whose name has a matching
// key in the variable map are replaced by the value's string form, and
// unmatched placeholders are left verbatim in their original spelling.
// Inserted values are never re-scanned for further placeholders, and no
// escaping of any kind is performed. RenderStrict is the opt-in variant
// that fails on the first unmatched placeholder.
package stencil

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sqlcraft/sqlcraft"
)

// A segment is either a literal run of text or a single placeholder. For
// placeholders, text keeps the original spelling ($name or ${name}) so safe
// substitution can restore it byte-for-byte.
type segment struct {
	name string
	text string
}

type template struct {
	pattern  string
	segments []segment
}

func parseTemplate(pattern string) *template {
	t := &template{pattern: pattern}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		if pattern[i] != '$' {
			lit.WriteByte(pattern[i])
			i++
			continue
		}

		// "$$" escapes a literal "$".
		if i+1 < len(pattern) && pattern[i+1] == '$' {
			lit.WriteByte('$')
			i += 2
			continue
		}

		// "${name}"
		if i+1 < len(pattern) && pattern[i+1] == '{' {
			if j := strings.IndexByte(pattern[i+2:], '}'); j >= 0 {
				name := pattern[i+2 : i+2+j]
				if isIdentifier(name) {
					flush()
					t.segments = append(t.segments, segment{
						name: name,
						text: pattern[i : i+3+j],
					})
					i += 3 + j
					continue
				}
			}
			// Malformed braced placeholder, keep the "$" as literal text.
			lit.WriteByte('$')
			i++
			continue
		}

		// "$name"
		j := i + 1
		for j < len(pattern) && isIdentifierByte(pattern[j], j == i+1) {
			j++
		}
		if j > i+1 {
			flush()
			t.segments = append(t.segments, segment{
				name: pattern[i+1 : j],
				text: pattern[i:j],
			})
			i = j
			continue
		}

		lit.WriteByte('$')
		i++
	}
	flush()

	return t
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentifierByte(s[i], i == 0) {
			return false
		}
	}
	return true
}

func isIdentifierByte(c byte, first bool) bool {
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

// render performs a single left-to-right pass over the parsed segments.
// Values are inserted literally and never re-scanned, so a value containing
// placeholder-like syntax cannot trigger further expansion.
func (t *template) render(vars map[string]interface{}, strict bool) (string, error) {
	var b strings.Builder
	b.Grow(len(t.pattern))

	for _, seg := range t.segments {
		if seg.name == "" {
			b.WriteString(seg.text)
			continue
		}
		if v, ok := vars[seg.name]; ok {
			b.WriteString(fmt.Sprint(v))
			continue
		}
		if strict {
			return "", fmt.Errorf("%w: %q", sqlcraft.ErrMissingVariable, seg.name)
		}
		b.WriteString(seg.text)
	}

	return b.String(), nil
}

// Engine is a registry of named templates. It is safe for concurrent use.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]*template
}

// New returns an Engine with all built-in templates pre-registered.
func New() *Engine {
	e := &Engine{
		templates: make(map[string]*template, len(builtinTemplates)),
	}
	for name, pattern := range builtinTemplates {
		e.Register(name, pattern)
	}
	return e
}

// Register parses and stores a pattern under the given name, silently
// overwriting any previous pattern with the same name.
func (e *Engine) Register(name string, pattern string) {
	t := parseTemplate(pattern)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.templates[name] = t
}

// Lookup returns the pattern registered under the given name.
func (e *Engine) Lookup(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	t, ok := e.templates[name]
	if !ok {
		return "", false
	}
	return t.pattern, true
}

// Templates returns the sorted names of all registered templates.
func (e *Engine) Templates() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render generates a query from the named template using safe substitution:
// unmatched placeholders are left verbatim. It fails with
// sqlcraft.ErrUnknownTemplate when no template is registered under the name,
// and never returns a partial result.
func (e *Engine) Render(name string, vars map[string]interface{}) (string, error) {
	return e.render(name, vars, false)
}

// RenderStrict is like Render but fails with sqlcraft.ErrMissingVariable on
// the first placeholder that has no matching variable.
func (e *Engine) RenderStrict(name string, vars map[string]interface{}) (string, error) {
	return e.render(name, vars, true)
}

func (e *Engine) render(name string, vars map[string]interface{}, strict bool) (string, error) {
	start := time.Now()

	e.mu.RLock()
	t, ok := e.templates[name]
	e.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %q", sqlcraft.ErrUnknownTemplate, name)
		sqlcraft.LC().Log(&sqlcraft.QueryStatus{
			Template: name,
			Err:      err,
			Start:    start,
			End:      time.Now(),
		})
		return "", err
	}

	compiled, err := t.render(vars, strict)

	sqlcraft.LC().Log(&sqlcraft.QueryStatus{
		Template: name,
		Query:    compiled,
		Err:      err,
		Start:    start,
		End:      time.Now(),
	})

	if err != nil {
		return "", err
	}
	return compiled, nil
}

var defaultEngine = New()

// Default returns the package-wide engine built-in templates are registered
// on.
func Default() *Engine {
	return defaultEngine
}

// Register stores a pattern on the default engine.
func Register(name string, pattern string) {
	defaultEngine.Register(name, pattern)
}

// Render generates a query from the default engine using safe substitution.
func Render(name string, vars map[string]interface{}) (string, error) {
	return defaultEngine.Render(name, vars)
}

// RenderStrict generates a query from the default engine, failing on
// unmatched placeholders.
func RenderStrict(name string, vars map[string]interface{}) (string, error) {
	return defaultEngine.RenderStrict(name, vars)
}

// Templates returns the sorted names registered on the default engine.
func Templates() []string {
	return defaultEngine.Templates()
}
