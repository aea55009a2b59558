// Package render performs literal placeholder substitution into the shipped
// configuration templates.
//
// Templates use fixed {{TOKEN}} sentinels rather than a templating language.
// Rendering is a pure function of (template, bindings): identical inputs yield
// byte-identical output, and any sentinel left without a binding is an error.
package render

import (
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

//go:embed templates/*.tmpl
var templates embed.FS

// tokenRegex matches placeholder sentinels like {{DOMAIN}}.
var tokenRegex = regexp.MustCompile(`\{\{[A-Z][A-Z0-9_]*\}\}`)

// UnresolvedTokenError reports sentinels that had no binding.
type UnresolvedTokenError struct {
	Tokens []string
}

func (e *UnresolvedTokenError) Error() string {
	return fmt.Sprintf("unresolved template tokens: %s", strings.Join(e.Tokens, ", "))
}

// Render replaces every occurrence of each {{TOKEN}} sentinel with its bound
// value. It fails with an UnresolvedTokenError if the template contains a
// sentinel that has no binding.
func Render(tmpl string, bindings map[string]string) (string, error) {
	rendered := tmpl
	for key, value := range bindings {
		rendered = strings.ReplaceAll(rendered, "{{"+key+"}}", value)
	}

	leftover := tokenRegex.FindAllString(rendered, -1)
	if len(leftover) > 0 {
		seen := make(map[string]bool)
		var tokens []string
		for _, tok := range leftover {
			name := strings.TrimSuffix(strings.TrimPrefix(tok, "{{"), "}}")
			if !seen[name] {
				seen[name] = true
				tokens = append(tokens, name)
			}
		}
		sort.Strings(tokens)
		return "", &UnresolvedTokenError{Tokens: tokens}
	}

	return rendered, nil
}

// NginxSite returns the reverse-proxy site template.
// Sentinels: DOMAIN, APP_DIR.
func NginxSite() string {
	return mustTemplate("templates/nginx-site.conf.tmpl")
}

// SystemdUnit returns the process-manager unit template.
// Sentinels: SERVICE_NAME, APP_USER, APP_DIR.
func SystemdUnit() string {
	return mustTemplate("templates/app.service.tmpl")
}

func mustTemplate(name string) string {
	data, err := templates.ReadFile(name)
	if err != nil {
		// Embedded at compile time; a missing template is a build defect.
		panic(fmt.Sprintf("embedded template %s: %v", name, err))
	}
	return string(data)
}
