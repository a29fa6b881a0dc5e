package readme

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// DefaultFooterTemplate is the attribution line appended to every document.
const DefaultFooterTemplate = "This file generated on {{.Today}} by goodreadme"

const maxFooterSize = 4 * 1024

// FooterContext is the data available to footer templates.
type FooterContext struct {
	Today string
	Title string
}

// Footer is a parsed footer template.
type Footer struct {
	tmpl *template.Template
}

// ParseFooter parses and test-executes a footer template so that rendering
// can not fail later.
func ParseFooter(text string) (*Footer, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("footer template is empty")
	}
	if len(text) > maxFooterSize {
		return nil, fmt.Errorf("footer template too large: %d bytes (max %d)", len(text), maxFooterSize)
	}

	tmpl, err := template.New("footer").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse footer template: %w", err)
	}

	footer := &Footer{tmpl: tmpl}
	if _, err := footer.execute(FooterContext{Today: "1/1/2000", Title: "probe"}); err != nil {
		return nil, err
	}
	return footer, nil
}

// DefaultFooter returns the built-in footer.
func DefaultFooter() *Footer {
	return &Footer{tmpl: template.Must(template.New("footer").Parse(DefaultFooterTemplate))}
}

// Render executes the footer. A template that fails at render time falls
// back to the default footer.
func (f *Footer) Render(ctx FooterContext) string {
	out, err := f.execute(ctx)
	if err != nil {
		out, _ = DefaultFooter().execute(ctx)
	}
	return out
}

func (f *Footer) execute(ctx FooterContext) (string, error) {
	var out strings.Builder
	if err := f.tmpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("failed to execute footer template: %w", err)
	}
	return out.String(), nil
}
