package mail

import (
	"embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// templateSet holds the parsed mail templates, keyed by base name.
type templateSet struct {
	templates *template.Template
}

func loadTemplates() (*templateSet, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mail templates")
	}

	return &templateSet{templates: templates}, nil
}

// render executes the named template with the given variables.
func (s *templateSet) render(name string, vars map[string]string) (string, error) {
	var buf strings.Builder
	if err := s.templates.ExecuteTemplate(&buf, name+".tmpl", vars); err != nil {
		return "", errors.Wrapf(err, "failed to render mail template %s", name)
	}

	return buf.String(), nil
}
