// Package markdown renders a plan as a markdown document, suitable for
// sharing alongside a dotfiles repo or piping through a terminal renderer.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/dotupsh/dotup-cli/display"
	"github.com/dotupsh/dotup-cli/plan"
	"github.com/dotupsh/dotup-cli/slice"
)

const MdTemplate = `# {{ .Title }}
{{- with .Description }}

{{ . }}
{{- end }}

{{ len .Steps }} steps, run in order:
{{- range $i, $step := .Steps }}

## {{ add $i 1 }}. {{ $step.Title }}
{{- with $step.Note }}

{{ . }}
{{- end }}
{{- with $step.Command }}

~~~sh
{{ . }}
~~~
{{- end }}
{{- with $step.Content }}

~~~
{{ . }}
~~~
{{- end }}
{{- end }}
`

type Service interface {
	Render(p *plan.Plan) (string, error)
	ToMarkdownFile(ctx context.Context, p *plan.Plan, path string) (string, error)
}

var mdTemplate *template.Template

func init() {
	mdTemplate = template.Must(template.New("md").Funcs(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		}}).Parse(MdTemplate))
}

type stepView struct {
	Title   string
	Command string
	Note    string
	Content string
}

type svc struct{}

func NewService() Service {
	return &svc{}
}

func (s *svc) Render(p *plan.Plan) (string, error) {
	data := struct {
		Title       string
		Description string
		Steps       []stepView
	}{
		Title:       p.Title(),
		Description: p.Description,
		Steps:       slice.Map(p.Steps, viewOf),
	}

	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing markdown template: %w", err)
	}
	return buf.String(), nil
}

// ToMarkdownFile renders the plan into path and returns the file name. An
// empty path picks a timestamped name in the current directory.
func (s *svc) ToMarkdownFile(_ context.Context, p *plan.Plan, path string) (string, error) {
	mdContent, err := s.Render(p)
	if err != nil {
		return "", err
	}

	fileName := path
	if fileName == "" {
		humanReadableTime := time.Now().Format("2006_01_02_15:04:05")
		fileName = fmt.Sprintf("dotup_%s.md", humanReadableTime)
	}

	f, err := os.Create(fileName)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(mdContent); err != nil {
		return "", fmt.Errorf("failed to write md to file: %w", err)
	}

	display.Info(fmt.Sprintf("Markdown file created: %s", fileName))
	return fileName, nil
}

func viewOf(s plan.Step) stepView {
	v := stepView{Title: s.Title(), Command: s.CommandEquivalent()}
	switch s.Kind {
	case plan.KindWrite:
		v.Note = fmt.Sprintf("Write `%s`:", s.Write.To)
		v.Content = s.Write.Content
	case plan.KindConfirm:
		v.Note = fmt.Sprintf("Asks for confirmation: %q. Answering no stops the run.", s.Confirm)
	}
	return v
}
