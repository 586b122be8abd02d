package theme

import (
	"bytes"
	"fmt"
	"text/template"
)

var cssTemplate = template.Must(template.New("theme.css").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(`:root {
  --color-primary: {{.Palette.Primary.Main}};
  --color-primary-light: {{.Palette.Primary.Light}};
  --color-primary-dark: {{.Palette.Primary.Dark}};
  --color-secondary: {{.Palette.Secondary.Main}};
  --color-secondary-light: {{.Palette.Secondary.Light}};
  --color-secondary-dark: {{.Palette.Secondary.Dark}};
  --color-bg: {{.Palette.Background.Default}};
  --color-paper: {{.Palette.Background.Paper}};
  --color-text: {{.Palette.Text.Primary}};
  --color-text-secondary: {{.Palette.Text.Secondary}};
  --color-error: {{.Palette.Error}};
  --color-warning: {{.Palette.Warning}};
  --color-info: {{.Palette.Info}};
  --color-success: {{.Palette.Success}};
  --color-border: {{.Palette.Border}};
  --font-family: {{.Typography.FontFamily}};
  --font-mono: {{.Typography.MonoFontFamily}};
  --body-letter-spacing: {{.Typography.BodyLetterSpacing}};
  --body-color: {{.Typography.BodyColor}};
  --radius: {{.Shape.BorderRadius}}px;
  --radius-card: {{.Shape.CardBorderRadius}}px;
  --spacing: {{.SpacingUnit}}px;
  --breakpoint-md: {{.Breakpoints.MD}}px;
  --motion-entrance: {{.Motion.EntranceMs}}ms;
  --motion-navbar: {{.Motion.NavbarMs}}ms;
}
{{range $i, $h := .Typography.Headings}}
h{{inc $i}} { font-weight: {{$h.Weight}}; letter-spacing: {{$h.LetterSpacing}}; color: {{$h.Color}}; }
{{- end}}
`))

// CSS renders the theme as custom properties plus heading rules.
func (t Theme) CSS() ([]byte, error) {
	var buf bytes.Buffer
	if err := cssTemplate.Execute(&buf, t); err != nil {
		return nil, fmt.Errorf("theme: render css: %w", err)
	}
	return buf.Bytes(), nil
}
