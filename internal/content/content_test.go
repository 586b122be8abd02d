package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLookup(t *testing.T) {
	site := Default()
	p, ok := site.Project("smart-medicine-dispenser")
	require.True(t, ok)
	assert.Equal(t, "Smart Medicine Dispenser", p.Title)
	assert.Len(t, p.Features, 6)

	_, ok = site.Project("nope")
	assert.False(t, ok)
}

func TestSlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Default().Projects {
		assert.False(t, seen[p.Slug], p.Slug)
		seen[p.Slug] = true
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown(AboutMe)
	require.NoError(t, err)
	html := string(out)
	assert.Equal(t, 2, strings.Count(html, "<p>"))
	assert.Contains(t, html, "<strong>CGPA: 9.18</strong>")
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	out, err := Markdown("hi <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestMarkdownLinksAreNofollow(t *testing.T) {
	out, err := Markdown("see [my code](https://github.com/Ajithkoli)")
	require.NoError(t, err)
	assert.Contains(t, string(out), `href="https://github.com/Ajithkoli"`)
	assert.Contains(t, string(out), `rel="nofollow"`)
}
