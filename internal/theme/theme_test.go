package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalette(t *testing.T) {
	th := Default()
	assert.Equal(t, "#2563eb", th.Palette.Primary.Main)
	assert.Equal(t, "#7c3aed", th.Palette.Secondary.Main)
	assert.Equal(t, 700, th.Typography.Headings[0].Weight)
	assert.Equal(t, "16px", th.Spacing(2))
	assert.Equal(t, "4px", th.Spacing(0.5))
}

func TestIsMobile(t *testing.T) {
	th := Default()
	assert.True(t, th.IsMobile(375))
	assert.True(t, th.IsMobile(899))
	assert.False(t, th.IsMobile(900))
	assert.False(t, th.IsMobile(1440))
}

func TestCSS(t *testing.T) {
	css, err := Default().CSS()
	require.NoError(t, err)
	out := string(css)
	assert.Contains(t, out, "--color-primary: #2563eb;")
	assert.Contains(t, out, "--breakpoint-md: 900px;")
	assert.Contains(t, out, "h1 { font-weight: 700; letter-spacing: -0.02em;")
	assert.Contains(t, out, "h6 { font-weight: 500;")
}
