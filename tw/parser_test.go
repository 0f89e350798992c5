package tw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, ComputedStyles)
	}{
		{
			name:  "palette colors",
			input: "bg-slate-800 text-white",
			validate: func(t *testing.T, s ComputedStyles) {
				require.NotNil(t, s.Base.BackgroundColor)
				require.NotNil(t, s.Base.TextColor)
				assert.Equal(t, uint32(0x1E293BFF), *s.Base.BackgroundColor)
				assert.Equal(t, uint32(0xFFFFFFFF), *s.Base.TextColor)
			},
		},
		{
			name:  "arbitrary hex color",
			input: "bg-[#1da1f2]",
			validate: func(t *testing.T, s ComputedStyles) {
				require.NotNil(t, s.Base.BackgroundColor)
				assert.Equal(t, uint32(0x1DA1F2FF), *s.Base.BackgroundColor)
			},
		},
		{
			name:  "arbitrary shorthand hex color",
			input: "text-[#fff]",
			validate: func(t *testing.T, s ComputedStyles) {
				require.NotNil(t, s.Base.TextColor)
				assert.Equal(t, uint32(0xFFFFFFFF), *s.Base.TextColor)
			},
		},
		{
			name:  "padding",
			input: "p-1 px-2",
			validate: func(t *testing.T, s ComputedStyles) {
				require.NotNil(t, s.Base.PaddingTop)
				assert.Equal(t, 1, *s.Base.PaddingTop)
				assert.Equal(t, 1, *s.Base.PaddingBottom)
				assert.Equal(t, 2, *s.Base.PaddingLeft)
				assert.Equal(t, 2, *s.Base.PaddingRight)
			},
		},
		{
			name:  "arbitrary padding",
			input: "pl-[3]",
			validate: func(t *testing.T, s ComputedStyles) {
				require.NotNil(t, s.Base.PaddingLeft)
				assert.Equal(t, 3, *s.Base.PaddingLeft)
				assert.Nil(t, s.Base.PaddingRight)
			},
		},
		{
			name:  "typography",
			input: "font-bold italic underline",
			validate: func(t *testing.T, s ComputedStyles) {
				require.NotNil(t, s.Base.Bold)
				assert.True(t, *s.Base.Bold)
				assert.True(t, *s.Base.Italic)
				assert.True(t, *s.Base.Underline)
			},
		},
		{
			name:  "dark variant",
			input: "bg-white dark:bg-slate-900",
			validate: func(t *testing.T, s ComputedStyles) {
				assert.Equal(t, uint32(0xFFFFFFFF), *s.Base.BackgroundColor)
				assert.Equal(t, uint32(0x0F172AFF), *s.Dark.BackgroundColor)
			},
		},
		{
			name:  "unknown classes ignored",
			input: "flex bg-chartreuse-500 text-[red] p-x hover:underline",
			validate: func(t *testing.T, s ComputedStyles) {
				assert.Nil(t, s.Base.BackgroundColor)
				assert.Nil(t, s.Base.TextColor)
				assert.Nil(t, s.Base.PaddingTop)
				// Non-dark variants apply to the base bucket.
				require.NotNil(t, s.Base.Underline)
			},
		},
		{
			name:  "later class wins",
			input: "text-white text-black",
			validate: func(t *testing.T, s ComputedStyles) {
				assert.Equal(t, uint32(0x000000FF), *s.Base.TextColor)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestResolveDarkMode(t *testing.T) {
	cs := ParseClasses("bg-white text-black dark:bg-slate-900")

	light := cs.Resolve(false)
	assert.Equal(t, uint32(0xFFFFFFFF), *light.BackgroundColor)

	dark := cs.Resolve(true)
	assert.Equal(t, uint32(0x0F172AFF), *dark.BackgroundColor)
	assert.Equal(t, uint32(0x000000FF), *dark.TextColor)

	// Resolving dark must not leak into the base.
	assert.Equal(t, uint32(0xFFFFFFFF), *cs.Base.BackgroundColor)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#1e293b", HexColor(0x1E293BFF))
	assert.Equal(t, "#ffffff", HexColor(0xFFFFFFFF))
}

func TestLipgloss(t *testing.T) {
	s := ParseClasses("px-2 font-bold").Base.Lipgloss()
	assert.Equal(t, 2, s.GetPaddingLeft())
	assert.Equal(t, 2, s.GetPaddingRight())
	assert.True(t, s.GetBold())
}
