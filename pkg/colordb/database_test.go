// pkg/colordb/database_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test database lifecycle, LS_COLORS parsing and serialization

package colordb_test

import (
	"testing"

	"github.com/arthur-debert/dircolors/pkg/colordb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsEmptyAndUnloaded(t *testing.T) {
	db := colordb.New()

	assert.False(t, db.Loaded())
	codes, exts := db.Len()
	assert.Zero(t, codes)
	assert.Zero(t, exts)
	assert.Equal(t, "", db.GenerateLsColors())
}

func TestClear(t *testing.T) {
	db := colordb.New()
	require.True(t, db.LoadFromLsColors("di=01;34"))

	db.Clear()

	assert.False(t, db.Loaded())
	_, ok := db.Code("di")
	assert.False(t, ok)
	assert.Equal(t, "", db.GenerateLsColors())
}

func TestLoadFromLsColors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLoaded bool
		wantCodes  map[string]string
		wantExts   map[string]string
	}{
		{
			name:       "empty string",
			input:      "",
			wantLoaded: false,
		},
		{
			name:       "codes and extensions",
			input:      "di=01;34:ln=01;36:*.tar=01;31",
			wantLoaded: true,
			wantCodes:  map[string]string{"di": "01;34", "ln": "01;36"},
			wantExts:   map[string]string{".tar": "01;31"},
		},
		{
			name:       "items without equals are skipped",
			input:      "garbage:di=01;34::",
			wantLoaded: true,
			wantCodes:  map[string]string{"di": "01;34"},
		},
		{
			name:       "only garbage",
			input:      "foo:bar",
			wantLoaded: false,
		},
		{
			name:       "unknown codes are kept",
			input:      "zz=01;33",
			wantLoaded: true,
			wantCodes:  map[string]string{"zz": "01;33"},
		},
		{
			name:       "value may contain equals",
			input:      "di=a=b",
			wantLoaded: true,
			wantCodes:  map[string]string{"di": "a=b"},
		},
		{
			name:       "star key without dot is a code",
			input:      "*README=01;33",
			wantLoaded: true,
			wantCodes:  map[string]string{"*README": "01;33"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := colordb.New()
			got := db.LoadFromLsColors(tt.input)

			assert.Equal(t, tt.wantLoaded, got)
			assert.Equal(t, tt.wantLoaded, db.Loaded())
			for code, want := range tt.wantCodes {
				value, ok := db.Code(code)
				assert.True(t, ok, "code %s", code)
				assert.Equal(t, want, value)
			}
			for ext, want := range tt.wantExts {
				value, ok := db.Extension(ext)
				assert.True(t, ok, "extension %s", ext)
				assert.Equal(t, want, value)
			}
		})
	}
}

func TestLoadFromLsColors_ReplacesPreviousState(t *testing.T) {
	db := colordb.New()
	require.True(t, db.LoadFromLsColors("di=01;34:*.tar=01;31"))

	assert.False(t, db.LoadFromLsColors("nothing-here"))
	assert.False(t, db.Loaded())
	_, ok := db.Extension(".tar")
	assert.False(t, ok)
}

func TestLoadFromLsColors_DuplicateKeepsFirstPosition(t *testing.T) {
	db := colordb.New()
	require.True(t, db.LoadFromLsColors("di=01;34:ln=01;36:di=00;34"))

	value, _ := db.Code("di")
	assert.Equal(t, "00;34", value)
	assert.Equal(t, "di=00;34:ln=01;36", db.GenerateLsColors())
}

func TestGenerateLsColors_RoundTrip(t *testing.T) {
	inputs := []string{
		"rs=0:di=01;34:ln=01;36",
		"ex=01;32:*.png=01;35:*.tar=01;31",
		"*.gz=01;31",
		colordb.DefaultLsColors,
	}

	for _, input := range inputs {
		db := colordb.New()
		require.True(t, db.LoadFromLsColors(input))
		first := db.GenerateLsColors()

		again := colordb.New()
		require.True(t, again.LoadFromLsColors(first))
		assert.Equal(t, first, again.GenerateLsColors())
	}
}

func TestGenerateLsColors_CodesBeforeExtensions(t *testing.T) {
	db := colordb.New()
	require.True(t, db.LoadFromLsColors("*.tar=01;31:di=01;34"))

	assert.Equal(t, "di=01;34:*.tar=01;31", db.GenerateLsColors())
}

func TestReset(t *testing.T) {
	db := colordb.New()
	assert.Equal(t, "0", db.Reset())

	require.True(t, db.LoadFromLsColors("rs=00:di=01;34"))
	assert.Equal(t, "00", db.Reset())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Run("default variable", func(t *testing.T) {
		t.Setenv("LS_COLORS", "di=01;34")
		db := colordb.New()
		assert.True(t, db.LoadFromEnvironment(""))
		assert.Equal(t, "di=01;34", db.GenerateLsColors())
	})

	t.Run("custom variable", func(t *testing.T) {
		t.Setenv("MY_COLORS", "*.md=01;33")
		db := colordb.New()
		assert.True(t, db.LoadFromEnvironment("MY_COLORS"))
		assert.Equal(t, "*.md=01;33", db.GenerateLsColors())
	})

	t.Run("empty variable", func(t *testing.T) {
		t.Setenv("LS_COLORS", "")
		db := colordb.New()
		require.True(t, db.LoadFromLsColors("di=01;34"))
		assert.False(t, db.LoadFromEnvironment(colordb.DefaultEnvVar))
		assert.False(t, db.Loaded())
	})
}

func TestNewFromEnvironment(t *testing.T) {
	t.Run("uses environment when set", func(t *testing.T) {
		t.Setenv("LS_COLORS", "ln=01;36")
		db, err := colordb.NewFromEnvironment("")
		require.NoError(t, err)
		assert.Equal(t, "ln=01;36", db.GenerateLsColors())
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		t.Setenv("LS_COLORS", "")
		db, err := colordb.NewFromEnvironment("")
		require.NoError(t, err)
		assert.True(t, db.Loaded())
		assert.Equal(t, colordb.DefaultLsColors, db.GenerateLsColors())
	})
}
