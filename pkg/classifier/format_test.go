//go:build linux || darwin

// pkg/classifier/format_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem under t.TempDir, afero BasePathFs
// PURPOSE: Test path classification with symlinks, base directories and errors

package classifier_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dircolors/pkg/classifier"
	"github.com/arthur-debert/dircolors/pkg/colordb"
	"github.com/arthur-debert/dircolors/pkg/filesystem"
	"github.com/arthur-debert/dircolors/pkg/testutil"
	"github.com/arthur-debert/dircolors/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureTree(t *testing.T) string {
	t.Helper()
	return testutil.NewTree(t).
		File("normalfile", 0644).
		File("execfile", 0755).
		File("tarfile.tar", 0644).
		File("image.png", 0644).
		Dir("subdir", 0755).
		Symlink("link.png", "image.png").
		Symlink("linktolink", "link.png").
		Symlink("dirlink", "subdir").
		Symlink("broken", "nowhere.png").
		File("subdir/inner.tar", 0644).
		Symlink("subdir/up.png", "../image.png").
		Build()
}

func TestFormat_FileTypes(t *testing.T) {
	c := defaultClassifier(t)
	root := fixtureTree(t)
	dir := types.DirPath(root)

	tests := []struct {
		name  string
		color string
	}{
		{"normalfile", ""},
		{"execfile", "01;32"},
		{"tarfile.tar", "01;31"},
		{"image.png", "01;35"},
		{"subdir", "01;34"},
		{"link.png", "01;36"},
		{"broken", "01;36"},
		{"subdir/inner.tar", "01;31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertColored(t, c.Format(tt.name, dir, false, false), tt.name, tt.color)
		})
	}
}

func TestFormat_Setuid(t *testing.T) {
	c := defaultClassifier(t)
	root := testutil.NewTree(t).
		File("suidfile", fs.ModeSetuid|0755).
		Build()

	testutil.AssertColored(t, c.Format("suidfile", types.DirPath(root), false, false), "suidfile", "37;41")
}

func TestFormat_BaseDirectoryVariants(t *testing.T) {
	c := defaultClassifier(t)
	root := fixtureTree(t)
	expected := testutil.Wrap("execfile", "01;32")

	t.Run("path", func(t *testing.T) {
		assert.Equal(t, expected, c.Format("execfile", types.DirPath(root), false, false))
	})

	t.Run("absolute path ignores base", func(t *testing.T) {
		abs := filepath.Join(root, "execfile")
		assert.Equal(t, testutil.Wrap(abs, "01;32"), c.Format(abs, types.DirPath("/nonexistent"), false, false))
	})

	t.Run("current directory", func(t *testing.T) {
		abs := filepath.Join(root, "execfile")
		assert.Equal(t, testutil.Wrap(abs, "01;32"), c.Format(abs, types.CurrentDir(), false, false))
	})

	t.Run("descriptor", func(t *testing.T) {
		dir, closer, err := filesystem.NewOS().OpenDir(root)
		require.NoError(t, err)
		defer func() { _ = closer.Close() }()

		assert.Equal(t, expected, c.Format("execfile", dir, false, false))
		// the descriptor is still usable afterwards
		assert.Equal(t, expected, c.Format("execfile", dir, false, false))
	})
}

func TestFormat_Symlinks(t *testing.T) {
	c := defaultClassifier(t)
	root := fixtureTree(t)
	dir := types.DirPath(root)

	tests := []struct {
		name       string
		path       string
		follow     bool
		showTarget bool
		want       string
	}{
		{
			name: "link colored as link",
			path: "link.png",
			want: testutil.Wrap("link.png", "01;36"),
		},
		{
			name:   "follow uses target type",
			path:   "link.png",
			follow: true,
			want:   testutil.Wrap("link.png", "01;35"),
		},
		{
			name:       "follow wins over show target",
			path:       "link.png",
			follow:     true,
			showTarget: true,
			want:       testutil.Wrap("link.png", "01;35"),
		},
		{
			name:       "show target",
			path:       "link.png",
			showTarget: true,
			want:       testutil.Wrap("link.png", "01;36") + " -> " + testutil.Wrap("image.png", "01;35"),
		},
		{
			name:       "link to directory",
			path:       "dirlink",
			showTarget: true,
			want:       testutil.Wrap("dirlink", "01;36") + " -> " + testutil.Wrap("subdir", "01;34"),
		},
		{
			name:       "link to link dereferences once",
			path:       "linktolink",
			showTarget: true,
			want:       testutil.Wrap("linktolink", "01;36") + " -> " + testutil.Wrap("link.png", "01;36"),
		},
		{
			name:       "broken link",
			path:       "broken",
			showTarget: true,
			want:       testutil.Wrap("broken", "01;36") + " -> " + testutil.Wrap("nowhere.png", "40;31;01") + " [broken link]",
		},
		{
			name:       "relative target resolves next to link",
			path:       "subdir/up.png",
			showTarget: true,
			want:       testutil.Wrap("subdir/up.png", "01;36") + " -> " + testutil.Wrap("../image.png", "01;35"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Format(tt.path, dir, tt.follow, tt.showTarget))
		})
	}
}

func TestFormat_FollowBrokenLinkReportsStatError(t *testing.T) {
	c := defaultClassifier(t)
	root := fixtureTree(t)

	got := c.Format("broken", types.DirPath(root), true, false)
	assert.Equal(t, "broken [Error stat-ing: no such file or directory]", got)
}

func TestFormat_StatErrors(t *testing.T) {
	c := defaultClassifier(t)
	root := fixtureTree(t)

	t.Run("missing file", func(t *testing.T) {
		got := c.Format("missing.png", types.DirPath(root), false, false)
		assert.Equal(t, "missing.png [Error stat-ing: no such file or directory]", got)
	})

	t.Run("missing base directory", func(t *testing.T) {
		got := c.Format("execfile", types.DirPath(filepath.Join(root, "nope")), false, false)
		assert.Equal(t, "execfile [Error stat-ing: no such file or directory]", got)
	})

	t.Run("path through a file", func(t *testing.T) {
		got := c.Format("normalfile/child", types.DirPath(root), false, false)
		assert.Equal(t, "normalfile/child [Error stat-ing: not a directory]", got)
	})
}

func TestFormat_UnloadedIsIdentity(t *testing.T) {
	c := classifier.New(colordb.New(), nil)
	root := fixtureTree(t)

	assert.Equal(t, "link.png", c.Format("link.png", types.DirPath(root), false, true))
	assert.Equal(t, "missing", c.Format("missing", types.DirPath(root), false, false))
}

func TestFormat_AferoBackend(t *testing.T) {
	root := fixtureTree(t)
	db := colordb.New()
	require.NoError(t, db.LoadDefaults())
	c := classifier.New(db, filesystem.NewAferoFS(afero.NewBasePathFs(afero.NewOsFs(), root)))

	dir := types.CurrentDir()
	testutil.AssertColored(t, c.Format("/execfile", dir, false, false), "/execfile", "01;32")
	assert.Equal(t,
		testutil.Wrap("/link.png", "01;36")+" -> "+testutil.Wrap("image.png", "01;35"),
		c.Format("/link.png", dir, false, true))
	testutil.AssertColored(t, c.Format("/link.png", dir, true, false), "/link.png", "01;35")
	testutil.AssertContains(t, c.Format("/missing", dir, false, false), "[Error stat-ing:")
}

func TestFormat_AferoMemMapFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/data/photos", 0755))
	require.NoError(t, afero.WriteFile(mem, "/data/run.sh", nil, 0755))
	require.NoError(t, afero.WriteFile(mem, "/data/backup.tar", nil, 0644))

	db := colordb.New()
	require.NoError(t, db.LoadDefaults())
	c := classifier.New(db, filesystem.NewAferoFS(mem))
	dir := types.DirPath("/data")

	testutil.AssertColored(t, c.Format("photos", dir, false, true), "photos", "01;34")
	testutil.AssertColored(t, c.Format("run.sh", dir, false, true), "run.sh", "01;32")
	testutil.AssertColored(t, c.Format("backup.tar", dir, false, true), "backup.tar", "01;31")
}
