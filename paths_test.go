package aothost

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePath(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		for _, p := range []string{"/proj/src", "/proj/src/", `\proj\src`, "/proj//src/./gen"} {
			once := normalizePath(p)
			require.Equal(t, once, normalizePath(once))
		}
	})

	t.Run("separator and trailing slash variants normalize identically", func(t *testing.T) {
		require.Equal(t, "/proj/src", normalizePath("/proj/src/"))
		require.Equal(t, "/proj/src", normalizePath(`/proj\src`))
		require.Equal(t, "/proj/src/gen", normalizePath("/proj/src/./gen/"))
	})
}

func TestStripExt(t *testing.T) {
	t.Run("strips known source extensions", func(t *testing.T) {
		require.Equal(t, "/a/app", stripExt("/a/app.ts"))
		require.Equal(t, "/a/app", stripExt("/a/app.d.ts"))
		require.Equal(t, "/a/app", stripExt("/a/app.js"))
		require.Equal(t, "/a/app", stripExt("/a/app.jsx"))
		require.Equal(t, "/a/app", stripExt("/a/app.tsx"))
	})

	t.Run("leaves unknown extensions alone", func(t *testing.T) {
		require.Equal(t, "/a/app.css", stripExt("/a/app.css"))
		require.Equal(t, "/a/app", stripExt("/a/app"))
	})
}

func TestIsGeneratedFile(t *testing.T) {
	t.Run("recognizes factory and stylesheet artifacts", func(t *testing.T) {
		require.True(t, isGeneratedFile("/a/app.ngfactory.ts"))
		require.True(t, isGeneratedFile("/a/app.ngstyle.ts"))
		require.True(t, isGeneratedFile("/a/app.css.ts"))
		require.True(t, isGeneratedFile("/a/app.css.shim.ts"))
		require.True(t, isGeneratedFile("/a/app.ngfactory"))
	})

	t.Run("rejects ordinary sources", func(t *testing.T) {
		require.False(t, isGeneratedFile("/a/app.component.ts"))
		require.False(t, isGeneratedFile("/a/factory.ts"))
	})
}

func TestDependencyModuleID(t *testing.T) {
	t.Run("returns the id after the marker", func(t *testing.T) {
		require.Equal(t, "rxjs/Observable", dependencyModuleID("/proj/node_modules/rxjs/Observable"))
	})

	t.Run("uses the last marker for nested dependencies", func(t *testing.T) {
		require.Equal(t, "b/lib/x", dependencyModuleID("/proj/node_modules/a/node_modules/b/lib/x"))
	})

	t.Run("is empty outside dependency directories", func(t *testing.T) {
		require.Empty(t, dependencyModuleID("/proj/src/app/main"))
	})
}

func TestDotRelative(t *testing.T) {
	t.Run("prefixes same directory targets", func(t *testing.T) {
		require.Equal(t, "./app", dotRelative("/proj/src", "/proj/src/app"))
		require.Equal(t, "./a/b", dotRelative("/proj/src", "/proj/src/a/b"))
	})

	t.Run("ascends with parent markers", func(t *testing.T) {
		require.Equal(t, "../lib/util", dotRelative("/proj/src/app", "/proj/src/lib/util"))
		require.Equal(t, "../../other", dotRelative("/proj/src/a/b", "/proj/src/other"))
	})
}
