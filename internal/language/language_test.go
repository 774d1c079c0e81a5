package language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveExplicitWins(t *testing.T) {
	require.Equal(t, "foo", Resolve("foo", "script.py"))
	require.Equal(t, Autodetect, Resolve(Autodetect, "script.py"))
	require.Equal(t, Autodetect, Resolve(Autodetect, ""))
}

func TestResolveFromExtension(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"script.py", "python"},
		{"main.go", "go"},
		{"lib.rs", "rust"},
		{"MAIN.PY", "python"},
		{"/tmp/deploy.yml", "yaml"},
		{"notes.txt", ""},
		{"data.unknownext", ""},
		{"Makefile", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve("", tt.path))
		})
	}
}

func TestResolveStdin(t *testing.T) {
	require.Equal(t, "", Resolve("", ""))
}

func TestGuess(t *testing.T) {
	tag, ok := Guess("handler.ts")
	require.True(t, ok)
	require.Equal(t, "ts", tag)

	_, ok = Guess("archive.unknownext")
	require.False(t, ok)

	_, ok = Guess("")
	require.False(t, ok)
}

func TestTableEntries(t *testing.T) {
	for ext, tag := range byExtension {
		require.NotEmpty(t, tag, ext)
		require.Equal(t, strings.ToLower(ext), ext, "keys must be lowercase")
		require.False(t, strings.HasPrefix(ext, "."), "keys must not carry the dot")
	}
}
