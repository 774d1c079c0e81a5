package paste

import (
	"testing"

	"github.com/stretchr/testify/require"

	"patisserie/internal/duration"
)

func TestBuildFromFile(t *testing.T) {
	req, err := Build(Input{
		Content: []byte("hello"),
		Path:    "/home/user/notes.txt",
		APIKey:  "key",
	})
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), req.Content)
	require.Equal(t, "notes.txt", req.Title)
	require.Equal(t, "", req.Language)
	require.Equal(t, 1440, req.Duration)
	require.Equal(t, 0, req.MaxViews)
	require.Equal(t, "key", req.APIKey)
}

func TestBuildExplicitOverrides(t *testing.T) {
	req, err := Build(Input{
		Content:  []byte("x"),
		Path:     "script.py",
		Title:    "My Paste",
		Language: "autodetect",
		Duration: "2y",
		MaxViews: 3,
		APIKey:   "key",
	})
	require.NoError(t, err)
	require.Equal(t, "My Paste", req.Title)
	require.Equal(t, "autodetect", req.Language)
	require.Equal(t, 1051200, req.Duration)
	require.Equal(t, 3, req.MaxViews)
}

func TestBuildFromStdin(t *testing.T) {
	req, err := Build(Input{
		Content: []byte("x"),
		APIKey:  "key",
	})
	require.NoError(t, err)
	require.Equal(t, "", req.Title)
	require.Equal(t, "", req.Language)
}

func TestBuildGuessesLanguage(t *testing.T) {
	req, err := Build(Input{
		Content: []byte("print('hi')"),
		Path:    "script.py",
		APIKey:  "key",
	})
	require.NoError(t, err)
	require.Equal(t, "python", req.Language)
}

func TestBuildMissingAPIKey(t *testing.T) {
	_, err := Build(Input{Content: []byte("x")})
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestBuildBadDuration(t *testing.T) {
	_, err := Build(Input{
		Content:  []byte("x"),
		Duration: "5x",
		APIKey:   "key",
	})
	var perr *duration.ParseError
	require.ErrorAs(t, err, &perr)
}
