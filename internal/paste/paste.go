// Package paste assembles a paste submission from raw CLI inputs.
package paste

import (
	"errors"
	"path/filepath"

	"patisserie/internal/config"
	"patisserie/internal/duration"
	"patisserie/internal/language"
)

// ErrMissingAPIKey is returned when no API key was resolved from either
// the --api-key flag or the environment.
var ErrMissingAPIKey = errors.New("no API key: pass --api-key or set " + config.APIKeyEnv)

// Input carries the raw CLI-level values before resolution.
type Input struct {
	Content []byte
	// Path is the file the content was read from; empty for stdin.
	Path     string
	Title    string
	Language string
	Duration string
	MaxViews int
	APIKey   string
}

// Request is a fully resolved paste submission, ready for transport.
type Request struct {
	Content  []byte
	Title    string
	Language string
	// Duration is the paste lifetime in minutes.
	Duration int
	MaxViews int
	APIKey   string
}

// Build resolves in into a Request: the title falls back to the file
// name, the language to an extension guess, and the duration to the
// default lifetime. It fails before any transport is constructed if the
// API key is absent or the duration cannot be parsed. Build performs no
// I/O.
func Build(in Input) (*Request, error) {
	if in.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	d := in.Duration
	if d == "" {
		d = config.DefaultDuration
	}
	minutes, err := duration.Parse(d)
	if err != nil {
		return nil, err
	}

	title := in.Title
	if title == "" && in.Path != "" {
		title = filepath.Base(in.Path)
	}

	return &Request{
		Content:  in.Content,
		Title:    title,
		Language: language.Resolve(in.Language, in.Path),
		Duration: minutes,
		MaxViews: in.MaxViews,
		APIKey:   in.APIKey,
	}, nil
}
