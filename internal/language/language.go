// Package language infers the syntax-highlighting tag for a paste from
// its file extension.
package language

import (
	"path/filepath"
	"strings"
)

// Autodetect asks the service to infer the language itself.
const Autodetect = "autodetect"

// byExtension maps lowercased file extensions to pastery language tags.
// Plain-text extensions like .txt are deliberately absent: the service
// default is already plain text, so the field is omitted instead.
var byExtension = map[string]string{
	"bash":     "bash",
	"c":        "c",
	"cc":       "cpp",
	"clj":      "clojure",
	"cpp":      "cpp",
	"cs":       "csharp",
	"css":      "css",
	"cxx":      "cpp",
	"dart":     "dart",
	"diff":     "diff",
	"erl":      "erlang",
	"ex":       "elixir",
	"exs":      "elixir",
	"go":       "go",
	"h":        "c",
	"hpp":      "cpp",
	"hs":       "haskell",
	"htm":      "html",
	"html":     "html",
	"ini":      "ini",
	"java":     "java",
	"js":       "js",
	"json":     "json",
	"jsx":      "jsx",
	"kt":       "kotlin",
	"lua":      "lua",
	"markdown": "md",
	"md":       "md",
	"ml":       "ocaml",
	"php":      "php",
	"pl":       "perl",
	"ps1":      "powershell",
	"py":       "python",
	"r":        "r",
	"rb":       "rb",
	"rs":       "rust",
	"scala":    "scala",
	"scss":     "scss",
	"sh":       "bash",
	"sql":      "sql",
	"swift":    "swift",
	"tex":      "tex",
	"toml":     "toml",
	"ts":       "ts",
	"tsx":      "tsx",
	"vim":      "vim",
	"xml":      "xml",
	"yaml":     "yaml",
	"yml":      "yaml",
	"zsh":      "bash",
}

// Guess returns the language tag for path based on its file extension.
// The second return is false when the extension is unknown or absent.
func Guess(path string) (string, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", false
	}
	tag, ok := byExtension[strings.ToLower(ext)]
	return tag, ok
}

// Resolve picks the language tag to send. An explicit tag always wins,
// including Autodetect, and is passed through unmodified; the service is
// the authority on what it accepts. Otherwise the file extension is
// consulted. An empty result means the field should be omitted and the
// service default applies.
func Resolve(explicit, path string) string {
	if explicit != "" {
		return explicit
	}
	if path == "" {
		return ""
	}
	tag, _ := Guess(path)
	return tag
}
