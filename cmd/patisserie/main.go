package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"patisserie/client"
	"patisserie/internal/config"
	"patisserie/internal/paste"
)

type options struct {
	apiKey   string
	duration string
	language string
	title    string
	maxViews int
	baseURL  string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "patisserie [PATH]",
		Short: "Upload a file or stdin to pastery.net and print the paste URL",
		Long: `patisserie uploads a file (or standard input when no PATH is given) to
https://www.pastery.net and prints the resulting paste URL.

An API key is required; pass --api-key or set ` + config.APIKeyEnv + `.
You can find your key at https://www.pastery.net/account/.

Examples:
  patisserie notes.txt                     Upload a file, expires in 1 day
  git diff | patisserie -l diff -d 1h      Upload stdin as a diff for an hour
  patisserie -t "My Paste" -d 2mo main.go  Custom title, two month lifetime`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, opts, path)
		},
	}

	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "pastery API key (defaults to $"+config.APIKeyEnv+")")
	cmd.Flags().StringVarP(&opts.duration, "duration", "d", config.DefaultDuration, "paste lifetime, e.g. 30m, 12h, 1d, 2mo, 1y")
	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", `language tag for syntax highlighting ("autodetect" lets the service decide)`)
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "paste title (defaults to the file name)")
	cmd.Flags().IntVar(&opts.maxViews, "max-views", 0, "delete the paste after this many views")
	cmd.Flags().StringVar(&opts.baseURL, "url", client.DefaultBaseURL, "pastery service URL")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log request details to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	if opts.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	apiKey := opts.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(config.APIKeyEnv)
	}

	content, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	req, err := paste.Build(paste.Input{
		Content:  content,
		Path:     path,
		Title:    opts.title,
		Language: opts.language,
		Duration: opts.duration,
		MaxViews: opts.maxViews,
		APIKey:   apiKey,
	})
	if err != nil {
		return err
	}

	slog.Debug("submitting paste",
		"bytes", len(req.Content),
		"title", req.Title,
		"language", req.Language,
		"duration_minutes", req.Duration,
	)

	c := client.New(client.WithBaseURL(opts.baseURL))
	pasteURL, err := c.Create(cmd.Context(), req.Content, client.CreateOptions{
		APIKey:   req.APIKey,
		Title:    req.Title,
		Language: req.Language,
		Duration: req.Duration,
		MaxViews: req.MaxViews,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), pasteURL)
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return content, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
