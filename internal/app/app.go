package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"link_extractor/internal/config"
	"link_extractor/internal/extractor"
)

// The original throwaway sample: two anchors from the blog index. Used when
// no argument is given and nothing is piped on stdin.
const sampleMarkup = `
<a href="/blog/introducing-cowork">Introducing Cowork</a>
<a href="/blog/claude-3-5-sonnet">Claude 3.5 Sonnet</a>
`

type ExtractorApp struct {
	config     *config.ExtractorConfig
	extractor  *extractor.Extractor
	args       []string
	stdin      io.Reader
	stdinPiped bool
	out        io.Writer
}

func NewExtractorApp(cfg *config.ExtractorConfig, args []string) (*ExtractorApp, error) {
	ex, err := extractor.New(cfg.Source.PathPrefix, cfg.Source.BaseURL)

	if err != nil {
		return nil, err
	}

	return &ExtractorApp{
		config:     cfg,
		extractor:  ex,
		args:       args,
		stdin:      os.Stdin,
		stdinPiped: stdinIsPiped(),
		out:        os.Stdout,
	}, nil
}

func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func (a *ExtractorApp) readMarkup() (string, error) {
	if len(a.args) == 0 {
		if a.stdinPiped {
			return a.readStdin()
		}
		return sampleMarkup, nil
	}

	if a.args[0] == "-" {
		return a.readStdin()
	}

	data, err := os.ReadFile(a.args[0])
	if err != nil {
		return "", fmt.Errorf("can't read markup file %s: %w", a.args[0], err)
	}
	return string(data), nil
}

func (a *ExtractorApp) readStdin() (string, error) {
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("can't read markup from stdin: %w", err)
	}
	return string(data), nil
}

func (a *ExtractorApp) Run() error {
	markup, err := a.readMarkup()

	if err != nil {
		return err
	}

	links := a.extractor.Extract(markup)

	fmt.Fprintln(a.out, a.config.Output.Intro)
	for _, link := range links {
		fmt.Fprintf(a.out, " %s\n", link.AbsoluteURL)
	}

	log.Printf("extracted %d links from %s\n", len(links), a.config.Source.Name)

	return nil
}
