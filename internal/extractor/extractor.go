package extractor

import (
	"regexp"

	"link_extractor/internal/models"
)

var (
	reBlogHref = regexp.MustCompile(`href="(/blog/[^"]*)"`)
)

// ExtractBlogLinks scans markup left to right and collects every captured
// /blog/ path from href="..." attributes, in order of appearance. This is a
// textual match, not a DOM parse: an unescaped quote inside an href value
// truncates the capture at the next quote. Duplicates are kept.
func ExtractBlogLinks(markup string) []string {
	matches := reBlogHref.FindAllStringSubmatch(markup, -1)

	links := make([]string, 0, len(matches))
	for _, match := range matches {
		if len(match) > 1 {
			links = append(links, match[1])
		}
	}
	return links
}

type Extractor struct {
	re      *regexp.Regexp
	baseURL string
}

// New builds an extractor for href="<pathPrefix>..." attributes, rendering
// each captured path as an absolute URL under baseURL. The default config
// values reproduce ExtractBlogLinks exactly.
func New(pathPrefix, baseURL string) (*Extractor, error) {
	re, err := regexp.Compile(`href="(` + regexp.QuoteMeta(pathPrefix) + `[^"]*)"`)
	if err != nil {
		return nil, err
	}

	return &Extractor{
		re:      re,
		baseURL: baseURL,
	}, nil
}

func (e *Extractor) Extract(markup string) []models.BlogLink {
	matches := e.re.FindAllStringSubmatch(markup, -1)

	links := make([]models.BlogLink, 0, len(matches))
	for _, match := range matches {
		if len(match) > 1 {
			links = append(links, models.BlogLink{
				Path:        match[1],
				AbsoluteURL: e.baseURL + match[1],
			})
		}
	}
	return links
}
