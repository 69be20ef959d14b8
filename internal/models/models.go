package models

// BlogLink pairs a captured link path with its rendered absolute URL.
// The path always occurs verbatim in the scanned markup.
type BlogLink struct {
	Path        string
	AbsoluteURL string
}
