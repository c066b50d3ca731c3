package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Path returns the file system path of a file:// URI.
func (u DocumentURI) Path() (string, error) {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return "", fmt.Errorf("parse document uri %q: %w", u, err)
	}
	if parsed.Scheme != "file" {
		return "", fmt.Errorf("unsupported URI scheme %q", parsed.Scheme)
	}
	return filepath.FromSlash(parsed.Path), nil
}

func PathToURI(path string) DocumentURI {
	uri := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return DocumentURI(uri.String())
}
