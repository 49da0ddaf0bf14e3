// source.go - URL list loading
package source

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the URL list from filename. Files ending in .md are scanned
// for Markdown links, .html/.htm files are parsed for anchor targets
// (resolved against base when given), and anything else is read as one
// URL per line.
//
// Line-delimited input is passed through as-is after trimming: a blank
// line becomes an empty work item and will surface on the error stream
// when checked.
func Load(filename, base string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md":
		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}
		return extractMarkdownLinks(string(content)), nil

	case ".html", ".htm":
		file, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}
		defer file.Close()
		return extractHTMLLinks(file, base)

	default:
		return loadLines(filename)
	}
}

// loadLines reads one URL per line, trimming surrounding whitespace
func loadLines(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		urls = append(urls, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return urls, nil
}
