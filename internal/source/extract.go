// extract.go - URL extraction from HTML and Markdown inputs
package source

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	bareURLRe      = regexp.MustCompile(`https?://[^\s<>"{}|\\^\[\]` + "`" + `()]+`)
)

// skipLink reports whether an anchor target should be ignored:
// empty hrefs, page anchors, and non-http schemes
func skipLink(link string) bool {
	return link == "" ||
		strings.HasPrefix(link, "#") ||
		strings.HasPrefix(link, "javascript:") ||
		strings.HasPrefix(link, "mailto:")
}

// extractHTMLLinks extracts anchor targets from an HTML document,
// resolving relative hrefs against base
func extractHTMLLinks(body io.Reader, base string) ([]string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}

	var links []string
	tokenizer := html.NewTokenizer(body)

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			err := tokenizer.Err()
			if err == io.EOF {
				return links, nil
			}
			return links, err

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key != "href" {
					continue
				}
				if skipLink(attr.Val) {
					break
				}
				parsed, err := url.Parse(attr.Val)
				if err != nil {
					break
				}
				links = append(links, baseURL.ResolveReference(parsed).String())
				break
			}
		}
	}
}

// extractMarkdownLinks extracts http(s) URLs from Markdown content.
// Both [text](url) links and bare URLs are found; URLs are returned in
// document order with duplicates removed.
func extractMarkdownLinks(content string) []string {
	type match struct {
		url string
		pos int
	}
	var found []match

	// [text](url) links, remembering their spans so bare-URL scanning
	// does not pick the same URL up twice
	spans := markdownLinkRe.FindAllStringSubmatchIndex(content, -1)
	for _, m := range spans {
		link := strings.TrimSpace(content[m[4]:m[5]])
		if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
			found = append(found, match{url: link, pos: m[0]})
		}
	}

	for _, m := range bareURLRe.FindAllStringIndex(content, -1) {
		inside := false
		for _, span := range spans {
			if m[0] >= span[0] && m[1] <= span[1] {
				inside = true
				break
			}
		}
		if !inside {
			found = append(found, match{url: content[m[0]:m[1]], pos: m[0]})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	var urls []string
	seen := make(map[string]bool)
	for _, m := range found {
		if !seen[m.url] {
			urls = append(urls, m.url)
			seen[m.url] = true
		}
	}
	return urls
}
