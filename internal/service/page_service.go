package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"lingua/backend/internal/logger"
	"lingua/backend/internal/model"
	"lingua/backend/internal/network"
)

// PageResult is a translated web page.
type PageResult struct {
	Title          string `json:"title"`
	TranslatedText string `json:"translatedText"`
}

// PageService translates a web page by URL: fetch, extract the readable
// article, then run the document-translation path.
type PageService interface {
	TranslateURL(ctx context.Context, pageURL, targetLang string) (PageResult, error)
}

type pageService struct {
	client     *network.Client
	translator TranslatorService
	sanitizer  *bluemonday.Policy
}

// NewPageService creates a page translation service.
func NewPageService(client *network.Client, translator TranslatorService) PageService {
	// Strip scripts and layout noise before readability parsing.
	p := bluemonday.UGCPolicy()
	p.AllowElements("article", "section", "header", "footer", "nav", "aside", "main", "figure", "figcaption")
	p.AllowAttrs("id", "class", "lang", "dir").Globally()

	return &pageService{
		client:     client,
		translator: translator,
		sanitizer:  p,
	}
}

func (s *pageService) TranslateURL(ctx context.Context, pageURL, targetLang string) (PageResult, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return PageResult{}, fmt.Errorf("%w: bad url", ErrInvalid)
	}

	body, err := s.client.FetchPage(ctx, pageURL)
	if err != nil {
		logger.Warn("page fetch failed", "module", "service", "action", "fetch", "resource", "page", "result", "failed", "host", parsed.Host, "error", err)
		return PageResult{}, fmt.Errorf("%w: %v", ErrPageFetch, err)
	}

	title := extractTitle(body)
	sanitized := s.sanitizer.Sanitize(string(body))

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(sanitized), parsed)
	if err != nil {
		return PageResult{}, fmt.Errorf("%w: unreadable page: %v", ErrPageFetch, err)
	}

	var buf bytes.Buffer
	if err := article.RenderHTML(&buf); err != nil {
		return PageResult{}, fmt.Errorf("%w: render article: %v", ErrPageFetch, err)
	}

	text := flattenArticle(buf.String())
	if text == "" {
		return PageResult{}, fmt.Errorf("%w: no readable text", ErrPageFetch)
	}

	translated, err := s.translator.TranslateDocument(ctx, text, model.AutoDetect(), targetLang)
	if err != nil {
		return PageResult{}, err
	}

	return PageResult{Title: title, TranslatedText: translated}, nil
}

// extractTitle pulls the <title> element from raw page markup.
func extractTitle(body []byte) string {
	node, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return title
}

// flattenArticle collapses readable-article markup into plain paragraphs.
func flattenArticle(content string) string {
	node, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}

	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "br", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
				buf.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)

	lines := strings.Split(buf.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n\n")
}
