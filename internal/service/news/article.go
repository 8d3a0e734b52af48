package news

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	xhttp "StockSight/pkg/http"
)

const (
	// maxArticleChars bounds the text handed to the summarizer; anything
	// past this adds cost without improving the summary.
	maxArticleChars = 4000

	// maxParagraphs is how many body paragraphs to take when the page has
	// no usable meta description.
	maxParagraphs = 3
)

// ArticleExtractor pulls readable text out of a news article page.
type ArticleExtractor struct {
	http *xhttp.Client
}

// NewArticleExtractor creates an extractor with the given HTTP client.
func NewArticleExtractor(hc *xhttp.Client) *ArticleExtractor {
	return &ArticleExtractor{http: hc}
}

// Extract fetches url and returns its meta description when present,
// otherwise the leading paragraphs of the article body (falling back to
// the page body), truncated to maxArticleChars.
func (a *ArticleExtractor) Extract(ctx context.Context, url string) (string, error) {
	resp, err := a.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    url,
	})
	if err != nil {
		return "", fmt.Errorf("fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("fetch article: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse article: %w", err)
	}

	if desc := metaDescription(doc); desc != "" {
		return truncateText(desc), nil
	}
	if text := leadingParagraphs(doc.Find("article p")); text != "" {
		return truncateText(text), nil
	}
	if text := leadingParagraphs(doc.Find("p")); text != "" {
		return truncateText(text), nil
	}
	return "", fmt.Errorf("parse article: no readable text")
}

func metaDescription(doc *goquery.Document) string {
	for _, sel := range []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}
	return ""
}

func leadingParagraphs(sel *goquery.Selection) string {
	var sb strings.Builder
	taken := 0
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return true
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
		taken++
		return taken < maxParagraphs
	})
	return sb.String()
}

// truncateText caps text at maxArticleChars bytes without splitting a
// UTF-8 rune.
func truncateText(text string) string {
	if len(text) <= maxArticleChars {
		return text
	}
	cut := maxArticleChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
