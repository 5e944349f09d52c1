package service

import (
	"context"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"scoop-harvester/config"
	"scoop-harvester/domain"
)

const (
	// ledeWordLimit keeps the leading portion of extracted text: editorial
	// ledes live near the top, trailing content is often sidebar noise.
	ledeWordLimit = 500

	// ShortBodyWordLimit marks bodies that get an extra simplification pass
	// before variant generation.
	ShortBodyWordLimit = 150

	// minExtractedLength guards against readability extracting only a title
	// or stray metadata.
	minExtractedLength = 200

	maxResponseBytes = 4 << 20
)

// fullTextService implementation.
type fullTextService struct {
	httpClient *http.Client
	userAgent  string
	sanitizer  *bluemonday.Policy
	logger     *slog.Logger
}

// NewFullTextService creates a new full text service.
func NewFullTextService(cfg *config.PipelineConfig, httpCfg *config.HTTPConfig, logger *slog.Logger) FullTextService {
	return &fullTextService{
		httpClient: &http.Client{Timeout: cfg.ExtractTimeout},
		userAgent:  httpCfg.UserAgent,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}
}

// Extract fetches the article page and recovers its main body text.
// Best effort with a bounded timeout: network errors, bad statuses, and
// parse failures all yield an empty string, never an error.
func (s *fullTextService) Extract(ctx context.Context, articleURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		s.logger.Debug("invalid article URL", "url", articleURL, "error", err)
		return ""
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Debug("article fetch failed", "url", articleURL, "error", err)
		return ""
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		s.logger.Debug("article fetch returned non-200 status", "url", articleURL, "status", resp.Status)
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		s.logger.Debug("article body read failed", "url", articleURL, "error", err)
		return ""
	}

	return s.extractText(string(raw))
}

// extractText runs readability over the page, falling back to paragraph
// scraping when readability yields too little.
func (s *fullTextService) extractText(rawHTML string) string {
	trimmed := strings.TrimSpace(rawHTML)
	if trimmed == "" {
		return ""
	}

	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed)
	}

	article, err := readability.FromReader(strings.NewReader(trimmed), nil)
	if err == nil {
		var textBuf strings.Builder
		if err := article.RenderText(&textBuf); err == nil {
			text := strings.TrimSpace(textBuf.String())
			// Sometimes readability extracts only the title or metadata while
			// the actual content is much larger.
			if len(text) >= minExtractedLength {
				return normalizeWhitespace(text)
			}
		}
	}

	return extractParagraphs(trimmed)
}

// BuildBody chooses the transformation input for one article: the leading
// words of the extracted full text when available, otherwise the sanitized
// feed summary.
func (s *fullTextService) BuildBody(fullText, feedSummary string) string {
	if strings.TrimSpace(fullText) != "" {
		return domain.TruncateWords(fullText, ledeWordLimit)
	}

	sanitized := html.UnescapeString(s.sanitizer.Sanitize(feedSummary))

	return normalizeWhitespace(sanitized)
}

// extractParagraphs pulls text from paragraph-level elements, preserving
// reading order.
func extractParagraphs(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	doc.Find("script, style, nav, aside, footer").Remove()

	var parts []string

	doc.Find("p, h1, h2, h3, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			parts = append(parts, text)
		}
	})

	return normalizeWhitespace(strings.Join(parts, " "))
}

func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
