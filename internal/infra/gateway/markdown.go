package gateway

import (
	"fmt"
	"strconv"
	"strings"

	"mpmcp/internal/domain"
)

const sectionSeparator = "\n\n---\n\n"

type listingRecord struct {
	Name      string
	ID        string
	Type      string
	Thumbnail string
}

func renderListing(records []listingRecord) string {
	sections := make([]string, 0, len(records))
	for _, r := range records {
		var b strings.Builder
		fmt.Fprintf(&b, "## %s\n\nID: %s", r.Name, r.ID)
		if r.Type != "" {
			fmt.Fprintf(&b, "\n\nType: %s", r.Type)
		}
		if r.Thumbnail != "" {
			fmt.Fprintf(&b, "\n\nThumbnail: %s", r.Thumbnail)
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, sectionSeparator)
}

// renderSearchResults builds the markdown digest for a documentation
// search. Results carrying neither title nor content are dropped; the count
// in the subheading reflects what is actually rendered. Returns "" when
// nothing survives the filter.
func renderSearchResults(query domain.DocSearchQuery, results []domain.DocResult) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		if r.Title == "" && r.Content == "" {
			continue
		}
		title := r.Title
		if title == "" {
			title = "Untitled"
		}
		content := r.Content
		if content == "" {
			content = "No description available"
		}
		link := domain.BuildDocumentationURL(query.SiteID, query.Language, r.Path)
		score := strconv.FormatFloat(r.Score, 'g', -1, 64)
		blocks = append(blocks, fmt.Sprintf("## %s\n\n%s\n\n🔗 [Read more](%s)\n\nScore: %s", title, content, link, score))
	}
	if len(blocks) == 0 {
		return ""
	}

	header := fmt.Sprintf("# Search Results for %q\n\nShowing %d results\n\n", query.Term, len(blocks))
	return header + strings.Join(blocks, sectionSeparator)
}
