package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"mpmcp/internal/domain"
)

// SearchDocumentation queries the developer documentation index.
func (c *Client) SearchDocumentation(ctx context.Context, query domain.DocSearchQuery) (domain.DocSearchResponse, error) {
	limit := query.MaxResults
	if limit == 0 {
		limit = domain.DefaultSearchLimit
	}

	params := url.Values{}
	params.Set("term", query.Term)
	params.Set("lang", query.Language)
	params.Set("siteId", query.SiteID)
	params.Set("maxResults", strconv.Itoa(limit))

	var resp domain.DocSearchResponse
	err := c.DoJSON(ctx, Request{
		Method: http.MethodGet,
		URL:    c.docsBaseURL + domain.DocsSearchPath,
		Query:  params,
	}, &resp)
	if err != nil {
		return domain.DocSearchResponse{}, err
	}
	return resp, nil
}
