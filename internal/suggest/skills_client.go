package suggest

import (
	"context"
	"log"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// SkillsClient talks to the job-portal suggestions API for positions, skills
// and degrees. Responses are parsed against one fixed schema; anything the
// upstream sends outside it takes the fallback branch instead of being
// format-sniffed.
type SkillsClient struct {
	client *resty.Client
	apiKey string
}

// NewSkillsClient creates a SkillsClient. An empty baseURL or apiKey leaves
// the client in fallback-only mode.
func NewSkillsClient(baseURL, apiKey string) *SkillsClient {
	c := resty.New()
	if baseURL != "" {
		c.SetBaseURL(baseURL)
	}
	return &SkillsClient{client: c, apiKey: apiKey}
}

func (c *SkillsClient) configured() bool {
	return c.apiKey != "" && c.client.BaseURL != ""
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type skillsResponse struct {
	Position string   `json:"position"`
	Skills   []string `json:"skills"`
}

type degreesResponse struct {
	Degrees []string `json:"degrees"`
}

// Positions returns up to ten position titles matching query. API failures
// of any kind degrade to the built-in list.
func (c *SkillsClient) Positions(ctx context.Context, query string) []string {
	if query == "" {
		return []string{}
	}
	if !c.configured() {
		return FallbackPositions(query)
	}

	var body suggestionsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetQueryParam("q", query).
		SetResult(&body).
		Get("/api/suggestions")
	if err != nil || !resp.IsSuccess() || body.Suggestions == nil {
		log.Printf("Position suggestions API unavailable, using fallback: %v", err)
		return FallbackPositions(query)
	}
	return firstStrings(body.Suggestions, maxSuggestions)
}

// SkillsForPosition returns the skill list for a position. There is no
// built-in skill list; failures yield an empty slice.
func (c *SkillsClient) SkillsForPosition(ctx context.Context, position string) []string {
	if position == "" || !c.configured() {
		return []string{}
	}

	var body skillsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetResult(&body).
		Get("/api/skills/" + url.PathEscape(position))
	if err != nil || !resp.IsSuccess() || body.Skills == nil {
		log.Printf("Skills API unavailable for position %q: %v", position, err)
		return []string{}
	}
	return body.Skills
}

// Degrees returns up to ten degree names matching query, with the built-in
// list as fallback.
func (c *SkillsClient) Degrees(ctx context.Context, query string) []string {
	if !c.configured() {
		return FallbackDegrees(query)
	}

	var body degreesResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetQueryParam("q", query).
		SetResult(&body).
		Get("/api/degrees/search")
	if err != nil || !resp.IsSuccess() || body.Degrees == nil {
		log.Printf("Degrees API unavailable, using fallback: %v", err)
		return FallbackDegrees(query)
	}
	return firstStrings(body.Degrees, maxSuggestions)
}
