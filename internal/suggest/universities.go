package suggest

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
)

const (
	universitiesBaseURL = "http://universities.hipolabs.com"
	universityCacheTTL  = time.Hour
	minUniversityQuery  = 2
)

// University mirrors the hipolabs search result shape.
type University struct {
	Name          string   `json:"name"`
	Country       string   `json:"country"`
	AlphaTwoCode  string   `json:"alpha_two_code"`
	StateProvince *string  `json:"state-province"`
	Domains       []string `json:"domains"`
	WebPages      []string `json:"web_pages"`
}

// localInstitutes are Sri Lankan institutes missing from the public dataset.
// They match first and rank above API results.
var localInstitutes = []University{
	{Name: "Sri Lanka Institute of Information Technology (SLIIT)", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"sliit.lk"}, WebPages: []string{"https://www.sliit.lk"}},
	{Name: "Institute of Java and Software Engineering (IJSE)", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"ijse.lk"}, WebPages: []string{"https://www.ijse.lk"}},
	{Name: "NSBM Green University", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"nsbm.ac.lk"}, WebPages: []string{"https://www.nsbm.ac.lk"}},
	{Name: "IIT (Informatics Institute of Technology)", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"iit.ac.lk"}, WebPages: []string{"https://www.iit.ac.lk"}},
	{Name: "NIBM (National Institute of Business Management)", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"nibm.lk"}, WebPages: []string{"https://www.nibm.lk"}},
	{Name: "ANC Education", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"anc.edu.lk"}, WebPages: []string{"https://www.anc.edu.lk"}},
	{Name: "Esoft Metro Campus", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"esoft.lk"}, WebPages: []string{"https://www.esoft.lk"}},
	{Name: "ICBT Campus", Country: "Sri Lanka", AlphaTwoCode: "LK", Domains: []string{"icbtcampus.edu.lk"}, WebPages: []string{"https://www.icbtcampus.edu.lk"}},
}

// UniversityClient searches the hipolabs university dataset with a local
// priority list and a Redis cache in front of the upstream.
type UniversityClient struct {
	client *resty.Client
	cache  *redis.Client
}

// NewUniversityClient creates a UniversityClient. cache may be nil, which
// disables caching without changing results.
func NewUniversityClient(cache *redis.Client) *UniversityClient {
	return &UniversityClient{
		client: resty.New().SetBaseURL(universitiesBaseURL),
		cache:  cache,
	}
}

// NewUniversityClientWithBaseURL is used by tests to point at a stub server.
func NewUniversityClientWithBaseURL(baseURL string, cache *redis.Client) *UniversityClient {
	return &UniversityClient{
		client: resty.New().SetBaseURL(baseURL),
		cache:  cache,
	}
}

// Search returns up to ten universities matching query, local institutes
// first, then Sri Lankan API matches, then global ones. Queries shorter than
// two characters return nothing.
func (c *UniversityClient) Search(ctx context.Context, query string) []University {
	query = strings.TrimSpace(query)
	if len(query) < minUniversityQuery {
		return []University{}
	}

	cacheKey := "universities:" + strings.ToLower(query)
	if cached, ok := c.fromCache(ctx, cacheKey); ok {
		return cached
	}

	term := strings.ToLower(query)
	results := []University{}
	for _, inst := range localInstitutes {
		if strings.Contains(strings.ToLower(inst.Name), term) {
			results = append(results, inst)
		}
	}

	results = mergeUniversities(results, c.search(ctx, query, "Sri Lanka"))
	if len(results) < maxSuggestions {
		results = mergeUniversities(results, c.search(ctx, query, ""))
	}
	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}

	c.toCache(ctx, cacheKey, results)
	return results
}

// SearchByCountry skips the local priority list and queries one country only.
func (c *UniversityClient) SearchByCountry(ctx context.Context, query, country string) []University {
	query = strings.TrimSpace(query)
	if len(query) < minUniversityQuery {
		return []University{}
	}
	results := c.search(ctx, query, country)
	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	return results
}

func (c *UniversityClient) search(ctx context.Context, query, country string) []University {
	req := c.client.R().SetContext(ctx).SetQueryParam("name", query)
	if country != "" {
		req.SetQueryParam("country", country)
	}

	var body []University
	resp, err := req.SetResult(&body).Get("/search")
	if err != nil || !resp.IsSuccess() {
		log.Printf("University search failed for %q: %v", query, err)
		return []University{}
	}
	return body
}

func mergeUniversities(have, more []University) []University {
	for _, u := range more {
		dup := false
		for _, existing := range have {
			if strings.EqualFold(existing.Name, u.Name) {
				dup = true
				break
			}
		}
		if !dup {
			have = append(have, u)
		}
	}
	return have
}

func (c *UniversityClient) fromCache(ctx context.Context, key string) ([]University, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var results []University
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *UniversityClient) toCache(ctx context.Context, key string, results []University) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, raw, universityCacheTTL).Err(); err != nil {
		log.Printf("Failed to cache university results for %s: %v", key, err)
	}
}
