package golfapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.golfcourseapi.com"
	DefaultTimeout = 10 * time.Second
)

// ErrNoAPIKey is returned when a search is attempted without a key.
var ErrNoAPIKey = errors.New("golf course API key not configured")

// Client is a client for the Golf Course API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

// NewClient creates a new Golf Course API client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithBaseURL points the client at a different API host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
	return c
}

// WithCache attaches a lookup cache; nil disables caching.
func (c *Client) WithCache(cache *Cache) *Client {
	c.cache = cache
	return c
}

// Location represents course location information
type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TeeInfo represents tee-specific course information
type TeeInfo struct {
	TeeName       string  `json:"tee_name"`
	CourseRating  float64 `json:"course_rating"`
	SlopeRating   int     `json:"slope_rating"`
	TotalYards    int     `json:"total_yards"`
	NumberOfHoles int     `json:"number_of_holes"`
	ParTotal      int     `json:"par_total"`
}

// Tees represents all tee options at a course
type Tees struct {
	Female []TeeInfo `json:"female"`
	Male   []TeeInfo `json:"male"`
}

// CourseInfo represents golf course information from the API
type CourseInfo struct {
	ID         int      `json:"id"`
	ClubName   string   `json:"club_name"`
	CourseName string   `json:"course_name"`
	Location   Location `json:"location"`
	Tees       Tees     `json:"tees"`
}

// SearchResult represents the API search response
type SearchResult struct {
	Courses []CourseInfo `json:"courses"`
}

// Search searches for golf courses by name
func (c *Client) Search(ctx context.Context, searchQuery string) ([]CourseInfo, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Add("search_query", searchQuery)
	reqURL := fmt.Sprintf("%s/v1/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Authorization: Key <key>
	req.Header.Set("Authorization", fmt.Sprintf("Key %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return result.Courses, nil
}

// FindBestMatch searches for a course by name and free-text location
// ("City, Region") and returns the best match, or nil when the API has none.
func (c *Client) FindBestMatch(ctx context.Context, courseName, location string) (*CourseInfo, error) {
	city, region := SplitLocation(location)

	if c.cache != nil {
		if cached, ok := c.cache.Get(courseName, location); ok {
			return cached, nil
		}
	}

	searchQuery := strings.TrimSpace(courseName)
	if city != "" {
		searchQuery = fmt.Sprintf("%s %s", searchQuery, city)
	}

	courses, err := c.Search(ctx, searchQuery)
	if err != nil {
		return nil, fmt.Errorf("searching courses: %w", err)
	}

	if len(courses) == 0 {
		// Negative results are cached too, to avoid repeated failed lookups
		if c.cache != nil {
			c.cache.Set(courseName, location, nil)
		}
		return nil, nil
	}

	var bestMatch *CourseInfo

	if city != "" {
		for i := range courses {
			if strings.EqualFold(courses[i].Location.City, city) {
				bestMatch = &courses[i]
				break
			}
		}
	}

	if bestMatch == nil && region != "" {
		for i := range courses {
			if strings.EqualFold(courses[i].Location.State, region) || strings.EqualFold(courses[i].Location.Country, region) {
				bestMatch = &courses[i]
				break
			}
		}
	}

	if bestMatch == nil {
		bestMatch = &courses[0]
	}

	if c.cache != nil {
		c.cache.Set(courseName, location, bestMatch)
	}

	return bestMatch, nil
}

// GetBestTee returns the longest championship tee (prefers men's tees)
func (info *CourseInfo) GetBestTee() *TeeInfo {
	if len(info.Tees.Male) > 0 {
		for i := range info.Tees.Male {
			teeName := strings.ToLower(info.Tees.Male[i].TeeName)
			if strings.Contains(teeName, "champ") || strings.Contains(teeName, "black") || strings.Contains(teeName, "tips") {
				return &info.Tees.Male[i]
			}
		}
		return longest(info.Tees.Male)
	}

	if len(info.Tees.Female) > 0 {
		return longest(info.Tees.Female)
	}

	return nil
}

// HasCoordinates reports whether the API returned a usable position.
func (info *CourseInfo) HasCoordinates() bool {
	return info.Location.Latitude != 0 || info.Location.Longitude != 0
}

func longest(tees []TeeInfo) *TeeInfo {
	best := &tees[0]
	for i := range tees {
		if tees[i].TotalYards > best.TotalYards {
			best = &tees[i]
		}
	}
	return best
}

// SplitLocation splits "City, Region" into its first and last parts.
// "Inverness, Nova Scotia, Canada" yields "Inverness" and "Canada".
func SplitLocation(location string) (city, region string) {
	parts := strings.Split(location, ",")
	city = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		region = strings.TrimSpace(parts[len(parts)-1])
	}
	return city, region
}
