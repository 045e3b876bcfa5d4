package golfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/golf-catalog/internal/course"
)

const (
	DefaultUSGABaseURL = "https://ncrdb.usga.org"
	DefaultUSGATimeout = 15 * time.Second
)

// USGAClient looks courses up in the public USGA Course Rating Database.
// No key is needed, but only rated US courses are listed.
type USGAClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	cache      *Cache
}

// NewUSGAClient creates a new USGA database client
func NewUSGAClient() *USGAClient {
	return &USGAClient{
		baseURL: DefaultUSGABaseURL,
		httpClient: &http.Client{
			Timeout: DefaultUSGATimeout,
		},
		userAgent: "Mozilla/5.0 (compatible; golf-catalog/1.0)",
	}
}

// WithBaseURL points the client at a different host.
func (c *USGAClient) WithBaseURL(baseURL string) *USGAClient {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// WithTimeout sets the per-request timeout.
func (c *USGAClient) WithTimeout(timeout time.Duration) *USGAClient {
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
	return c
}

// WithCache attaches a lookup cache; nil disables caching.
func (c *USGAClient) WithCache(cache *Cache) *USGAClient {
	c.cache = cache
	return c
}

// usgaCourse is one row of the LoadCourses search response
type usgaCourse struct {
	FacilityName string `json:"facilityName"`
	CourseName   string `json:"courseName"`
	City         string `json:"city"`
	State        string `json:"state"`
	CourseID     string `json:"courseId"`
}

type usgaSearchResponse struct {
	Data []usgaCourse `json:"data"`
}

// FindBestMatch searches by name, picks the listing in the record's city
// and reads its tee table. The answer uses the same shape as the Golf
// Course API so callers can treat both sources alike. A listing whose tee
// table cannot be read is returned without tees and is not cached.
func (c *USGAClient) FindBestMatch(ctx context.Context, courseName, location string) (*CourseInfo, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(courseName, location); ok {
			return cached, nil
		}
	}

	city, region := SplitLocation(location)
	state := ""
	if len(region) == 2 {
		state = strings.ToUpper(region)
	}

	courses, err := c.search(ctx, courseName, state)
	if err != nil {
		return nil, fmt.Errorf("searching courses: %w", err)
	}
	if len(courses) == 0 {
		if c.cache != nil {
			c.cache.Set(courseName, location, nil)
		}
		return nil, nil
	}

	best := bestUSGAMatch(courses, courseName, city)
	info := &CourseInfo{
		ClubName:   best.FacilityName,
		CourseName: best.CourseName,
		Location:   Location{City: best.City, State: best.State, Country: "USA"},
	}

	tees, err := c.tees(ctx, best.CourseID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return info, nil
	}
	info.Tees.Male = tees

	if c.cache != nil {
		c.cache.Set(courseName, location, info)
	}
	return info, nil
}

// search queries the LoadCourses endpoint
func (c *USGAClient) search(ctx context.Context, clubName, clubState string) ([]usgaCourse, error) {
	form := url.Values{}
	form.Set("clubName", clubName)
	form.Set("clubCity", "")
	form.Set("clubState", clubState)
	form.Set("clubCountry", "USA")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/NCRListing?handler=LoadCourses", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result usgaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	return result.Data, nil
}

// tees reads the tee table from the course detail page. Rows are
// tee name, par, yardage, slope, rating.
func (c *USGAClient) tees(ctx context.Context, courseID string) ([]TeeInfo, error) {
	detailsURL := fmt.Sprintf("%s/courseTeeInfo?CourseID=%s", c.baseURL, url.QueryEscape(courseID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, detailsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching course details: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var tees []TeeInfo
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return
		}
		cell := func(i int) string { return strings.TrimSpace(cells.Eq(i).Text()) }

		par, _ := strconv.Atoi(cell(1))
		yards, _ := strconv.Atoi(strings.ReplaceAll(cell(2), ",", ""))
		slope, _ := strconv.Atoi(cell(3))
		rating, _ := strconv.ParseFloat(cell(4), 64)
		if par <= 0 || yards <= 0 {
			return
		}
		tees = append(tees, TeeInfo{
			TeeName:      cell(0),
			ParTotal:     par,
			TotalYards:   yards,
			SlopeRating:  slope,
			CourseRating: rating,
		})
	})

	if len(tees) == 0 {
		return nil, fmt.Errorf("no tee information found for course %s", courseID)
	}
	return tees, nil
}

// bestUSGAMatch prefers the same facility name in the same city, then a
// facility containing the name in that city, then any listing in the city,
// then the first result.
func bestUSGAMatch(courses []usgaCourse, name, city string) *usgaCourse {
	key := course.Normalize(name)

	for i := range courses {
		if course.Normalize(courses[i].FacilityName) == key && strings.EqualFold(courses[i].City, city) {
			return &courses[i]
		}
	}
	for i := range courses {
		if strings.Contains(course.Normalize(courses[i].FacilityName), key) && strings.EqualFold(courses[i].City, city) {
			return &courses[i]
		}
	}
	for i := range courses {
		if strings.EqualFold(courses[i].City, city) {
			return &courses[i]
		}
	}
	return &courses[0]
}
