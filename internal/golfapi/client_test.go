package golfapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, statusCode int, response SearchResult, calls *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			*calls++
		}
		if r.Method != http.MethodGet {
			t.Errorf("Method = %s, want GET", r.Method)
		}
		if !strings.Contains(r.URL.Path, "/v1/search") {
			t.Errorf("URL path = %s, should contain /v1/search", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Key test-api-key" {
			t.Errorf("Authorization header = %q, want %q", auth, "Key test-api-key")
		}

		w.WriteHeader(statusCode)
		if statusCode == http.StatusOK {
			json.NewEncoder(w).Encode(response) // nolint:errcheck
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse SearchResult
		statusCode     int
		wantError      bool
		wantCount      int
	}{
		{
			name: "successful search",
			serverResponse: SearchResult{Courses: []CourseInfo{
				{ID: 123, ClubName: "Pebble Beach", CourseName: "Pebble Beach Golf Links"},
			}},
			statusCode: http.StatusOK,
			wantCount:  1,
		},
		{
			name:           "no results",
			serverResponse: SearchResult{Courses: []CourseInfo{}},
			statusCode:     http.StatusOK,
			wantCount:      0,
		},
		{
			name:       "API error",
			statusCode: http.StatusBadRequest,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, tt.statusCode, tt.serverResponse, nil)
			client := NewClient("test-api-key").WithBaseURL(server.URL)

			courses, err := client.Search(context.Background(), "Pebble Beach")
			if tt.wantError {
				if err == nil {
					t.Error("Search() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Search() unexpected error: %v", err)
			}
			if len(courses) != tt.wantCount {
				t.Errorf("Search() returned %d courses, want %d", len(courses), tt.wantCount)
			}
		})
	}
}

func TestSearch_NoAPIKey(t *testing.T) {
	_, err := NewClient("").Search(context.Background(), "Anything")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("Search() error = %v, want ErrNoAPIKey", err)
	}
}

func TestFindBestMatch(t *testing.T) {
	tests := []struct {
		name         string
		location     string
		courses      []CourseInfo
		wantMatch    bool
		wantCourseID int
	}{
		{
			name:     "exact city match",
			location: "Pebble Beach, California",
			courses: []CourseInfo{
				{ID: 456, Location: Location{City: "Monterey", State: "California"}},
				{ID: 123, Location: Location{City: "Pebble Beach", State: "California"}},
			},
			wantMatch:    true,
			wantCourseID: 123,
		},
		{
			name:     "region match when no city match",
			location: "St. Andrews, Scotland",
			courses: []CourseInfo{
				{ID: 1, Location: Location{City: "Melbourne", Country: "Australia"}},
				{ID: 2, Location: Location{City: "Fife", Country: "Scotland"}},
			},
			wantMatch:    true,
			wantCourseID: 2,
		},
		{
			name:     "first result when nothing matches",
			location: "Nowhere",
			courses: []CourseInfo{
				{ID: 7, Location: Location{City: "Somewhere"}},
			},
			wantMatch:    true,
			wantCourseID: 7,
		},
		{
			name:      "no results",
			location:  "Pebble Beach, California",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, http.StatusOK, SearchResult{Courses: tt.courses}, nil)
			client := NewClient("test-api-key").WithBaseURL(server.URL)

			match, err := client.FindBestMatch(context.Background(), "Test Course", tt.location)
			if err != nil {
				t.Fatalf("FindBestMatch() error = %v", err)
			}
			if (match != nil) != tt.wantMatch {
				t.Fatalf("FindBestMatch() match = %v, want match %v", match, tt.wantMatch)
			}
			if match != nil && match.ID != tt.wantCourseID {
				t.Errorf("FindBestMatch() ID = %d, want %d", match.ID, tt.wantCourseID)
			}
		})
	}
}

func TestFindBestMatch_UsesCache(t *testing.T) {
	calls := 0
	server := newTestServer(t, http.StatusOK, SearchResult{}, &calls)
	client := NewClient("test-api-key").WithBaseURL(server.URL).WithCache(NewCache())

	for i := 0; i < 3; i++ {
		match, err := client.FindBestMatch(context.Background(), "Unknown Links", "Nowhere, Mars")
		if err != nil || match != nil {
			t.Fatalf("FindBestMatch() = %v, %v, want nil, nil", match, err)
		}
	}
	if calls != 1 {
		t.Errorf("server calls = %d, want 1 (negative result cached)", calls)
	}
}

func TestGetBestTee(t *testing.T) {
	tests := []struct {
		name      string
		tees      Tees
		wantYards int
		wantNil   bool
	}{
		{
			name: "championship tee preferred",
			tees: Tees{Male: []TeeInfo{
				{TeeName: "White", TotalYards: 6400},
				{TeeName: "Championship", TotalYards: 7100},
			}},
			wantYards: 7100,
		},
		{
			name: "longest male tee when no championship",
			tees: Tees{Male: []TeeInfo{
				{TeeName: "White", TotalYards: 6400},
				{TeeName: "Blue", TotalYards: 6900},
			}},
			wantYards: 6900,
		},
		{
			name:      "female fallback",
			tees:      Tees{Female: []TeeInfo{{TeeName: "Red", TotalYards: 5600}}},
			wantYards: 5600,
		},
		{
			name:    "no tees",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &CourseInfo{Tees: tt.tees}
			tee := info.GetBestTee()
			if tt.wantNil {
				if tee != nil {
					t.Errorf("GetBestTee() = %+v, want nil", tee)
				}
				return
			}
			if tee == nil || tee.TotalYards != tt.wantYards {
				t.Errorf("GetBestTee() = %+v, want %d yards", tee, tt.wantYards)
			}
		})
	}
}

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		input      string
		wantCity   string
		wantRegion string
	}{
		{"Pebble Beach, California", "Pebble Beach", "California"},
		{"Inverness, Nova Scotia, Canada", "Inverness", "Canada"},
		{"Melbourne", "Melbourne", ""},
	}

	for _, tt := range tests {
		city, region := SplitLocation(tt.input)
		if city != tt.wantCity || region != tt.wantRegion {
			t.Errorf("SplitLocation(%q) = %q, %q, want %q, %q", tt.input, city, region, tt.wantCity, tt.wantRegion)
		}
	}
}

func TestLookupKnown(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYards int
		wantNil   bool
	}{
		{name: "exact after normalization", input: "Pebble Beach Golf Links", wantYards: 6828},
		{name: "club suffix on both sides", input: "The Olympic Club", wantYards: 7169},
		{name: "longest partial key wins", input: "Pinehurst No. 2 Course", wantYards: 7588},
		{name: "unknown", input: "Brampton Park Golf Club", wantNil: true},
		{name: "empty", input: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupKnown(tt.input)
			if tt.wantNil {
				if got != nil {
					t.Errorf("LookupKnown(%q) = %+v, want nil", tt.input, got)
				}
				return
			}
			if got == nil || got.Yardage != tt.wantYards {
				t.Errorf("LookupKnown(%q) = %+v, want yardage %d", tt.input, got, tt.wantYards)
			}
		})
	}
}
