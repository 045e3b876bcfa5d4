package golfapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const teeTableHTML = `<html><body>
<h2>Pinehurst No. 2</h2>
<table>
  <tr><th>Tee</th><th>Par</th><th>Yards</th><th>Slope</th><th>Rating</th></tr>
  <tr><td>Blue</td><td>72</td><td>6,961</td><td>135</td><td>74.3</td></tr>
  <tr><td>Championship</td><td>70</td><td>7,588</td><td>144</td><td>76.5</td></tr>
  <tr><td>Notes</td><td>-</td><td>-</td><td>-</td><td>-</td></tr>
</table>
</body></html>`

func newUSGAServer(t *testing.T, courses []usgaCourse, detailsStatus int, calls *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/NCRListing", func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			*calls++
		}
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if got := r.URL.Query().Get("handler"); got != "LoadCourses" {
			t.Errorf("handler = %q, want LoadCourses", got)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		if got := r.PostForm.Get("clubCountry"); got != "USA" {
			t.Errorf("clubCountry = %q, want USA", got)
		}
		json.NewEncoder(w).Encode(usgaSearchResponse{Data: courses}) // nolint:errcheck
	})
	mux.HandleFunc("/courseTeeInfo", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(detailsStatus)
		if detailsStatus == http.StatusOK {
			w.Write([]byte(teeTableHTML)) // nolint:errcheck
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestUSGAClient_FindBestMatch(t *testing.T) {
	courses := []usgaCourse{
		{FacilityName: "Pinehurst Resort", CourseName: "No. 4", City: "Village of Pinehurst", State: "NC", CourseID: "111"},
		{FacilityName: "Pinehurst Resort", CourseName: "No. 2", City: "Pinehurst", State: "NC", CourseID: "222"},
	}
	server := newUSGAServer(t, courses, http.StatusOK, nil)

	client := NewUSGAClient().WithBaseURL(server.URL)
	info, err := client.FindBestMatch(context.Background(), "Pinehurst Resort", "Pinehurst, NC")
	if err != nil {
		t.Fatalf("FindBestMatch() error = %v", err)
	}
	if info == nil {
		t.Fatal("FindBestMatch() = nil, want match")
	}
	if info.CourseName != "No. 2" {
		t.Errorf("CourseName = %q, want %q", info.CourseName, "No. 2")
	}
	if len(info.Tees.Male) != 2 {
		t.Fatalf("len(Tees.Male) = %d, want 2", len(info.Tees.Male))
	}

	tee := info.GetBestTee()
	if tee == nil || tee.TotalYards != 7588 {
		t.Errorf("GetBestTee() = %+v, want 7588 yards", tee)
	}
	if tee != nil && (tee.ParTotal != 70 || tee.SlopeRating != 144 || tee.CourseRating != 76.5) {
		t.Errorf("GetBestTee() = %+v, want par 70 slope 144 rating 76.5", tee)
	}
	if info.HasCoordinates() {
		t.Error("HasCoordinates() = true, want false")
	}
}

func TestUSGAClient_NoResults(t *testing.T) {
	calls := 0
	server := newUSGAServer(t, nil, http.StatusOK, &calls)
	cache := NewCache()

	client := NewUSGAClient().WithBaseURL(server.URL).WithCache(cache)
	for i := 0; i < 2; i++ {
		info, err := client.FindBestMatch(context.Background(), "Royal Dornoch", "Dornoch, Scotland")
		if err != nil {
			t.Fatalf("FindBestMatch() error = %v", err)
		}
		if info != nil {
			t.Errorf("FindBestMatch() = %+v, want nil", info)
		}
	}
	if calls != 1 {
		t.Errorf("search calls = %d, want 1 (negative result cached)", calls)
	}
}

func TestUSGAClient_DetailsUnavailable(t *testing.T) {
	courses := []usgaCourse{
		{FacilityName: "Bethpage State Park", CourseName: "Black", City: "Farmingdale", State: "NY", CourseID: "333"},
	}
	server := newUSGAServer(t, courses, http.StatusInternalServerError, nil)
	cache := NewCache()

	client := NewUSGAClient().WithBaseURL(server.URL).WithCache(cache)
	info, err := client.FindBestMatch(context.Background(), "Bethpage State Park", "Farmingdale, New York")
	if err != nil {
		t.Fatalf("FindBestMatch() error = %v", err)
	}
	if info == nil || info.ClubName != "Bethpage State Park" {
		t.Fatalf("FindBestMatch() = %+v, want basic listing", info)
	}
	if info.GetBestTee() != nil {
		t.Error("GetBestTee() should be nil without tee data")
	}
	if cache.Size() != 0 {
		t.Errorf("cache size = %d, want 0 for a partial answer", cache.Size())
	}
}

func TestBestUSGAMatch(t *testing.T) {
	courses := []usgaCourse{
		{FacilityName: "Pebble Beach Golf Links", City: "Pebble Beach", CourseID: "1"},
		{FacilityName: "Pebble Beach", City: "Monterey", CourseID: "2"},
		{FacilityName: "Pebble Creek Golf Club", City: "Las Vegas", CourseID: "3"},
	}

	tests := []struct {
		name       string
		searchName string
		city       string
		wantID     string
	}{
		{name: "normalized name and city", searchName: "Pebble Beach", city: "Pebble Beach", wantID: "1"},
		{name: "name in other city", searchName: "Pebble Beach", city: "Monterey", wantID: "2"},
		{name: "partial name and city", searchName: "Pebble", city: "Las Vegas", wantID: "3"},
		{name: "city only", searchName: "Unknown Course", city: "las vegas", wantID: "3"},
		{name: "first result fallback", searchName: "Unknown Course", city: "Reno", wantID: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bestUSGAMatch(courses, tt.searchName, tt.city)
			if got.CourseID != tt.wantID {
				t.Errorf("bestUSGAMatch(%q, %q) = %s, want %s", tt.searchName, tt.city, got.CourseID, tt.wantID)
			}
		})
	}
}

func TestUSGAClient_Canceled(t *testing.T) {
	server := newUSGAServer(t, nil, http.StatusOK, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewUSGAClient().WithBaseURL(server.URL).FindBestMatch(ctx, "Anything", "Somewhere, NV")
	if err == nil {
		t.Error("FindBestMatch() error = nil, want context error")
	}
}
