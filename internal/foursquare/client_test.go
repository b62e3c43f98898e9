package foursquare

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCheckinsPagination(t *testing.T) {
	var offsets []string
	var firstQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/self/checkins" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		offsets = append(offsets, q.Get("offset"))
		if firstQuery == nil {
			firstQuery = map[string]string{
				"oauth_token":     q.Get("oauth_token"),
				"v":               q.Get("v"),
				"sort":            q.Get("sort"),
				"afterTimestamp":  q.Get("afterTimestamp"),
				"beforeTimestamp": q.Get("beforeTimestamp"),
			}
		}

		if q.Get("offset") == "0" {
			fmt.Fprint(w, `{"response":{"checkins":{"count":2,"items":[{"id":"c1","createdAt":1735725600},{"id":"c2","createdAt":1735812000}]}}}`)
			return
		}
		fmt.Fprint(w, `{"response":{"checkins":{"count":2,"items":[]}}}`)
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	checkins, err := client.FetchCheckins(context.Background(), "tok-123", 2025)
	require.NoError(t, err)

	require.Len(t, checkins, 2)
	assert.Equal(t, "c1", checkins[0].ID)
	assert.Equal(t, "c2", checkins[1].ID)

	// One full page then the empty page that stops the loop.
	assert.Equal(t, []string{"0", "250"}, offsets)

	assert.Equal(t, "tok-123", firstQuery["oauth_token"])
	assert.Equal(t, apiVersion, firstQuery["v"])
	assert.Equal(t, "newestfirst", firstQuery["sort"])

	wantAfter := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	wantBefore := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
	assert.Equal(t, strconv.FormatInt(wantAfter, 10), firstQuery["afterTimestamp"])
	assert.Equal(t, strconv.FormatInt(wantBefore, 10), firstQuery["beforeTimestamp"])
}

func TestFetchCheckinsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	_, err := client.FetchCheckins(context.Background(), "tok", 2025)
	assert.ErrorContains(t, err, "status 500")
}

func TestFetchCheckinsRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	_, err := client.FetchCheckins(context.Background(), "tok", 2025)
	assert.ErrorContains(t, err, "rate limit")
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/self" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"response":{"user":{"firstName":"Ada","lastName":"Lovelace","handle":"ada","checkins":{"count":1234}}}}`)
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	profile, err := client.FetchProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", profile.Name)
	assert.Equal(t, 1234, profile.LifetimeCheckins)
}

func TestFetchProfileHandleFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"response":{"user":{"handle":"mystery","checkins":{"count":5}}}}`)
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	profile, err := client.FetchProfile(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "mystery", profile.Name)
}
