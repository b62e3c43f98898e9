// Package foursquare is the client for the Foursquare v2 API: the OAuth2
// authorization flow, the paged check-in history fetch and the user profile.
package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/swarmwrapped/wrapped-backend-go/internal/config"
	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

const (
	authURL        = "https://foursquare.com/oauth2/authenticate"
	tokenURL       = "https://foursquare.com/oauth2/access_token"
	defaultAPIBase = "https://api.foursquare.com/v2"

	// apiVersion is the Foursquare versioning date parameter.
	apiVersion = "20231201"

	// pageLimit is the maximum page size the API allows.
	pageLimit = 250

	// maxOffset is a safety stop for the paging loop.
	maxOffset = 5000
)

// OAuthConfig builds the authorization-code flow configuration.
func OAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.FoursquareClientID,
		ClientSecret: cfg.FoursquareClientSecret,
		RedirectURL:  cfg.FoursquareRedirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
	}
}

// Client calls the Foursquare v2 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the production API.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultAPIBase,
	}
}

// NewClientWithBase creates a client against a custom base URL (tests).
func NewClientWithBase(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

type checkinsEnvelope struct {
	Response struct {
		Checkins struct {
			Count int              `json:"count"`
			Items []models.Checkin `json:"items"`
		} `json:"checkins"`
	} `json:"response"`
}

type userEnvelope struct {
	Response struct {
		User struct {
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Handle    string `json:"handle"`
			Checkins  struct {
				Count int `json:"count"`
			} `json:"checkins"`
		} `json:"user"`
	} `json:"response"`
}

// FetchCheckins pages through the user's check-in history for one year.
// API failures surface as errors so the caller can tell "fetch failed" from
// "no check-ins this year".
func (c *Client) FetchCheckins(ctx context.Context, token string, year int) ([]models.Checkin, error) {
	after := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	before := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()

	var checkins []models.Checkin
	for offset := 0; offset <= maxOffset; offset += pageLimit {
		params := url.Values{}
		params.Set("oauth_token", token)
		params.Set("v", apiVersion)
		params.Set("limit", strconv.Itoa(pageLimit))
		params.Set("offset", strconv.Itoa(offset))
		params.Set("afterTimestamp", strconv.FormatInt(after, 10))
		params.Set("beforeTimestamp", strconv.FormatInt(before, 10))
		params.Set("sort", "newestfirst")

		var envelope checkinsEnvelope
		if err := c.get(ctx, "/users/self/checkins", params, &envelope); err != nil {
			return nil, err
		}

		items := envelope.Response.Checkins.Items
		if len(items) == 0 {
			break
		}
		checkins = append(checkins, items...)
	}

	logrus.Infof("[Foursquare] Fetched %d check-ins for %d", len(checkins), year)
	return checkins, nil
}

// FetchProfile returns the user's display name and lifetime check-in count.
func (c *Client) FetchProfile(ctx context.Context, token string) (*models.Profile, error) {
	params := url.Values{}
	params.Set("oauth_token", token)
	params.Set("v", apiVersion)

	var envelope userEnvelope
	if err := c.get(ctx, "/users/self", params, &envelope); err != nil {
		return nil, err
	}

	user := envelope.Response.User
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	if name == "" {
		name = user.Handle
	}

	return &models.Profile{
		Name:             name,
		LifetimeCheckins: user.Checkins.Count,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call foursquare: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("foursquare rate limit exceeded (%s)", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("foursquare returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode foursquare response: %w", err)
	}
	return nil
}
