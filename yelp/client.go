// Package yelp provides a client for Yelp Fusion API to search local businesses.
package yelp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oklahomer/go-kasumi/logger"
)

const (
	apiEndpointFormat = "https://api.yelp.com/v3/%s"
)

// ErrNotImplemented is returned by search operations that are declared but not built yet.
var ErrNotImplemented = errors.New("yelp search operation is not implemented")

// Config contains some configuration variables for Yelp Fusion API.
type Config struct {
	APIKey         string        `json:"api_key" yaml:"api_key" env:"YELP_API_KEY"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// NewConfig returns initialized Config struct with default settings.
// APIKey is empty at this point. This can be set by feeding this instance to json.Unmarshal/yaml.Unmarshal,
// or by direct assignment.
func NewConfig() *Config {
	return &Config{
		APIKey:         "",
		RequestTimeout: 10 * time.Second,
	}
}

// ClientOption defines function signature that Client's functional option must satisfy.
type ClientOption func(*Client)

// WithHTTPClient creates and returns ClientOption to set preferred *http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = httpClient
	}
}

// Client is an API client for Yelp Fusion.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates and returns new API client with given Config struct.
func NewClient(config *Config, options ...ClientOption) *Client {
	client := &Client{
		config:     config,
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (client *Client) buildEndpoint(path string, queryParams url.Values) *url.URL {
	requestURL, err := url.Parse(fmt.Sprintf(apiEndpointFormat, strings.TrimPrefix(path, "/")))
	if err != nil {
		panic(fmt.Errorf("failed to parse construct URL for %s: %w", path, err))
	}
	if queryParams != nil {
		requestURL.RawQuery = queryParams.Encode()
	}

	return requestURL
}

// Query makes an HTTP GET request to the given Yelp Fusion API path and returns the JSON-encoded response body.
// *APIError is returned when the API responds with non-200 status.
func (client *Client) Query(ctx context.Context, path string, queryParams url.Values) ([]byte, error) {
	if client.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.config.RequestTimeout)
		defer cancel()
	}

	endpoint := client.buildEndpoint(path, queryParams)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+client.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed on GET request for %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// BusinessesByPhone searches businesses with the given phone number.
// The number must include the country code; a leading "+" is prepended when absent.
// Any error is logged and returned; no retry is made.
func (client *Client) BusinessesByPhone(ctx context.Context, phoneNumber string) (*SearchResult, error) {
	result, err := client.businessesByPhone(ctx, phoneNumber)
	if err != nil {
		logger.Errorf("Failed to search business by phone number %s: %+v", phoneNumber, err)
		return nil, err
	}

	return result, nil
}

func (client *Client) businessesByPhone(ctx context.Context, phoneNumber string) (*SearchResult, error) {
	if !strings.HasPrefix(phoneNumber, "+") {
		phoneNumber = "+" + phoneNumber
	}

	queryParams := url.Values{}
	queryParams.Add("phone", phoneNumber)
	body, err := client.Query(ctx, "businesses/search/phone", queryParams)
	if err != nil {
		return nil, fmt.Errorf("failed getting businesses: %w", err)
	}

	result := &SearchResult{}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("failed to parse returned json data: %w", err)
	}

	return result, nil
}

// NearbyByAddress searches businesses near the given address.
func (client *Client) NearbyByAddress(_ context.Context, address string, limit int) (*SearchResult, error) {
	return nil, notImplemented("nearby businesses by address")
}

// TopByAddress searches the best rated businesses near the given address.
func (client *Client) TopByAddress(_ context.Context, address string, limit int) (*SearchResult, error) {
	return nil, notImplemented("top businesses by address")
}

// ClosestByAddress searches the closest businesses from the given address.
func (client *Client) ClosestByAddress(_ context.Context, address string, limit int) (*SearchResult, error) {
	return nil, notImplemented("closest businesses by address")
}

// BusinessByCategory searches the closest business of the given category from the given address.
func (client *Client) BusinessByCategory(_ context.Context, address string, category string) (*SearchResult, error) {
	return nil, notImplemented("business by category")
}

// ReviewsByName fetches reviews of the business with the given name near the given address.
func (client *Client) ReviewsByName(_ context.Context, address string, name string) (*ReviewsResult, error) {
	return nil, notImplemented("reviews by business name")
}

// EventsByPoint searches events around the given point.
func (client *Client) EventsByPoint(_ context.Context, latitude float64, longitude float64, limit int) (*EventsResult, error) {
	point := strconv.FormatFloat(latitude, 'f', -1, 64) + "," + strconv.FormatFloat(longitude, 'f', -1, 64)
	return nil, notImplemented("events by point " + point)
}

func notImplemented(operation string) error {
	return fmt.Errorf("%s: %w", operation, ErrNotImplemented)
}
