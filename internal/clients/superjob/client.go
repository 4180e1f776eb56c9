package superjob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.superjob.ru"
	MaxCount       = 100
	apiKeyHeader   = "X-Api-App-Id"
)

type getVacanciesResponse struct {
	Vacancies []Vacancy `json:"objects"`
	Total     int       `json:"total"`
	More      bool      `json:"more"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient HTTPClient
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// GetVacancies returns at most count vacancies matching keyword.
func (c *Client) GetVacancies(ctx context.Context, keyword string, count int) ([]Vacancy, error) {

	if count <= 0 || count > MaxCount {
		return nil, fmt.Errorf("count must be between 1 and %d", MaxCount)
	}

	params := url.Values{}
	params.Add("keyword", keyword)
	params.Add("count", strconv.Itoa(count))

	body, err := c.sendRequest(ctx, c.baseURL+"/2.0/vacancies/?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var vacanciesResponse getVacanciesResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&vacanciesResponse); err != nil {
		return nil, fmt.Errorf("error decoding JSON response: %w", err)
	}

	return vacanciesResponse.Vacancies, nil
}

func (c *Client) sendRequest(ctx context.Context, url string) ([]byte, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
