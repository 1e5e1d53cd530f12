package chapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// HTTPSource fetches chapters from a static file server: <base>/<id>.json
// for a chapter and <base>/index.json for the list of ids.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource returns a source rooted at baseURL. A nil client means
// http.DefaultClient; deadlines come from the request context.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, id string) ([]byte, error) {
	if !validID(id) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s.get(ctx, url.PathEscape(id)+jsonExt)
}

func (s *HTTPSource) List(ctx context.Context) ([]string, error) {
	data, err := s.get(ctx, "index"+jsonExt)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("%w: index: %v", ErrMalformed, err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *HTTPSource) get(ctx context.Context, name string) ([]byte, error) {
	endpoint := s.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", endpoint, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", endpoint, err)
	}
	return data, nil
}
