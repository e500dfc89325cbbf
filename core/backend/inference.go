package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// inferenceClient is a minimal client for hosted inference endpoints that
// take either a raw audio body or a JSON payload and answer with JSON or
// raw bytes. Model calls can be long; there is deliberately no client-side
// timeout beyond the request context.
type inferenceClient struct {
	url        string
	token      string
	httpClient *http.Client
}

func newInferenceClient(url, token string) *inferenceClient {
	return &inferenceClient{
		url:        url,
		token:      token,
		httpClient: &http.Client{Timeout: 0},
	}
}

func (c *inferenceClient) do(ctx context.Context, contentType string, body io.Reader, query map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if len(query) > 0 {
		q := req.URL.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("inference endpoint %s returned status %d: %s", c.url, resp.StatusCode, string(payload))
	}
	return payload, nil
}

// postAudio uploads the file at path as a raw audio/wav body.
func (c *inferenceClient) postAudio(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return c.do(ctx, "audio/wav", fh, query)
}

// postJSON sends payload as an application/json body.
func (c *inferenceClient) postJSON(ctx context.Context, payload []byte) ([]byte, error) {
	return c.do(ctx, "application/json", bytes.NewReader(payload), nil)
}
