package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Ralchuu/personaltrainer-client/internal/httperr"
)

// snippetLimit caps how much of a response body is carried inside error
// messages.
const snippetLimit = 300

// newJSONRequest builds a request with an optional JSON body.
func newJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewBuffer(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doJSON executes req and decodes the response into out when out is
// non-nil. Any non-2xx status becomes a *httperr.RequestError carrying a
// body snippet; a 2xx response with a non-JSON content type (when a
// decoded body was requested) becomes a *httperr.UnexpectedContentTypeError.
func doJSON(httpClient *http.Client, req *http.Request, operation string, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &httperr.RequestError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Snippet:    bodySnippet(resp.Body),
		}
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(ct), "application/json") {
		return &httperr.UnexpectedContentTypeError{
			URL:         req.URL.String(),
			ContentType: ct,
			Snippet:     bodySnippet(resp.Body),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if raw, ok := out.(*json.RawMessage); ok {
		*raw = data
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", operation, err)
	}
	return nil
}

func bodySnippet(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, snippetLimit))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// mutationURL resolves a delete/update target. The API exposes both bare
// numeric ids and full resource URLs, so both forms are accepted.
func mutationURL(baseURL, resource, urlOrID string) string {
	if strings.HasPrefix(urlOrID, "http://") || strings.HasPrefix(urlOrID, "https://") {
		return urlOrID
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), resource, urlOrID)
}
