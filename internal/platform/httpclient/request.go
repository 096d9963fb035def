package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/storesync/internal/domain"
	"github.com/jsamuelsen11/storesync/internal/network"
	"github.com/jsamuelsen11/storesync/internal/platform/config"
)

// buildRequest turns a backend request into an *http.Request for the
// configured addressing mode. Parameter encoding failures are serialization
// errors; nothing is sent.
func (c *Client) buildRequest(ctx context.Context, req network.Request) (*http.Request, error) {
	if c.mode == config.ModeJetpack {
		return c.buildJetpackRequest(ctx, req)
	}
	return c.buildDirectRequest(ctx, req)
}

// buildDirectRequest addresses {base}/wp-json/{namespace}/{path}. Reads carry
// parameters in the query string; writes send them as a JSON body.
func (c *Client) buildDirectRequest(ctx context.Context, req network.Request) (*http.Request, error) {
	u := strings.TrimRight(c.baseURL, "/") + "/wp-json/" + req.Route()

	var body io.Reader = http.NoBody
	contentType := ""
	if req.HasBody() {
		payload, err := encodeJSON(req, "body", req.Parameters)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	} else if len(req.Parameters) > 0 {
		q, err := queryValues(req)
		if err != nil {
			return nil, err
		}
		u += "?" + q.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building request %s: %w", req, err)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	return httpReq, nil
}

// buildJetpackRequest tunnels the call through the WordPress.com Jetpack
// proxy. The proxied method travels in _method. GETs carry the parameters
// JSON-encoded in "query"; every other method becomes a form POST with the
// parameters JSON-encoded in "body".
func (c *Client) buildJetpackRequest(ctx context.Context, req network.Request) (*http.Request, error) {
	u := fmt.Sprintf("%s/rest/v1.1/jetpack-blogs/%d/rest-api/", strings.TrimRight(c.baseURL, "/"), req.SiteID)

	q := url.Values{}
	q.Set("path", "/"+req.Route())
	q.Set("_method", strings.ToLower(req.Method))
	q.Set("json", "true")

	if req.Method == http.MethodGet {
		if len(req.Parameters) > 0 {
			payload, err := encodeJSON(req, "query", req.Parameters)
			if err != nil {
				return nil, err
			}
			q.Set("query", string(payload))
		}
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+q.Encode(), http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("building request %s: %w", req, err)
		}
		httpReq.Header.Set("Accept", "application/json")
		return httpReq, nil
	}

	form := url.Values{}
	if len(req.Parameters) > 0 {
		payload, err := encodeJSON(req, "body", req.Parameters)
		if err != nil {
			return nil, err
		}
		form.Set("body", string(payload))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u+"?"+q.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building request %s: %w", req, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	return httpReq, nil
}

func encodeJSON(req network.Request, field string, params map[string]any) ([]byte, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return nil, &domain.SerializationError{Entity: req.Route(), Field: field, Reason: err.Error()}
	}
	return payload, nil
}

// queryValues flattens parameters for a query string. Slices become
// comma-separated lists; nested objects are JSON-encoded. Keys are sorted so
// URLs are stable.
func queryValues(req network.Request) (url.Values, error) {
	keys := make([]string, 0, len(req.Parameters))
	for k := range req.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	q := url.Values{}
	for _, k := range keys {
		v, err := queryValue(req.Parameters[k])
		if err != nil {
			return nil, &domain.SerializationError{Entity: req.Route(), Field: k, Reason: err.Error()}
		}
		q.Set(k, v)
	}
	return q, nil
}

func queryValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	case []int64:
		parts := make([]string, len(t))
		for i, id := range t {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return strings.Join(parts, ","), nil
	case []string:
		return strings.Join(t, ","), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
