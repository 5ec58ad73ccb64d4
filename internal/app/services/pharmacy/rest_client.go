package pharmacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/responses"
	"taskgo-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// restClient carries the plumbing every pharmacy backend call shares.
type restClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func (c *restClient) do(ctx context.Context, method, path, upstreamToken string, payload, out interface{}, resource string) error {
	var body io.Reader
	if payload != nil {
		requestJSON, err := json.Marshal(payload)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.APIKey != "" {
		req.Header.Set(constvars.HeaderAPIKey, c.APIKey)
	}
	if upstreamToken != "" {
		req.Header.Set(constvars.HeaderAuthentication, upstreamToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}

	var outcome responses.UpstreamGeneric
	decodeErr := json.Unmarshal(bodyBytes, &outcome)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		if decodeErr == nil && outcome.Message != "" {
			// Surface the backend's own message, e.g. invalid credentials.
			return exceptions.WrapWithoutError(resp.StatusCode, outcome.Message, fmt.Sprintf(constvars.ErrDevUpstreamRejected, resource))
		}
		return exceptions.ErrUpstreamRejected(fmt.Errorf("status %d", resp.StatusCode), resource)
	}

	if decodeErr != nil {
		return exceptions.ErrDecodeResponse(decodeErr, resource)
	}
	// The backend also reports application failures inside a 2xx envelope.
	if !outcome.Success {
		if outcome.Message != "" {
			return exceptions.WrapWithoutError(constvars.StatusBadRequest, outcome.Message, fmt.Sprintf(constvars.ErrDevUpstreamRejected, resource))
		}
		return exceptions.ErrUpstreamRejected(nil, resource)
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return exceptions.ErrDecodeResponse(err, resource)
		}
	}
	return nil
}
