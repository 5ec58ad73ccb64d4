package pharmacy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/dto/responses"
	"taskgo-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testRestClient(serverURL string) *restClient {
	return &restClient{
		BaseUrl:    serverURL,
		APIKey:     "portal-key",
		HTTPClient: &http.Client{},
		Log:        zap.NewNop(),
	}
}

func TestRestClientDo(t *testing.T) {
	t.Run("False Success Flag In A 200 Body Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"success":false,"message":"Email already registered"}`))
		}))
		defer server.Close()

		client := testRestClient(server.URL)

		err := client.do(context.Background(), constvars.MethodPost, "/signup", "", map[string]string{"email": "jane@example.com"}, nil, constvars.ResourceUser)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, "Email already registered", customErr.ClientMessage)
	})

	t.Run("False Success Flag Blocks Typed Decodes Too", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"success":false,"message":"Invalid credentials","token":"","user":{}}`))
		}))
		defer server.Close()

		client := testRestClient(server.URL)

		result := new(responses.UpstreamAuth)
		err := client.do(context.Background(), constvars.MethodPost, "/login", "", nil, result, constvars.ResourceSession)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, "Invalid credentials", customErr.ClientMessage)
	})

	t.Run("Non 2xx Surfaces The Upstream Message And Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
		}))
		defer server.Close()

		client := testRestClient(server.URL)

		err := client.do(context.Background(), constvars.MethodPost, "/login", "", nil, nil, constvars.ResourceSession)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, "Invalid credentials", customErr.ClientMessage)
	})

	t.Run("True Success Flag Decodes The Typed Response", func(t *testing.T) {
		var seenAPIKey, seenToken string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenAPIKey = r.Header.Get(constvars.HeaderAPIKey)
			seenToken = r.Header.Get(constvars.HeaderAuthentication)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"success":true,"message":"ok","token":"upstream-token","user":{"id":"user-1"}}`))
		}))
		defer server.Close()

		client := testRestClient(server.URL)

		result := new(responses.UpstreamAuth)
		err := client.do(context.Background(), constvars.MethodGet, "/login", "session-token", nil, result, constvars.ResourceSession)

		assert.NoError(t, err)
		assert.Equal(t, "upstream-token", result.Token)
		assert.Equal(t, "user-1", result.User.ID)
		assert.Equal(t, "portal-key", seenAPIKey)
		assert.Equal(t, "session-token", seenToken)
	})

	t.Run("Unparseable 200 Body Is An Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := testRestClient(server.URL)

		err := client.do(context.Background(), constvars.MethodGet, "/get-medicines", "", nil, nil, constvars.ResourceMedicine)

		assert.Error(t, err)
	})
}
