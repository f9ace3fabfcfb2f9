package storefront

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		Store:      server.URL,
		Token:      "test-token",
		APIVersion: "2025-04",
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

// TestRest_TokenHeader tests that the access token travels as a header.
func TestRest_TokenHeader(t *testing.T) {
	var gotToken, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	var out map[string]any
	_, err := client.Rest(context.Background(), http.MethodGet, "/orders.json", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "/admin/api/2025-04/orders.json", gotPath)
	assert.Equal(t, true, out["ok"])
}

// TestRest_BasicAuthFallback tests key/secret auth when no token is configured.
func TestRest_BasicAuthFallback(t *testing.T) {
	var user, pass string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ = r.BasicAuth()
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{
		Store:      server.URL,
		APIKey:     "key",
		APISecret:  "secret",
		APIVersion: "2025-04",
	}, zap.NewNop())
	require.NoError(t, err)

	_, err = client.Rest(context.Background(), http.MethodGet, "/orders.json", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "key", user)
	assert.Equal(t, "secret", pass)
}

// TestRest_StatusError tests that non-2xx responses produce a StatusError.
func TestRest_StatusError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"errors":"Not Found"}`)
	})

	_, err := client.Rest(context.Background(), http.MethodPost, "/inventory_levels/set.json", nil, map[string]any{}, nil)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Body, "Not Found")
}

// TestRest_QueryParams tests query string encoding.
func TestRest_QueryParams(t *testing.T) {
	var rawQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `{}`)
	})

	query := url.Values{}
	query.Set("status", "open")
	query.Set("limit", "250")
	_, err := client.Rest(context.Background(), http.MethodGet, "/orders.json", query, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, rawQuery, "status=open")
	assert.Contains(t, rawQuery, "limit=250")
}

// TestGraphQL_Data tests that the data object is decoded into out.
func TestGraphQL_Data(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "productVariants")
		_, _ = io.WriteString(w, `{"data":{"productVariants":{"edges":[{"node":{"id":"gid://shopify/ProductVariant/42","sku":"X1"}}]}}}`)
	})

	var out struct {
		ProductVariants struct {
			Edges []struct {
				Node struct {
					ID  string `json:"id"`
					SKU string `json:"sku"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"productVariants"`
	}
	err := client.GraphQL(context.Background(), "query($q:String!){ productVariants(first:1,query:$q){edges{node{id sku}}} }",
		map[string]any{"q": "sku:X1"}, &out)
	require.NoError(t, err)
	require.Len(t, out.ProductVariants.Edges, 1)
	assert.Equal(t, "X1", out.ProductVariants.Edges[0].Node.SKU)
}

// TestGraphQL_TopLevelErrors tests that top-level errors abort the call.
func TestGraphQL_TopLevelErrors(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"errors":[{"message":"Throttled"}]}`)
	})

	err := client.GraphQL(context.Background(), "query{ shop{name} }", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Throttled")
}

// TestNewClient_MissingAuth tests the credential guard.
func TestNewClient_MissingAuth(t *testing.T) {
	_, err := NewClient(Config{Store: "example.myshopify.com"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth")

	_, err = NewClient(Config{Store: "example.myshopify.com", APIKey: "key-only"}, zap.NewNop())
	assert.Error(t, err)
}

// TestUserErrorsError_Message tests formatting of structured user errors.
func TestUserErrorsError_Message(t *testing.T) {
	err := &UserErrorsError{Errors: []UserError{
		{Field: []string{"setQuantities", "quantity"}, Message: "must be non-negative"},
		{Message: "unknown location"},
	}}
	msg := err.Error()
	assert.Contains(t, msg, "setQuantities.quantity: must be non-negative")
	assert.Contains(t, msg, "unknown location")
	assert.True(t, strings.HasPrefix(msg, "storefront user errors:"))
}
