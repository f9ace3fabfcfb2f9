package supplier

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func soapResponse(method, value string) string {
	return `<?xml version="1.0"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/">
<SOAP-ENV:Body><ns1:` + method + `Response>
<` + method + `Return xsi:type="xsd:string">` + value + `</` + method + `Return>
</ns1:` + method + `Response></SOAP-ENV:Body></SOAP-ENV:Envelope>`
}

func soapFault(message string) string {
	return `<?xml version="1.0"?>
<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/">
<SOAP-ENV:Body><SOAP-ENV:Fault>
<faultcode>2</faultcode><faultstring>` + message + `</faultstring>
</SOAP-ENV:Fault></SOAP-ENV:Body></SOAP-ENV:Envelope>`
}

// TestLogin_ReturnsSession tests that a successful login yields a usable session.
func TestLogin_ReturnsSession(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, string(body))

		switch {
		case strings.Contains(string(body), "login"):
			_, _ = io.WriteString(w, soapResponse("login", "session-token-1"))
		case strings.Contains(string(body), "endSession"):
			_, _ = io.WriteString(w, soapResponse("endSession", "1"))
		default:
			_, _ = io.WriteString(w, soapResponse("call", `[{&quot;sku&quot;:&quot;X1&quot;}]`))
		}
	}))
	defer server.Close()

	dialer := NewDialer(Config{
		User:     "merchant",
		Pass:     "secret",
		Endpoint: server.URL + "?wsdl",
	}, zap.NewNop())

	sess, err := dialer.Login(context.Background())
	require.NoError(t, err)
	require.NotNil(t, sess)

	raw, err := sess.Call(context.Background(), ProcGetProductList)
	require.NoError(t, err)
	assert.Equal(t, `[{"sku":"X1"}]`, raw)

	assert.NoError(t, sess.Close(context.Background()))

	// login, call, endSession
	require.Len(t, requests, 3)
	assert.Contains(t, requests[0], "merchant")
	assert.Contains(t, requests[1], "session-token-1")
	assert.Contains(t, requests[1], ProcGetProductList)
	assert.Contains(t, requests[2], "session-token-1")
}

// TestLogin_Fault tests that a SOAP fault on login surfaces as an error.
func TestLogin_Fault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, soapFault("Access denied"))
	}))
	defer server.Close()

	dialer := NewDialer(Config{User: "u", Pass: "p", Endpoint: server.URL}, zap.NewNop())

	_, err := dialer.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Access denied")
}

// TestCall_StructuredParamsEncodedAsJSON tests that maps and slices travel as JSON strings.
func TestCall_StructuredParamsEncodedAsJSON(t *testing.T) {
	var captured string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured = string(body)
		_, _ = io.WriteString(w, soapResponse("call", "{}"))
	}))
	defer server.Close()

	dialer := NewDialer(Config{User: "u", Pass: "p", Endpoint: server.URL}, zap.NewNop())
	sess := &soapSession{dialer: dialer.(*soapDialer), token: "tok"}

	_, err := sess.Call(context.Background(), ProcGetOrders, map[string]any{"from": "2026-01-01"})
	require.NoError(t, err)
	// JSON braces/quotes are XML-escaped inside the envelope
	assert.Contains(t, captured, "from")
	assert.Contains(t, captured, "2026-01-01")
}

func TestBuildEnvelope_EscapesValues(t *testing.T) {
	envelope, err := buildEnvelope("call", []any{"tok", "a<b>&c"})
	require.NoError(t, err)
	assert.Contains(t, string(envelope), "a&lt;b&gt;&amp;c")
}

func TestParseEnvelope_Malformed(t *testing.T) {
	_, err := parseEnvelope([]byte("<unclosed"))
	assert.Error(t, err)
}
