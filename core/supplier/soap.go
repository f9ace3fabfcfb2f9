package supplier

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// soapDialer implements Dialer over the supplier's SOAP endpoint.
// The transport is deliberately thin: envelopes are rpc-encoded, every
// parameter is serialized to a string, and responses carry their payload
// as the text content of the return element.
type soapDialer struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// NewDialer creates a SOAP dialer for the configured endpoint.
func NewDialer(cfg Config, log *zap.Logger) Dialer {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &soapDialer{
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		log: log,
	}
}

func (d *soapDialer) Login(ctx context.Context) (Session, error) {
	d.log.Info("Logging in to supplier SOAP API", zap.String("endpoint", d.cfg.Endpoint))

	token, err := d.invoke(ctx, "login", d.cfg.User, d.cfg.Pass)
	if err != nil {
		return nil, fmt.Errorf("supplier login failed: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("supplier login returned an empty session token")
	}

	return &soapSession{dialer: d, token: token}, nil
}

// soapSession is a live session bound to a server-side token.
type soapSession struct {
	dialer *soapDialer
	token  string
}

func (s *soapSession) Call(ctx context.Context, procedure string, params ...any) (string, error) {
	s.dialer.log.Debug("Calling supplier procedure",
		zap.String("procedure", procedure),
		zap.Int("params", len(params)),
	)
	args := append([]any{s.token, procedure}, params...)
	return s.dialer.invoke(ctx, "call", args...)
}

func (s *soapSession) Close(ctx context.Context) error {
	s.dialer.log.Info("Ending supplier session")
	_, err := s.dialer.invoke(ctx, "endSession", s.token)
	return err
}

// invoke posts a single rpc-encoded envelope and extracts the return value.
func (d *soapDialer) invoke(ctx context.Context, method string, args ...any) (string, error) {
	endpoint := strings.TrimSuffix(d.cfg.Endpoint, "?wsdl")

	envelope, err := buildEnvelope(method, args)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(envelope))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "urn:Action")

	resp, err := d.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("supplier call %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("supplier call %s: read response: %w", method, err)
	}

	return parseEnvelope(body)
}

// buildEnvelope serializes a method call into an rpc-encoded SOAP envelope.
// Structured parameters (maps, slices, structs) are carried as JSON strings,
// which is the encoding the dropshipping API expects.
func buildEnvelope(method string, args []any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<SOAP-ENV:Envelope xmlns:SOAP-ENV="http://schemas.xmlsoap.org/soap/envelope/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"` +
		` xmlns:xsd="http://www.w3.org/2001/XMLSchema">`)
	buf.WriteString("<SOAP-ENV:Body>")
	fmt.Fprintf(&buf, "<ns1:%s xmlns:ns1=\"urn:Magento\">", method)

	for i, arg := range args {
		value, err := encodeArg(arg)
		if err != nil {
			return nil, fmt.Errorf("encode parameter %d of %s: %w", i, method, err)
		}
		fmt.Fprintf(&buf, `<arg%d xsi:type="xsd:string">`, i)
		if err := xml.EscapeText(&buf, []byte(value)); err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "</arg%d>", i)
	}

	fmt.Fprintf(&buf, "</ns1:%s>", method)
	buf.WriteString("</SOAP-ENV:Body></SOAP-ENV:Envelope>")
	return buf.Bytes(), nil
}

func encodeArg(arg any) (string, error) {
	switch v := arg.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int32, int64, float32, float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

// parseEnvelope extracts either the text of the return element or a fault.
func parseEnvelope(body []byte) (string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(body))

	var (
		inFault     bool
		faultString string
		returnDepth int
		returnText  strings.Builder
		current     string
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed SOAP response: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			current = t.Name.Local
			if current == "Fault" {
				inFault = true
			}
			if returnDepth > 0 {
				returnDepth++
			} else if isReturnElement(current) {
				returnDepth = 1
			}
		case xml.EndElement:
			if returnDepth > 0 {
				returnDepth--
			}
			if t.Name.Local == "Fault" {
				inFault = false
			}
			current = ""
		case xml.CharData:
			if inFault && current == "faultstring" {
				faultString = string(t)
			}
			if returnDepth > 0 {
				returnText.Write(t)
			}
		}
	}

	if faultString != "" {
		return "", fmt.Errorf("SOAP fault: %s", faultString)
	}
	return strings.TrimSpace(returnText.String()), nil
}

func isReturnElement(name string) bool {
	return name == "result" || name == "return" || strings.HasSuffix(name, "Return")
}
