package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Client dispatches named commands to the automation server over
// HTTP+JSON. It owns no session state; callers supply path parameters
// (sessionId, elementId) with each call.
type Client struct {
	baseURL    string
	commands   Commands
	httpClient *http.Client
	token      string
	log        *logrus.Entry
}

// NewClient creates a client for the given server URL using the given
// command table. A bare host:port is treated as http.
func NewClient(serverURL string, commands Commands) *Client {
	baseURL := serverURL
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		baseURL:  baseURL,
		commands: commands,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		log: logrus.WithField("component", "wire"),
	}
}

// SetToken sets a bearer token sent with every request. Empty clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Execute dispatches the named command. Path parameters are consumed
// from params; the rest are serialized as the JSON request body. The
// decoded "value" field of the response is returned. Transport failures
// and server-reported errors are returned unmodified, never retried.
func (c *Client) Execute(name string, params map[string]interface{}) (interface{}, error) {
	cmd, ok := c.commands[name]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", name)
	}

	path, body, err := resolvePath(cmd.Path, params)
	if err != nil {
		return nil, fmt.Errorf("command %s: %w", name, err)
	}

	var bodyReader io.Reader
	if cmd.Method == "POST" {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("command %s: marshal body: %w", name, err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(cmd.Method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("command %s: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.log.WithFields(logrus.Fields{"command": name, "elapsed": elapsed}).Warnf("request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("command %s: read response: %w", name, err)
	}

	c.log.WithFields(logrus.Fields{
		"command": name,
		"method":  cmd.Method,
		"path":    path,
		"status":  resp.StatusCode,
		"elapsed": elapsed,
	}).Debug("command executed")

	var result struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("command %s: invalid JSON response: %w", name, err)
	}

	var value interface{}
	if len(result.Value) > 0 {
		if err := json.Unmarshal(result.Value, &value); err != nil {
			return nil, fmt.Errorf("command %s: invalid response value: %w", name, err)
		}
	}

	if serverErr := decodeServerError(value); serverErr != nil {
		return nil, serverErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("command %s: server returned status %d", name, resp.StatusCode)
	}

	return value, nil
}

// resolvePath substitutes ":param" segments from params and returns the
// resolved path along with the remaining parameters for the body.
func resolvePath(template string, params map[string]interface{}) (string, map[string]interface{}, error) {
	body := make(map[string]interface{}, len(params))
	for k, v := range params {
		body[k] = v
	}

	segments := strings.Split(template, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		key := segment[1:]
		value, ok := body[key]
		if !ok {
			return "", nil, fmt.Errorf("missing path parameter %q", key)
		}
		str, ok := value.(string)
		if !ok || str == "" {
			return "", nil, fmt.Errorf("path parameter %q must be a non-empty string", key)
		}
		segments[i] = str
		delete(body, key)
	}

	return strings.Join(segments, "/"), body, nil
}

// decodeServerError recognizes the W3C error shape
// {"error": ..., "message": ...} in a response value.
func decodeServerError(value interface{}) *ServerError {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}
	code, ok := m["error"].(string)
	if !ok || code == "" {
		return nil
	}
	message, _ := m["message"].(string)
	return &ServerError{Code: code, Message: message}
}
