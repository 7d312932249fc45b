package gradio

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abdhack/medgemma-gateway/internal/config"
)

// reachabilityTimeout bounds the metadata probe used by health checks
const reachabilityTimeout = 2 * time.Second

// ErrorKind classifies remote-call failures so callers can choose fallback content
type ErrorKind string

const (
	// KindTransport covers network-level failures reaching the Space
	KindTransport ErrorKind = "transport"
	// KindApplication covers errors reported by the Space itself
	KindApplication ErrorKind = "application"
	// KindEmpty covers calls that completed but produced no usable text
	KindEmpty ErrorKind = "empty"
)

// RemoteError is the typed failure returned by Predict
type RemoteError struct {
	Kind ErrorKind
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("gradio %s error: %v", e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind from a Predict failure
func KindOf(err error) ErrorKind {
	if re, ok := err.(*RemoteError); ok {
		return re.Kind
	}
	return KindTransport
}

type Service struct {
	mu      sync.RWMutex
	client  *http.Client
	baseURL string
	token   string
	space   string
}

// PredictRequest carries one prediction call to the Space's /chat endpoint
type PredictRequest struct {
	Text         string
	Files        []string
	SystemPrompt string
	MaxTokens    int
}

type messagePayload struct {
	Text  string   `json:"text"`
	Files []string `json:"files"`
}

type callResponse struct {
	EventID string `json:"event_id"`
}

func NewService() *Service {
	space := config.GetHuggingFaceSpace()

	if space == "" {
		log.Warn().Msg("Gradio service not configured - HUGGINGFACE_SPACE missing")
		return nil
	}

	log.Info().Str("space", space).Msg("Initialising Gradio client")

	return &Service{
		mu:      sync.RWMutex{},
		client:  &http.Client{},
		baseURL: SpaceURL(space),
		token:   config.GetHFToken(),
		space:   space,
	}
}

// Space returns the configured Hugging Face Space identifier
func (s *Service) Space() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.space
}

// SpaceURL maps a Space identifier like "Owner/space-name" to its serving host
func SpaceURL(space string) string {
	host := strings.ToLower(space)
	for _, r := range []string{"/", "_", "."} {
		host = strings.ReplaceAll(host, r, "-")
	}
	return fmt.Sprintf("https://%s.hf.space", host)
}

// Predict submits a prediction to the Space and waits for the generated text.
// The Gradio queue protocol is two HTTP calls: POST the payload to receive an
// event id, then GET the event stream until a complete or error event arrives.
func (s *Service) Predict(ctx context.Context, req PredictRequest) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := req.Files
	if files == nil {
		files = []string{}
	}

	payload := map[string]interface{}{
		"data": []interface{}{
			messagePayload{Text: req.Text, Files: files},
			req.SystemPrompt,
			req.MaxTokens,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", &RemoteError{Kind: KindApplication, Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	eventID, err := s.submitCall(ctx, jsonData)
	if err != nil {
		return "", err
	}

	return s.awaitResult(ctx, eventID)
}

// CheckReachable probes the Space's metadata endpoint within a short bound
func (s *Service) CheckReachable(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, reachabilityTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/config", nil)
	if err != nil {
		return false
	}
	s.authorize(httpReq)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		log.Debug().Err(err).Str("space", s.space).Msg("Space reachability probe failed")
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (s *Service) submitCall(ctx context.Context, body []byte) (string, error) {
	url := fmt.Sprintf("%s/gradio_api/call/chat", s.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", &RemoteError{Kind: KindTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	s.authorize(httpReq)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", &RemoteError{Kind: KindTransport, Err: fmt.Errorf("failed to reach space: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &RemoteError{
			Kind: KindApplication,
			Err:  fmt.Errorf("space returned status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var call callResponse
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return "", &RemoteError{Kind: KindApplication, Err: fmt.Errorf("failed to decode call response: %w", err)}
	}

	if call.EventID == "" {
		return "", &RemoteError{Kind: KindApplication, Err: fmt.Errorf("space returned no event id")}
	}

	return call.EventID, nil
}

// awaitResult reads the server-sent event stream for one call until it resolves
func (s *Service) awaitResult(ctx context.Context, eventID string) (string, error) {
	url := fmt.Sprintf("%s/gradio_api/call/chat/%s", s.baseURL, eventID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &RemoteError{Kind: KindTransport, Err: fmt.Errorf("failed to create result request: %w", err)}
	}
	s.authorize(httpReq)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", &RemoteError{Kind: KindTransport, Err: fmt.Errorf("failed to read result stream: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", &RemoteError{
			Kind: KindApplication,
			Err:  fmt.Errorf("result stream returned status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var event string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			switch event {
			case "complete":
				return parseResult(data)
			case "error":
				return "", &RemoteError{Kind: KindApplication, Err: fmt.Errorf("space reported error: %s", data)}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", &RemoteError{Kind: KindTransport, Err: fmt.Errorf("result stream interrupted: %w", err)}
	}

	return "", &RemoteError{Kind: KindEmpty, Err: fmt.Errorf("result stream ended without a complete event")}
}

// parseResult extracts the generated text from a complete event's data payload,
// a JSON array whose first element is the model output
func parseResult(data string) (string, error) {
	var outputs []json.RawMessage
	if err := json.Unmarshal([]byte(data), &outputs); err != nil {
		return "", &RemoteError{Kind: KindApplication, Err: fmt.Errorf("failed to decode result payload: %w", err)}
	}

	if len(outputs) == 0 {
		return "", &RemoteError{Kind: KindEmpty, Err: fmt.Errorf("space returned no outputs")}
	}

	var text string
	if err := json.Unmarshal(outputs[0], &text); err != nil {
		// Some Spaces wrap the output; fall back to the raw JSON text
		text = string(outputs[0])
	}

	if strings.TrimSpace(text) == "" {
		return "", &RemoteError{Kind: KindEmpty, Err: fmt.Errorf("space returned empty text")}
	}

	return text, nil
}

func (s *Service) authorize(req *http.Request) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}
