package duckgo

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/jmylchreest/duckgo/internal/logger"
	"github.com/jmylchreest/duckgo/internal/transport"
)

// chatSession owns the conversation state: append-only history, a
// running token estimate, and the cached vqd token/hash pair.
type chatSession struct {
	mu       sync.Mutex
	messages []ChatMessage
	tokens   int
	vqd      string
	vqdHash  string
}

// estimateTokens approximates the provider's accounting for a user
// message: one token per four characters, at least one.
func estimateTokens(s string) int {
	if n := len(s) / 4; n > 1 {
		return n
	}
	return 1
}

// ChatOptions controls a chat exchange.
type ChatOptions struct {
	// Model defaults to DefaultModel.
	Model Model
}

// SeedChat appends messages to the conversation history before the next
// send, e.g. to prime the assistant with instructions.
func (c *Client) SeedChat(messages ...ChatMessage) {
	c.chat.mu.Lock()
	defer c.chat.mu.Unlock()
	for _, m := range messages {
		c.chat.messages = append(c.chat.messages, m)
		c.chat.tokens += estimateTokens(m.Content)
	}
}

// ChatHistory returns a copy of the conversation history.
func (c *Client) ChatHistory() []ChatMessage {
	c.chat.mu.Lock()
	defer c.chat.mu.Unlock()
	out := make([]ChatMessage, len(c.chat.messages))
	copy(out, c.chat.messages)
	return out
}

// ChatTokens returns the running token-count estimate for the session.
func (c *Client) ChatTokens() int {
	c.chat.mu.Lock()
	defer c.chat.mu.Unlock()
	return c.chat.tokens
}

// Chat sends a message and blocks until the full reply has streamed in.
func (c *Client) Chat(ctx context.Context, message string, opts ChatOptions) (string, error) {
	stream, err := c.ChatStream(ctx, message, opts)
	if err != nil {
		return "", err
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		fragment, err := stream.Recv()
		if err == io.EOF {
			return reply.String(), nil
		}
		if err != nil {
			return "", err
		}
		reply.WriteString(fragment)
	}
}

// ChatStream sends a message and returns the reply as a stream of text
// fragments. The stream must be drained (Recv until io.EOF) for the
// assistant's reply to be recorded in history; closing early leaves the
// history without the assistant turn. Chat requests are not rate paced.
func (c *Client) ChatStream(ctx context.Context, message string, opts ChatOptions) (*ChatStream, error) {
	c.chat.mu.Lock()
	defer c.chat.mu.Unlock()

	hadCached := c.chat.vqd != "" && c.chat.vqdHash != ""
	vqd, hash, err := c.chatVQD(ctx, false)
	if err != nil {
		return nil, err
	}
	c.chat.vqd, c.chat.vqdHash = vqd, hash

	c.chat.messages = append(c.chat.messages, ChatMessage{Role: RoleUser, Content: message})
	c.chat.tokens += estimateTokens(message)

	send := func(vqd, hash string) (*transport.Response, error) {
		return c.http.DoRaw(ctx, transport.Request{
			Method: http.MethodPost,
			URL:    c.endpoints.chat,
			JSON: map[string]any{
				"model":    opts.Model.providerID(),
				"messages": c.chat.messages,
			},
			Headers: map[string]string{
				"x-vqd-4":      vqd,
				"x-vqd-hash-1": hash,
			},
		})
	}

	resp, err := send(vqd, hash)
	if err != nil {
		return nil, err
	}

	// The provider rejecting a cached pair forces one refresh and retry.
	if hadCached && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusTooManyRequests) {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		logger.Debug("chat token rejected, refreshing", "status", resp.StatusCode)

		vqd, hash, err = c.chatVQD(ctx, true)
		if err != nil {
			return nil, err
		}
		c.chat.vqd, c.chat.vqdHash = vqd, hash
		resp, err = send(vqd, hash)
		if err != nil {
			return nil, err
		}
	}

	// Successful or not, the response headers rotate the cached pair.
	if v := resp.Header.Get("x-vqd-4"); v != "" {
		c.chat.vqd = v
	}
	if v := resp.Header.Get("x-vqd-hash-1"); v != "" {
		c.chat.vqdHash = v
	}

	return &ChatStream{
		client:  c,
		resp:    resp,
		scanner: bufio.NewScanner(resp.Body),
		status:  resp.StatusCode,
	}, nil
}

// ChatStream is a lazy, single-pass stream of reply fragments. Not safe
// for concurrent use.
type ChatStream struct {
	client  *Client
	resp    *transport.Response
	scanner *bufio.Scanner
	status  int
	acc     strings.Builder
	done    bool
	err     error
}

// Recv returns the next text fragment. It returns io.EOF when the reply
// is complete; only then has the assistant message been appended to the
// session history.
func (s *ChatStream) Recv() (string, error) {
	if s.done {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}

	for s.scanner.Scan() {
		line := s.scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(line[len("data:"):])
		switch data {
		case "":
			continue
		case "[DONE]":
			s.finish()
			return "", io.EOF
		case "[DONE][LIMIT_CONVERSATION]":
			return "", s.fail(fmt.Errorf("%w: ERR_CONVERSATION_LIMIT", ErrConversationLimit))
		}

		var event struct {
			Action  string  `json:"action"`
			Type    string  `json:"type"`
			Message *string `json:"message"`
		}
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			return "", s.fail(fmt.Errorf("%w: decode chat event: %v", ErrProtocol, err))
		}

		if event.Action == "error" {
			return "", s.fail(s.errorFor(event.Type))
		}
		if event.Message != nil {
			s.acc.WriteString(*event.Message)
			return *event.Message, nil
		}
	}

	if err := s.scanner.Err(); err != nil {
		return "", s.fail(fmt.Errorf("%w: read chat stream: %v", ErrProtocol, err))
	}
	s.finish()
	return "", io.EOF
}

// errorFor types an in-stream error event. The transport status decides
// between a rate limit and a protocol failure.
func (s *ChatStream) errorFor(errType string) error {
	if s.status == http.StatusTooManyRequests {
		if errType == "ERR_CONVERSATION_LIMIT" {
			return fmt.Errorf("%w: %s", ErrConversationLimit, errType)
		}
		return fmt.Errorf("%w: %s", ErrRateLimited, errType)
	}
	return fmt.Errorf("%w: chat error %q", ErrProtocol, errType)
}

// finish records the accumulated reply in the session history and
// releases the response.
func (s *ChatStream) finish() {
	s.done = true
	s.resp.Body.Close()

	reply := s.acc.String()
	s.client.chat.mu.Lock()
	s.client.chat.messages = append(s.client.chat.messages, ChatMessage{Role: RoleAssistant, Content: reply})
	s.client.chat.tokens += len(reply)
	s.client.chat.mu.Unlock()
}

// fail releases the response and latches the error for later Recv calls.
func (s *ChatStream) fail(err error) error {
	s.done = true
	s.err = err
	s.resp.Body.Close()
	return err
}

// Close releases the underlying response without recording a partial
// reply. Safe to call after the stream has ended.
func (s *ChatStream) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	s.err = errors.New("chat stream closed before completion")
	return s.resp.Body.Close()
}
