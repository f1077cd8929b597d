package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"transit/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishReplyEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestIDHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		requestIDHeader = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	event := &service.ReplyEvent{
		RequestID:  "req-1",
		ReplyID:    "reply-1",
		FeedbackID: "feedback-1",
		Author:     "support",
		Content:    "Thanks for reporting this",
	}
	require.NoError(t, publisher.PublishReplyEvent(context.Background(), event))

	assert.Equal(t, "reply-1", received.Message.MessageID)
	assert.Equal(t, "reply-1", received.Message.Attributes["reply_id"])
	assert.Equal(t, "feedback-1", received.Message.Attributes["feedback_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.Equal(t, "req-1", requestIDHeader)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.ReplyEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishReplyEvent(context.Background(), &service.ReplyEvent{ReplyID: "reply-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}
