// Package handler adapts the synchronizer to the serverless runtime.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/thankful-ai/autodns/internal/amazon"
	"github.com/thankful-ai/autodns/internal/autodns"
)

// Response is the fixed status-plus-message shape the trigger sees. No
// structured diagnostics go back; they're logged instead.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

const (
	bodyExecuted = "Function executed"
	bodyFailed   = "Function failed"
)

type syncer interface {
	Sync(ctx context.Context, instanceID string) (autodns.Outcome, error)
}

type Handler struct {
	log  *slog.Logger
	conf autodns.Config

	// newSyncer is rebuilt per invocation so warm starts carry no client
	// state across events.
	newSyncer func(ctx context.Context) (syncer, error)
}

func New(log *slog.Logger, conf autodns.Config) *Handler {
	h := &Handler{log: log, conf: conf}
	h.newSyncer = h.awsSyncer
	return h
}

func (h *Handler) awsSyncer(ctx context.Context) (syncer, error) {
	clients, err := amazon.NewClients(ctx, h.conf.ZoneID, h.conf.Region)
	if err != nil {
		return nil, fmt.Errorf("new clients: %w", err)
	}
	return autodns.NewSynchronizer(h.log, h.conf, clients.EC2,
		clients.Route53), nil
}

// Handle consumes one instance state-change event. It never returns a Go
// error: every failure is logged and reported as a 500-style response, so
// the trigger only ever sees a binary status.
func (h *Handler) Handle(
	ctx context.Context,
	event events.CloudWatchEvent,
) (Response, error) {
	var detail struct {
		InstanceID string `json:"instance-id"`
	}
	if err := json.Unmarshal(event.Detail, &detail); err != nil {
		h.log.Error("unmarshal detail",
			slog.String("error", err.Error()))
		return failed(), nil
	}
	if detail.InstanceID == "" {
		h.log.Error("event missing instance-id")
		return failed(), nil
	}

	s, err := h.newSyncer(ctx)
	if err != nil {
		h.log.Error("new syncer", slog.String("error", err.Error()))
		return failed(), nil
	}
	outcome, err := s.Sync(ctx, detail.InstanceID)
	if err != nil {
		h.log.Error("sync",
			slog.String("instance", detail.InstanceID),
			slog.String("error", err.Error()))
		return failed(), nil
	}

	h.log.Info("sync complete",
		slog.String("instance", detail.InstanceID),
		slog.String("outcome", string(outcome)))
	return Response{StatusCode: http.StatusOK, Body: bodyExecuted}, nil
}

func failed() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       bodyFailed,
	}
}
