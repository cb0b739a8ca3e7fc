// Package chatrequest implements the pending/accept/decline handshake that
// is the second route to a match.
package chatrequest

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/db"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/events"
	"github.com/oggyb/radar-match/internal/identity"
	"github.com/oggyb/radar-match/internal/repository"
	"github.com/oggyb/radar-match/internal/service/match"
)

// MaxMessageLength is the longest accepted intro message, in runes.
const MaxMessageLength = 500

// Outcome of Send.
const (
	OutcomeCreated          = "created"
	OutcomeAlreadyRequested = "alreadyRequested"
	OutcomeAlreadyConnected = "alreadyConnected"
)

const (
	defaultInboxSize = 50
	maxInboxSize     = 200
)

type SendResult struct {
	RequestID string
	Outcome   string
}

type RespondResult struct {
	Status string
	Match  *match.View
}

// Incoming is a pending request with its sender's summary.
type Incoming struct {
	Request db.ChatRequest
	Sender  *repository.ProfileSummary
}

type Dependencies struct {
	Requests   repository.ChatRequestStore
	Profiles   repository.ProfileDirectory
	Reconciler *match.Reconciler
	Guard      *identity.Guard
	Logger     *slog.Logger
	Now        func() time.Time
}

type Handshake struct {
	requests   repository.ChatRequestStore
	profiles   repository.ProfileDirectory
	reconciler *match.Reconciler
	guard      *identity.Guard
	logger     *slog.Logger
	now        func() time.Time
}

func NewHandshake(deps Dependencies) *Handshake {
	h := &Handshake{
		requests:   deps.Requests,
		profiles:   deps.Profiles,
		reconciler: deps.Reconciler,
		guard:      deps.Guard,
		logger:     deps.Logger,
		now:        deps.Now,
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// Send opens a pending request from senderID to receiverID.
//
// Behavior:
//   - An accepted request between the pair in either direction yields
//     alreadyConnected; a pending one yields alreadyRequested. Both return
//     the existing id and write nothing.
//   - The dedup read and the insert are separate statements; two
//     simultaneous first sends for the same pair can both insert.
func (h *Handshake) Send(ctx context.Context, senderID, receiverID, message string) (SendResult, error) {
	senderID = strings.TrimSpace(senderID)
	receiverID = strings.TrimSpace(receiverID)
	message = strings.TrimSpace(message)

	if senderID == "" || receiverID == "" {
		return SendResult{}, svcErr.InvalidInput("sender and receiver ids are required")
	}
	if senderID == receiverID {
		return SendResult{}, svcErr.InvalidInput("cannot send a chat request to yourself")
	}
	if h.guard.IsPlaceholder(receiverID) {
		return SendResult{}, svcErr.InvalidInput("receiver id is not a real user")
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return SendResult{}, svcErr.InvalidInput("message is too long")
	}

	active, err := h.requests.FindActiveBetween(ctx, senderID, receiverID)
	if err != nil {
		h.logger.Error("chat request dedup lookup failed", "sender", senderID, "receiver", receiverID, "err", err)
		return SendResult{}, svcErr.Unavailable("look up chat requests", err)
	}
	var pending *db.ChatRequest
	for i := range active {
		if active[i].Status == db.ChatRequestAccepted {
			return SendResult{RequestID: active[i].ID, Outcome: OutcomeAlreadyConnected}, nil
		}
		if pending == nil {
			pending = &active[i]
		}
	}
	if pending != nil {
		return SendResult{RequestID: pending.ID, Outcome: OutcomeAlreadyRequested}, nil
	}

	now := h.now().UTC()
	req := db.ChatRequest{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    message,
		Status:     db.ChatRequestPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.requests.Create(ctx, req); err != nil {
		h.logger.Error("chat request insert failed", "sender", senderID, "receiver", receiverID, "err", err)
		return SendResult{}, svcErr.Unavailable("create chat request", err)
	}
	h.logger.Info("chat request sent", "request_id", req.ID, "sender", senderID, "receiver", receiverID)
	return SendResult{RequestID: req.ID, Outcome: OutcomeCreated}, nil
}

// Respond applies the receiver's answer to a pending request.
//
// Behavior:
//   - Only the receiver may respond; anyone else gets Forbidden and the
//     request is left untouched.
//   - Requests that are no longer pending are NotFound, so a retried
//     respond never re-applies an action.
//   - Accepting ensures the canonical match for the pair. If that fails the
//     request is put back to pending so the receiver can retry.
func (h *Handshake) Respond(ctx context.Context, requestID, responderID, action string) (RespondResult, error) {
	requestID = strings.TrimSpace(requestID)
	responderID = strings.TrimSpace(responderID)
	action = strings.ToLower(strings.TrimSpace(action))

	if requestID == "" || responderID == "" {
		return RespondResult{}, svcErr.InvalidInput("request and responder ids are required")
	}
	if action != db.ChatRequestAccepted && action != db.ChatRequestDeclined {
		return RespondResult{}, svcErr.InvalidInput("action must be accepted or declined")
	}

	req, err := h.requests.Get(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return RespondResult{}, svcErr.NotFound("chat request not found")
	}
	if err != nil {
		return RespondResult{}, svcErr.Unavailable("load chat request", err)
	}
	if req.ReceiverID != responderID {
		h.logger.Warn("chat request respond by non-receiver", "request_id", requestID, "responder", responderID)
		return RespondResult{}, svcErr.Forbidden("only the receiver can respond to a chat request")
	}
	if req.Status != db.ChatRequestPending {
		return RespondResult{}, svcErr.NotFound("chat request is no longer pending")
	}

	ok, err := h.requests.Transition(ctx, req.ID, db.ChatRequestPending, action, h.now().UTC())
	if err != nil {
		return RespondResult{}, svcErr.Unavailable("update chat request", err)
	}
	if !ok {
		// lost a race against another respond
		return RespondResult{}, svcErr.NotFound("chat request is no longer pending")
	}

	if action == db.ChatRequestDeclined {
		h.logger.Info("chat request declined", "request_id", req.ID)
		return RespondResult{Status: db.ChatRequestDeclined}, nil
	}

	m, _, err := h.reconciler.Ensure(ctx, req.SenderID, req.ReceiverID, events.SourceChatRequest)
	if err != nil {
		if _, rerr := h.requests.Transition(ctx, req.ID, db.ChatRequestAccepted, db.ChatRequestPending, h.now().UTC()); rerr != nil {
			h.logger.Error("chat request revert failed", "request_id", req.ID, "err", rerr)
		}
		return RespondResult{}, err
	}
	view := h.reconciler.Describe(ctx, m, responderID)
	h.logger.Info("chat request accepted", "request_id", req.ID, "match_id", m.ID)
	return RespondResult{Status: db.ChatRequestAccepted, Match: &view}, nil
}

// ListIncoming returns the user's pending requests, newest first.
func (h *Handshake) ListIncoming(ctx context.Context, userID string, limit int) ([]Incoming, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, svcErr.InvalidInput("user_id is required")
	}
	if limit <= 0 {
		limit = defaultInboxSize
	}
	if limit > maxInboxSize {
		limit = maxInboxSize
	}

	rows, err := h.requests.ListIncoming(ctx, userID, limit)
	if err != nil {
		return nil, svcErr.Unavailable("list chat requests", err)
	}

	senders := make([]string, 0, len(rows))
	for _, r := range rows {
		senders = append(senders, r.SenderID)
	}
	profiles, err := h.profiles.Summaries(ctx, senders)
	if err != nil {
		return nil, svcErr.Unavailable("load sender profiles", err)
	}

	out := make([]Incoming, 0, len(rows))
	for _, r := range rows {
		in := Incoming{Request: r}
		if p, ok := profiles[r.SenderID]; ok {
			in.Sender = &p
		}
		out = append(out, in)
	}
	return out, nil
}
