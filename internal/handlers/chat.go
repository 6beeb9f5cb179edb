package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fanhub-backend/internal/chat"
	"fanhub-backend/internal/models"
)

const (
	errMissingMessage = "Mensagem não fornecida"
	errInvalidBody    = "Requisição inválida"
	errRateLimited    = "Calma, pantera! Muitas mensagens em pouco tempo. Espera um instante e tenta de novo."
)

type chatGateway interface {
	Allow(ctx context.Context, clientKey string) (bool, time.Duration)
	Respond(ctx context.Context, req models.ChatRequest) chat.Reply
	Reset()
}

type ChatHandler struct {
	gateway chatGateway
}

func NewChatHandler(gateway chatGateway) *ChatHandler {
	return &ChatHandler{gateway: gateway}
}

// Send answers one fan message. Input errors are the only failures the
// caller sees; everything downstream degrades to some reply with 200.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(errInvalidBody))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp(errMissingMessage))
		return
	}

	allowed, retryAfter := h.gateway.Allow(r.Context(), clientKey(r))
	if !allowed {
		seconds := int(retryAfter / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
		writeJSON(w, http.StatusTooManyRequests, errorResp(errRateLimited))
		return
	}

	reply := h.gateway.Respond(r.Context(), req)
	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply.Text})
}

// Reset wipes the conversation history.
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.gateway.Reset()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// clientKey derives the throttle bucket from the client address. The
// RealIP middleware already folded the forwarded header into RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return host
}
