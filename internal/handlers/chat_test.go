package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fanhub-backend/internal/chat"
	"fanhub-backend/internal/esports"
	"fanhub-backend/internal/models"
	"fanhub-backend/internal/ratelimit"
)

type fakeGateway struct {
	allowed      bool
	retryAfter   time.Duration
	reply        chat.Reply
	resets       int
	respondCalls int
}

func (f *fakeGateway) Allow(ctx context.Context, clientKey string) (bool, time.Duration) {
	return f.allowed, f.retryAfter
}

func (f *fakeGateway) Respond(ctx context.Context, req models.ChatRequest) chat.Reply {
	f.respondCalls++
	return f.reply
}

func (f *fakeGateway) Reset() {
	f.resets++
}

func postChat(t *testing.T, handler *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.1:51234"

	rr := httptest.NewRecorder()
	handler.Send(rr, req)
	return rr
}

func TestSend_MissingMessage(t *testing.T) {
	h := NewChatHandler(&fakeGateway{allowed: true})

	rr := postChat(t, h, `{"message":""}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp["error"] != "Mensagem não fornecida" {
		t.Errorf("expected missing-message error, got %q", resp["error"])
	}
}

func TestSend_MalformedBody(t *testing.T) {
	h := NewChatHandler(&fakeGateway{allowed: true})

	rr := postChat(t, h, `{"message":`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestSend_Throttled(t *testing.T) {
	gw := &fakeGateway{allowed: false, retryAfter: 42 * time.Second}
	h := NewChatHandler(gw)

	rr := postChat(t, h, `{"message":"oi"}`)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "42" {
		t.Errorf("expected Retry-After 42, got %q", rr.Header().Get("Retry-After"))
	}
	if gw.respondCalls != 0 {
		t.Error("throttled requests must not reach the strategy chain")
	}
}

func TestSend_OK(t *testing.T) {
	gw := &fakeGateway{allowed: true, reply: chat.Reply{Text: "🐆 Fala, Ana! Tudo certo."}}
	h := NewChatHandler(gw)

	rr := postChat(t, h, `{"message":"oi","userName":"Ana"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Response != "🐆 Fala, Ana! Tudo certo." {
		t.Errorf("unexpected response text: %q", resp.Response)
	}
}

func TestReset(t *testing.T) {
	gw := &fakeGateway{allowed: true}
	h := NewChatHandler(gw)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/reset", nil)
	rr := httptest.NewRecorder()
	h.Reset(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp map[string]bool
	json.NewDecoder(rr.Body).Decode(&resp)
	if !resp["success"] {
		t.Error("expected success true")
	}
	if gw.resets != 1 {
		t.Errorf("expected one reset call, got %d", gw.resets)
	}
}

// ─── End-to-end scenarios against a real gateway ───

type stubLiveData struct{ err error }

func (s stubLiveData) FetchMatches(ctx context.Context) ([]esports.Match, error) {
	return nil, s.err
}

func (s stubLiveData) FetchTeamStats(ctx context.Context) (*esports.TeamStats, error) {
	return nil, s.err
}

func (s stubLiveData) FetchSchedule(ctx context.Context) ([]esports.ScheduleEvent, error) {
	return nil, s.err
}

func (s stubLiveData) FetchStream(ctx context.Context) (*esports.Stream, error) {
	return nil, s.err
}

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (s *stubGenerator) Reply(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func newRealHandler(gen *stubGenerator, liveErr error) *ChatHandler {
	gateway := chat.NewGateway(
		ratelimit.NewFixedWindow(10, time.Minute),
		chat.NewMemoryCache(10*time.Minute, 64),
		stubLiveData{err: liveErr},
		gen,
		nil,
		nil,
	)
	return NewChatHandler(gateway)
}

func TestScenario_SocialLinksAnsweredWithoutModel(t *testing.T) {
	gen := &stubGenerator{reply: "não deveria rodar"}
	h := newRealHandler(gen, nil)

	body, _ := json.Marshal(models.ChatRequest{Message: "quais as redes sociais da FURIA?"})
	rr := postChat(t, h, string(body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp models.ChatResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if !strings.Contains(resp.Response, "instagram.com/furiagg") {
		t.Errorf("expected predefined social links, got %q", resp.Response)
	}
	if gen.calls != 0 {
		t.Error("generative client must not be invoked for predefined intents")
	}
}

func TestScenario_EleventhRequestThrottled(t *testing.T) {
	h := newRealHandler(&stubGenerator{reply: "resposta"}, nil)

	for i := 1; i <= 10; i++ {
		rr := postChat(t, h, `{"message":"oi, tudo bem?"}`)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d expected 200, got %d", i, rr.Code)
		}
	}

	rr := postChat(t, h, `{"message":"oi, tudo bem?"}`)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("11th request expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("429 must carry a Retry-After header")
	}
}

func TestScenario_DataFailureStillReturns200(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model down")}
	h := newRealHandler(gen, errors.New("network error"))

	rr := postChat(t, h, `{"message":"tem jogo hoje?"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 even with every upstream failing, got %d", rr.Code)
	}

	var resp models.ChatResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if strings.TrimSpace(resp.Response) == "" {
		t.Error("reply text must never be empty")
	}
}
