package chat

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"time"

	"fanhub-backend/internal/esports"
	"fanhub-backend/internal/models"
	"fanhub-backend/internal/ratelimit"
)

// Generator produces a model reply from the conversation so far.
type Generator interface {
	Reply(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}

// LiveDataClient is the slice of the esports API the gateway consumes.
type LiveDataClient interface {
	FetchMatches(ctx context.Context) ([]esports.Match, error)
	FetchTeamStats(ctx context.Context) (*esports.TeamStats, error)
	FetchSchedule(ctx context.Context) ([]esports.ScheduleEvent, error)
	FetchStream(ctx context.Context) (*esports.Stream, error)
}

// ExchangeRecorder persists answered messages for the dashboard.
// Recording is best effort; a failure never affects the reply.
type ExchangeRecorder interface {
	Record(ctx context.Context, ex *models.ChatExchange) error
}

// Publisher fans live-event notifications out to subscribers.
type Publisher interface {
	Publish(ctx context.Context, n models.FanNotification)
}

// Reply is the gateway's answer plus how it was produced.
type Reply struct {
	Text   string
	Intent Intent
	Source string
}

const (
	SourceCache      = "cache"
	SourcePredefined = "predefined"
	SourceLiveData   = "live_data"
	SourceGenerative = "generative"
	SourceFallback   = "fallback"
)

// Gateway answers fan messages by trying, in order: response cache,
// predefined answers, live esports data, the generative model, and a
// static fallback. The first strategy that yields text wins; the result
// is personalized before leaving. It never fails a request.
type Gateway struct {
	limiter   ratelimit.Limiter
	cache     ResponseCache
	history   *HistoryStore
	liveData  LiveDataClient
	generator Generator
	recorder  ExchangeRecorder
	publisher Publisher
	pick      func(n int) int
}

func NewGateway(
	limiter ratelimit.Limiter,
	cache ResponseCache,
	liveData LiveDataClient,
	generator Generator,
	recorder ExchangeRecorder,
	publisher Publisher,
) *Gateway {
	return &Gateway{
		limiter:   limiter,
		cache:     cache,
		history:   NewHistoryStore(20),
		liveData:  liveData,
		generator: generator,
		recorder:  recorder,
		publisher: publisher,
		pick:      rand.Intn,
	}
}

// Allow reports whether this client may send another message.
func (g *Gateway) Allow(ctx context.Context, clientKey string) (bool, time.Duration) {
	return g.limiter.Allow(ctx, clientKey)
}

// Respond runs the strategy chain for one message. The worst case is a
// static fallback string; callers always get text back.
func (g *Gateway) Respond(ctx context.Context, req models.ChatRequest) Reply {
	intent := Classify(req.Message)
	key := cacheKey(req.Message)

	if text, ok := g.cache.Get(ctx, key); ok {
		return g.deliver(ctx, req, intent, SourceCache, text)
	}

	if text, ok := predefinedResponses[intent]; ok {
		return g.deliver(ctx, req, intent, SourcePredefined, text)
	}

	if text, ok := g.fetchLiveData(ctx, intent); ok {
		g.cache.Put(ctx, key, text)
		return g.deliver(ctx, req, intent, SourceLiveData, text)
	}

	raw, err := g.generator.Reply(ctx, g.history.Get(req.SessionID), req.Message)
	if err != nil {
		log.Printf("generative fallback failed: %v", err)
		text := staticFallbacks[g.pick(len(staticFallbacks))]
		return g.deliver(ctx, req, intent, SourceFallback, text)
	}

	g.history.Append(req.SessionID, "user", req.Message)
	g.history.Append(req.SessionID, "model", raw)

	text := Enhance(raw)
	g.cache.Put(ctx, key, text)
	return g.deliver(ctx, req, intent, SourceGenerative, text)
}

// Reset wipes every conversation so the next exchange starts fresh.
func (g *Gateway) Reset() {
	g.history.Clear()
}

func (g *Gateway) deliver(ctx context.Context, req models.ChatRequest, intent Intent, source, text string) Reply {
	final := Finalize(text, req.UserName)

	if g.recorder != nil {
		ex := &models.ChatExchange{
			SessionID: req.SessionID,
			Intent:    string(intent),
			Source:    source,
			Message:   req.Message,
			Reply:     final,
		}
		if err := g.recorder.Record(ctx, ex); err != nil {
			log.Printf("failed to record chat exchange: %v", err)
		}
	}

	return Reply{Text: final, Intent: intent, Source: source}
}

// fetchLiveData answers data intents from the esports APIs. Any failure
// logs and reports no data so the chain moves on.
func (g *Gateway) fetchLiveData(ctx context.Context, intent Intent) (string, bool) {
	switch intent {
	case IntentMatch:
		matches, err := g.liveData.FetchMatches(ctx)
		if err != nil {
			log.Printf("match fetch failed: %v", err)
			return "", false
		}
		for _, m := range matches {
			if m.Live {
				g.notify(ctx, models.FanNotification{
					Topic:   "matches",
					Title:   "FURIA ao vivo!",
					Message: "A FURIA está jogando agora contra " + m.Opponent,
				})
				break
			}
		}
		return esports.FormatMatches(matches), true

	case IntentStats:
		stats, err := g.liveData.FetchTeamStats(ctx)
		if err != nil {
			log.Printf("stats fetch failed: %v", err)
			return "", false
		}
		if stats == nil {
			return "", false
		}
		return esports.FormatStats(stats), true

	case IntentSchedule:
		events, err := g.liveData.FetchSchedule(ctx)
		if err != nil {
			log.Printf("schedule fetch failed: %v", err)
			return "", false
		}
		return esports.FormatSchedule(events), true

	case IntentStream:
		stream, err := g.liveData.FetchStream(ctx)
		if err != nil {
			log.Printf("stream fetch failed: %v", err)
			return "", false
		}
		if stream == nil {
			return "", false
		}
		if stream.Live {
			g.notify(ctx, models.FanNotification{
				Topic:   "streams",
				Title:   "Live no ar!",
				Message: stream.Title,
				Link:    stream.URL,
			})
		}
		return esports.FormatStream(stream), true
	}

	return "", false
}

func (g *Gateway) notify(ctx context.Context, n models.FanNotification) {
	if g.publisher != nil {
		g.publisher.Publish(ctx, n)
	}
}

func cacheKey(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}
