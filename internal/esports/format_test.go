package esports

import (
	"strings"
	"testing"
	"time"
)

func TestFormatMatches_LiveWins(t *testing.T) {
	matches := []Match{
		{Opponent: "NAVI", Tournament: "IEM", StartsAt: time.Now().Add(24 * time.Hour)},
		{Opponent: "Liquid", Tournament: "ESL Pro League", Live: true, Score: "1-0"},
	}

	got := FormatMatches(matches)
	if !strings.Contains(got, "AGORA") || !strings.Contains(got, "Liquid") {
		t.Errorf("expected live match summary, got %q", got)
	}
	if !strings.Contains(got, "1-0") {
		t.Errorf("expected score in live summary, got %q", got)
	}
}

func TestFormatMatches_NextUpcoming(t *testing.T) {
	matches := []Match{
		{Opponent: "NAVI", Tournament: "IEM", StartsAt: time.Now().Add(48 * time.Hour)},
		{Opponent: "MIBR", Tournament: "IEM", StartsAt: time.Now().Add(2 * time.Hour)},
	}

	got := FormatMatches(matches)
	if !strings.Contains(got, "MIBR") {
		t.Errorf("expected the soonest upcoming match, got %q", got)
	}
}

func TestFormatMatches_Empty(t *testing.T) {
	got := FormatMatches(nil)
	if !strings.Contains(got, "não tem partida") {
		t.Errorf("expected no-match notice, got %q", got)
	}
}

func TestFormatStats(t *testing.T) {
	got := FormatStats(&TeamStats{Wins: 30, Losses: 10, WinRate: 0.75, WorldRank: 8, RecentForm: "WWLWW"})
	for _, want := range []string{"30", "10", "75%", "#8", "WWLWW"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in stats summary, got %q", want, got)
		}
	}
}

func TestFormatSchedule_LimitsItems(t *testing.T) {
	events := []ScheduleEvent{
		{Tournament: "IEM Katowice", StartsAt: time.Now(), Location: "Polônia"},
		{Tournament: "ESL Pro League", StartsAt: time.Now(), Location: "Malta"},
		{Tournament: "BLAST Premier", StartsAt: time.Now(), Location: "Dinamarca"},
		{Tournament: "PGL Major", StartsAt: time.Now(), Location: "Dinamarca"},
	}

	got := FormatSchedule(events)
	if strings.Count(got, "•") != scheduleMaxItems {
		t.Errorf("expected %d schedule lines, got %q", scheduleMaxItems, got)
	}
	if strings.Contains(got, "PGL Major") {
		t.Errorf("fourth event should be cut, got %q", got)
	}
}

func TestFormatSchedule_Empty(t *testing.T) {
	got := FormatSchedule(nil)
	if !strings.Contains(got, "agenda") {
		t.Errorf("expected empty-schedule notice, got %q", got)
	}
}

func TestFormatStream(t *testing.T) {
	live := FormatStream(&Stream{Live: true, Title: "Treino aberto", Viewers: 1200, URL: "https://twitch.tv/furiatv"})
	if !strings.Contains(live, "AO VIVO") || !strings.Contains(live, "1200") {
		t.Errorf("expected live stream summary, got %q", live)
	}

	offline := FormatStream(&Stream{Live: false})
	if !strings.Contains(offline, "não está transmitindo") {
		t.Errorf("expected offline notice, got %q", offline)
	}
}
