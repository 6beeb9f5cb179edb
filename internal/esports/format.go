package esports

import (
	"fmt"
	"strings"
	"time"
)

const scheduleMaxItems = 3

// FormatMatches renders the match list: a live game wins over the next
// upcoming one; an empty list turns into a friendly notice.
func FormatMatches(matches []Match) string {
	for _, m := range matches {
		if m.Live {
			text := fmt.Sprintf("A FURIA está jogando AGORA contra %s pelo %s!", m.Opponent, m.Tournament)
			if m.Score != "" {
				text += fmt.Sprintf(" Placar atual: %s.", m.Score)
			}
			return text + " Bora torcer! 🔥"
		}
	}

	var next *Match
	for i := range matches {
		if matches[i].StartsAt.After(time.Now()) {
			if next == nil || matches[i].StartsAt.Before(next.StartsAt) {
				next = &matches[i]
			}
		}
	}
	if next != nil {
		return fmt.Sprintf("O próximo jogo da FURIA é contra %s pelo %s, em %s.",
			next.Opponent, next.Tournament, next.StartsAt.Format("02/01 às 15h04"))
	}

	return "A FURIA não tem partida rolando agora, mas fica ligado que em breve tem mais!"
}

func FormatStats(stats *TeamStats) string {
	return fmt.Sprintf(
		"Números recentes da FURIA: %d vitórias e %d derrotas (%.0f%% de aproveitamento), ranking mundial #%d. Forma recente: %s.",
		stats.Wins, stats.Losses, stats.WinRate*100, stats.WorldRank, stats.RecentForm)
}

func FormatSchedule(events []ScheduleEvent) string {
	if len(events) == 0 {
		return "A agenda de campeonatos ainda não foi anunciada. Fica de olho!"
	}

	var b strings.Builder
	b.WriteString("Próximos campeonatos da FURIA:\n")
	for i, ev := range events {
		if i == scheduleMaxItems {
			break
		}
		b.WriteString(fmt.Sprintf("• %s — %s (%s)\n",
			ev.Tournament, ev.StartsAt.Format("02/01/2006"), ev.Location))
	}
	return strings.TrimRight(b.String(), "\n")
}

func FormatStream(stream *Stream) string {
	if stream.Live {
		return fmt.Sprintf("A FURIA está AO VIVO agora: \"%s\" com %d pessoas assistindo! Entra lá: %s",
			stream.Title, stream.Viewers, stream.URL)
	}
	return "A FURIA não está transmitindo no momento. Ative o sininho pra não perder a próxima live!"
}
