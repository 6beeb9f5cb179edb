package chat

import "strings"

// Intent is the classified purpose of a fan message.
type Intent string

const (
	IntentSocialLinks Intent = "social_links"
	IntentHistory     Intent = "history"
	IntentJoke        Intent = "joke"
	IntentOffensive   Intent = "offensive"
	IntentMatch       Intent = "match"
	IntentStats       Intent = "stats"
	IntentSchedule    Intent = "schedule"
	IntentStream      Intent = "stream"
	IntentDefault     Intent = "default"
)

// Keyword groups are evaluated in order; the first group with a hit wins.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentSocialLinks, []string{
		"redes sociais", "rede social", "instagram", "twitter", "tiktok",
		"youtube", "facebook", "onde sigo", "como seguir",
	}},
	{IntentHistory, []string{
		"história", "historia", "fundação", "fundacao", "quando surgiu",
		"origem", "como começou", "como comecou",
	}},
	{IntentJoke, []string{
		"piada", "meme", "zoeira", "me faz rir", "engraçad", "engracad",
	}},
	{IntentOffensive, []string{
		"lixo", "merda", "idiota", "burro", "odeio vocês", "odeio voces",
	}},
	{IntentMatch, []string{
		"tem jogo", "jogo hoje", "jogo de hoje", "jogando agora", "partida",
		"placar", "resultado", "quem ganhou", "tá jogando", "ta jogando",
	}},
	{IntentStats, []string{
		"estatísticas", "estatisticas", "stats", "desempenho", "rating",
		"aproveitamento", "taxa de vitória", "taxa de vitoria",
	}},
	{IntentSchedule, []string{
		"agenda", "calendário", "calendario", "próximos jogos",
		"proximos jogos", "campeonato", "quando joga", "cronograma",
	}},
	{IntentStream, []string{
		"stream", "live", "twitch", "transmissão", "transmissao",
		"onde assistir", "assistir",
	}},
}

// Classify maps a raw message to exactly one intent. It is pure: same
// input, same output, no shared state.
func Classify(text string) Intent {
	msg := strings.ToLower(text)
	for _, group := range intentKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(msg, kw) {
				return group.intent
			}
		}
	}
	return IntentDefault
}
