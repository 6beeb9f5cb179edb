package chat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Replies that already open with one of these were personalized once and
// must not be touched again.
var leadingEmojis = []string{"🐆", "🔥", "🖤", "🎮", "📅", "📊", "📺", "😂", "🤝", "👋"}

// Finalize prepends a greeting built from the caller's first name, or a
// generic one when no name was sent. Idempotent: an already-personalized
// reply passes through unchanged.
func Finalize(text, callerName string) string {
	trimmed := strings.TrimSpace(text)
	for _, emoji := range leadingEmojis {
		if strings.HasPrefix(trimmed, emoji) {
			return text
		}
	}

	greeting := "Fala, fera!"
	if name := firstName(callerName); name != "" {
		greeting = "Fala, " + name + "!"
	}
	return "🐆 " + greeting + " " + trimmed
}

func firstName(callerName string) string {
	fields := strings.Fields(callerName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

var emojiInserts = []struct {
	keyword string
	emoji   string
}{
	{"vitória", "🏆"},
	{"vitoria", "🏆"},
	{"jogo", "🎮"},
	{"partida", "🎮"},
	{"furia", "🐆"},
	{"stream", "📺"},
	{"live", "📺"},
	{"campeonato", "🏅"},
}

var topicLinks = []struct {
	keywords []string
	label    string
	link     string
}{
	{[]string{"jogo", "partida", "placar"}, "Acompanhe as partidas", "https://www.hltv.org/team/8297/furia"},
	{[]string{"estatística", "estatistica", "stats", "desempenho"}, "Estatísticas completas", "https://www.hltv.org/stats/teams/8297/furia"},
	{[]string{"agenda", "calendário", "calendario", "campeonato"}, "Agenda de campeonatos", "https://www.hltv.org/events"},
	{[]string{"stream", "live", "twitch", "assistir"}, "Assista ao vivo", "https://www.twitch.tv/furiatv"},
}

// Enhance decorates model output with emoji after topic keywords and at
// most one canonical link per detected topic. Cached and predefined
// replies skip this pass. Every insertion checks for presence first, so
// running twice changes nothing.
func Enhance(text string) string {
	for _, ins := range emojiInserts {
		if strings.Contains(text, ins.emoji) {
			continue
		}
		_, end := keywordMatch(text, ins.keyword)
		if end < 0 {
			continue
		}
		text = text[:end] + " " + ins.emoji + text[end:]
	}

	for _, topic := range topicLinks {
		if strings.Contains(text, topic.link) {
			continue
		}
		for _, kw := range topic.keywords {
			if start, _ := keywordMatch(text, kw); start >= 0 {
				text += "\n\n🔗 " + topic.label + ": " + topic.link
				break
			}
		}
	}

	return text
}

// keywordMatch locates kw in text case-insensitively and returns the
// byte range of the match in the original string. Offsets come from
// text itself, never from a lowered copy, so case pairs with different
// byte widths cannot shift an insertion point. Occurrences inside URLs
// are skipped (appended links would otherwise re-trigger insertions).
func keywordMatch(text, kw string) (start, end int) {
	kwRunes := []rune(kw)

	for i := 0; i < len(text); {
		j := i
		matched := true
		for _, kr := range kwRunes {
			r, size := utf8.DecodeRuneInString(text[j:])
			if size == 0 || unicode.ToLower(r) != kr {
				matched = false
				break
			}
			j += size
		}
		if matched && !insideURL(text, i) {
			return i, j
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return -1, -1
}

func insideURL(text string, idx int) bool {
	tokenStart := strings.LastIndexAny(text[:idx], " \n\t")
	return strings.HasPrefix(text[tokenStart+1:], "http")
}
