package chat

// Predefined answers for intents that never need live data or the model.
var predefinedResponses = map[Intent]string{
	IntentSocialLinks: "Você encontra a FURIA em todas as redes! 🐆\n" +
		"• Instagram: https://www.instagram.com/furiagg\n" +
		"• X/Twitter: https://x.com/FURIA\n" +
		"• YouTube: https://www.youtube.com/furiagg\n" +
		"• TikTok: https://www.tiktok.com/@furiagg",
	IntentHistory: "A FURIA nasceu em 2017, fundada por Jaime Pádua e André Akkari, " +
		"com o sonho de levar o Brasil ao topo do CS. De lá pra cá a pantera cresceu " +
		"pra LoL, Valorant, Rocket League e muito mais — sempre com a torcida mais " +
		"quente do mundo junto! 🖤",
	IntentJoke: "Por que o time adversário trouxe escada pro servidor? " +
		"Porque contra a FURIA só jogando de outro nível! 😂🐆",
	IntentOffensive: "Opa, vamos manter o respeito por aqui! 🤝 A torcida da FURIA " +
		"é conhecida pela paixão, não pela treta. Bora falar de jogo?",
}

// Last-resort replies when the model is unavailable. Picked by the
// gateway's injected random source.
var staticFallbacks = []string{
	"Deu ruim aqui no meu lado, mas já estou me recuperando! Pergunta de novo em instantes? 🐆",
	"Hmm, não consegui processar essa agora. Tenta reformular pra mim? 🖤",
	"A pantera piscou! Pode repetir a pergunta?",
	"Estou com dificuldade técnica no momento, mas não desiste de mim! Tenta de novo. 🔥",
}
