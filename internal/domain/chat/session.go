package chat

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"floraconcierge/backend/internal/domain/prefs"
)

// Session is one scripted conversation. It lives only while the chat view is
// open; its sole durable output is the Preferences handed off on completion.
// Session is not safe for concurrent use; the owning session serializes
// access.
type Session struct {
	tenantName string
	now        func() time.Time

	Step     Step
	Prefs    prefs.Preferences
	Messages []Message
}

func NewSession(tenantName string, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{tenantName: tenantName, now: now, Step: StepGreeting}
	s.reply(s.greetingText(), greetingOptions())
	return s
}

func (s *Session) greetingText() string {
	hour := s.now().Hour()
	greeting := "Boa noite"
	if hour < 12 {
		greeting = "Bom dia"
	} else if hour < 18 {
		greeting = "Boa tarde"
	}
	return fmt.Sprintf("%s! 🌿 Sou o assistente virtual da %s. Estou aqui para ajudar você a encontrar a planta perfeita!\n\nPosso fazer algumas perguntinhas rápidas para entender melhor o que você procura?", greeting, s.tenantName)
}

func greetingOptions() []Option {
	return []Option{
		{Label: "Vamos lá!", Value: "start"},
		{Label: "Ver todas as plantas", Value: "skip"},
	}
}

func environmentOptions() []Option {
	return []Option{
		{Label: "Dentro de casa", Value: "indoor"},
		{Label: "Varanda/Terraço", Value: "balcony"},
		{Label: "Jardim/Quintal", Value: "outdoor"},
		{Label: "Escritório", Value: "office"},
	}
}

// Handle feeds one user input (quick-reply value or typed text) to the
// current step. A successful classification writes preference fields and
// advances; a failed one appends a single re-prompt and stays put.
func (s *Session) Handle(input string) Outcome {
	original := strings.TrimSpace(input)
	value := strings.ToLower(original)
	s.append(Message{Sender: SenderUser, Text: original})

	switch s.Step {
	case StepGreeting:
		return s.handleGreeting(value)
	case StepLocation:
		return s.handleLocation(value, original)
	case StepEnvironment:
		return s.handleEnvironment(value)
	case StepExperience:
		return s.handleExperience(value)
	case StepPets:
		return s.handlePets(value)
	case StepBudget:
		return s.handleBudget(value)
	case StepStyle:
		return s.handleStyle(value)
	case StepConfirm:
		return s.handleConfirm(value)
	}
	// Results is terminal; anything after is ignored.
	return Outcome{}
}

func (s *Session) handleGreeting(value string) Outcome {
	switch {
	case value == "start" || containsAny(value, "sim", "vamos", "ok"):
		s.Step = StepLocation
		return s.outcome(s.reply(
			"Perfeito! Para começar, qual é a sua cidade ou região? 📍\n\nIsso me ajuda a sugerir plantas que se adaptam melhor ao clima da sua área.",
			[]Option{{Label: "Usar minha localização", Value: "geolocation"}},
		))
	case value == "skip" || containsAny(value, "ver", "todas"):
		return s.finish()
	}
	return s.reprompt("Posso fazer algumas perguntas rápidas? Responda \"vamos lá\" para começar ou \"ver todas as plantas\" para pular.")
}

func (s *Session) handleLocation(value, original string) Outcome {
	if value == "geolocation" {
		out := Outcome{NeedsLocation: true}
		return out
	}
	city := extractCity(original)
	if city == "" {
		return s.reprompt("Não consegui identificar sua cidade. Pode me dizer o nome da cidade novamente?")
	}
	s.Prefs.City = city
	s.Step = StepEnvironment
	return s.outcome(s.reply(
		fmt.Sprintf("Entendido! %s é uma ótima região para plantas. 🌱\n\nAgora me conta: onde você pretende colocar a planta?", city),
		environmentOptions(),
	))
}

// ProvideCity resumes the location step after the caller resolved the device
// position.
func (s *Session) ProvideCity(city string) Outcome {
	if s.Step != StepLocation {
		return Outcome{}
	}
	s.Prefs.City = city
	s.Step = StepEnvironment
	return s.outcome(s.reply(
		fmt.Sprintf("Detectei que você está em %s! 📍\n\nAgora me conta: onde você pretende colocar a planta?", city),
		environmentOptions(),
	))
}

// ProvideCityFailed resumes the location step after a location error. The
// flow degrades to asking for the city by name.
func (s *Session) ProvideCityFailed() Outcome {
	if s.Step != StepLocation {
		return Outcome{}
	}
	return s.outcome(s.reply(
		"Não consegui acessar sua localização, mas sem problemas! Pode me dizer o nome da sua cidade?",
		nil,
	))
}

func (s *Session) handleEnvironment(value string) Outcome {
	env, ok := extractEnvironment(value)
	if !ok {
		return s.reprompt("Não entendi o ambiente. É dentro de casa, varanda, jardim ou escritório?")
	}
	s.Prefs.Environment = &env
	s.Step = StepExperience
	return s.outcome(s.reply(
		"Ótima escolha! 🌿\n\nE quanto à experiência com plantas, como você se considera?",
		[]Option{
			{Label: "🌱 Iniciante - Nunca tive plantas", Value: "beginner"},
			{Label: "🌿 Iniciante - Tenho algumas", Value: "easy"},
			{Label: "🌳 Intermediário - Cuido regularmente", Value: "moderate"},
			{Label: "🌴 Experiente - Sou praticamente um jardineiro!", Value: "advanced"},
		},
	))
}

func (s *Session) handleExperience(value string) Outcome {
	care, ok := extractCareLevel(value)
	if !ok {
		return s.reprompt("Não entendi. Você se considera iniciante, intermediário ou experiente com plantas?")
	}
	s.Prefs.CareLevel = &care
	s.Step = StepPets
	return s.outcome(s.reply(
		"Entendido! 💚\n\nVocê tem pets em casa? Algumas plantas podem ser tóxicas para cachorros e gatos.",
		[]Option{
			{Label: "Sim, tenho cachorro 🐕", Value: "dog"},
			{Label: "Sim, tenho gato 🐈", Value: "cat"},
			{Label: "Tenho ambos! 🐕🐈", Value: "both"},
			{Label: "Não tenho pets", Value: "no"},
		},
	))
}

func (s *Session) handlePets(value string) Outcome {
	petFriendly := extractPetFriendly(value)
	s.Prefs.PetFriendly = &petFriendly
	s.Step = StepBudget

	text := "Entendido! 🏠\n\nQual é a sua faixa de preço?"
	if petFriendly {
		text = "Perfeito! Vou buscar apenas plantas seguras para pets. 🐾\n\nQual é a sua faixa de preço?"
	}
	return s.outcome(s.reply(text, []Option{
		{Label: "Até R$ 50", Value: "0-50"},
		{Label: "R$ 50 a R$ 100", Value: "50-100"},
		{Label: "R$ 100 a R$ 200", Value: "100-200"},
		{Label: "Acima de R$ 200", Value: "200+"},
		{Label: "Qualquer preço", Value: "any"},
	}))
}

func (s *Session) handleBudget(value string) Outcome {
	budget := extractBudget(value)
	s.Prefs.Budget = &budget
	s.Step = StepStyle
	return s.outcome(s.reply(
		"Ótimo! 💚\n\nPor último, que tipo de planta você mais gosta? (Pode escolher várias)",
		[]Option{
			{Label: "🌺 Flores coloridas", Value: "flowers"},
			{Label: "🌵 Suculentas e cactos", Value: "succulents"},
			{Label: "🌿 Folhagens verdes", Value: "foliage"},
			{Label: "🌳 Árvores e palmeiras", Value: "trees"},
			{Label: "🌱 Ervas aromáticas", Value: "herbs"},
			{Label: "🌸 Orquídeas", Value: "orchids"},
			{Label: "Todas! Surpreenda-me", Value: "all"},
		},
	))
}

func (s *Session) handleStyle(value string) Outcome {
	s.Prefs.Categories = extractCategories(value)
	if s.Prefs.Budget == nil {
		s.Prefs.Budget = &prefs.BudgetRange{Min: 0, Max: 500}
	}
	s.Step = StepConfirm
	return s.outcome(s.reply(
		fmt.Sprintf("Perfeito! 🎉 Deixa eu confirmar o que entendi:\n\n%s\n\nEstá tudo certo?", s.summary()),
		[]Option{
			{Label: "Sim, mostrar plantas! 🌿", Value: "confirm"},
			{Label: "Quero refazer", Value: "restart"},
		},
	))
}

func (s *Session) handleConfirm(value string) Outcome {
	switch {
	case value == "confirm" || containsAny(value, "sim", "mostrar"):
		return s.finish()
	case value == "restart" || strings.Contains(value, "refazer"):
		s.Prefs = prefs.Preferences{}
		s.Messages = nil
		s.Step = StepGreeting
		out := s.outcome(s.reply(s.greetingText(), greetingOptions()))
		out.Restarted = true
		return out
	}
	return s.reprompt("Está tudo certo? Responda \"sim\" para ver as plantas ou \"refazer\" para recomeçar.")
}

// finish closes the flow. Every entry into results carries a fully defaulted
// preference record.
func (s *Session) finish() Outcome {
	s.Prefs = s.Prefs.Defaulted()
	s.Step = StepResults
	out := s.outcome(s.reply("Ótimo! 🌿 Deixa eu buscar as melhores opções para você...", nil))
	out.Done = true
	return out
}

func (s *Session) summary() string {
	var parts []string
	p := s.Prefs
	if p.City != "" {
		parts = append(parts, "📍 Local: "+p.City)
	}
	if p.Environment != nil {
		parts = append(parts, "🏠 Ambiente: "+environmentLabel(*p.Environment))
	}
	if p.CareLevel != nil {
		parts = append(parts, "🌱 Experiência: "+careLabel(*p.CareLevel))
	}
	if p.PetFriendly != nil {
		if *p.PetFriendly {
			parts = append(parts, "🐾 Pet friendly: Sim")
		} else {
			parts = append(parts, "🏠 Pet friendly: Não necessário")
		}
	}
	if p.Budget != nil {
		parts = append(parts, fmt.Sprintf("💰 Orçamento: R$ %.0f - R$ %.0f", p.Budget.Min, p.Budget.Max))
	}
	if len(p.Categories) > 0 {
		labels := make([]string, 0, len(p.Categories))
		for _, c := range p.Categories {
			labels = append(labels, categoryLabel(c))
		}
		parts = append(parts, "🌿 Tipos: "+strings.Join(labels, ", "))
	}
	return strings.Join(parts, "\n")
}

func environmentLabel(e prefs.Environment) string {
	switch e {
	case prefs.EnvIndoor:
		return "Dentro de casa"
	case prefs.EnvOutdoor:
		return "Área externa"
	case prefs.EnvBalcony:
		return "Varanda/Terraço"
	case prefs.EnvOffice:
		return "Escritório"
	case prefs.EnvGarden:
		return "Jardim"
	}
	return string(e)
}

func careLabel(c prefs.CareLevel) string {
	switch c {
	case prefs.CareBeginner:
		return "Iniciante"
	case prefs.CareEasy:
		return "Fácil"
	case prefs.CareModerate:
		return "Moderado"
	case prefs.CareAdvanced:
		return "Avançado"
	case prefs.CareExpert:
		return "Expert"
	}
	return string(c)
}

func categoryLabel(c prefs.Category) string {
	switch c {
	case prefs.CatFlowers:
		return "Flores"
	case prefs.CatSucculents:
		return "Suculentas"
	case prefs.CatFoliage:
		return "Folhagens"
	case prefs.CatTrees:
		return "Árvores"
	case prefs.CatHerbs:
		return "Ervas"
	case prefs.CatOrchids:
		return "Orquídeas"
	case prefs.CatCacti:
		return "Cactos"
	case prefs.CatBonsai:
		return "Bonsais"
	}
	return string(c)
}

// reply appends a system message with a typing delay hint and returns it.
func (s *Session) reply(text string, options []Option) Message {
	m := Message{
		Sender:       SenderSystem,
		Text:         text,
		Options:      options,
		TypingMillis: 800 + rand.Intn(500),
	}
	return s.append(m)
}

func (s *Session) append(m Message) Message {
	m.ID = uuid.NewString()
	m.SentAt = s.now()
	s.Messages = append(s.Messages, m)
	return m
}

// reprompt stays on the current step and appends exactly one nudge.
func (s *Session) reprompt(text string) Outcome {
	return s.outcome(s.reply(text, nil))
}

func (s *Session) outcome(replies ...Message) Outcome {
	return Outcome{Replies: replies}
}
