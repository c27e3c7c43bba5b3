package dialog

import (
	"context"
	"strconv"
	"strings"
)

// Source tags attached to every reply so the client knows which surface
// produced it (and which intake form to open, if any).
const (
	SourceExit          = "exit"
	SourceMenu          = "menu"
	SourceSubmenu       = "submenu"
	SourceConfirmation  = "confirmacion"
	SourceForm          = "formulario"
	SourceFormDate      = "formulario_fecha"
	SourceFormComplaint = "formulario_queja"
	SourceSemantic      = "semantic"
)

// ContactFormPath is the handoff directive sent when the guest confirms they
// want to reach the staff directly.
const ContactFormPath = "/formulario_contacto"

// Reply is the router's answer to one inbound message.
type Reply struct {
	Text   string `json:"reply"`
	Source string `json:"source"`
	Form   string `json:"form,omitempty"`
}

var (
	exitPhrases     = []string{"salir", "adios", "gracias"}
	greetingPhrases = []string{"hola", "buenos días", "buenas tardes", "menu", "inicio"}
	yesTokens       = []string{"sí", "si", "claro", "ok", "quiero"}
	noTokens        = []string{"no", "nah", "no gracias"}

	reservationTriggers = []string{
		"reservar", "quiero hacer una reserva", "hacer una reserva",
		"quiero reservar", "reserva",
	}
	complaintTriggers = []string{
		"queja", "quejas", "poner una queja", "hacer una queja",
		"quiero quejarme", "reclamo", "reclamos", "reportar un problema",
		"hacer un reclamo", "reclamar", "reclamación", "problema",
	}
)

const (
	farewellReply       = "👋 ¡Gracias por visitar el Hotel Paraíso Azul! Esperamos verte pronto."
	invalidOptionReply  = "Opción no válida. Intenta de nuevo."
	pickNumberReply     = "Por favor, selecciona un número válido o escribe 'menu' para regresar."
	confirmContactReply = "¿Quieres contactar directamente con el personal del hotel? (Responde 'sí' o 'no')"
	noMatchReply        = "Lo siento, no estoy seguro de entenderte. 😕 ¿Quieres contactar directamente con el personal del hotel? (Responde 'si' o 'no')"
)

// Router is the dialog state machine. Each message is resolved by exactly one
// rule; the rules run in a fixed precedence order and the first hit wins:
//
//	exit → active submenu → greeting/menu → contact confirmation →
//	reservation trigger → complaint trigger → main-menu digit →
//	literal "8" → semantic fallback
//
// The router never touches the database or the mailer; intake replies only
// carry a source tag / form directive for the client to act on.
type Router struct {
	sessions  Store
	matcher   *Matcher
	holder    *Holder
	threshold float64
}

func NewRouter(sessions Store, matcher *Matcher, holder *Holder, threshold float64) *Router {
	return &Router{
		sessions:  sessions,
		matcher:   matcher,
		holder:    holder,
		threshold: threshold,
	}
}

// Handle routes one inbound message for the given session.
func (r *Router) Handle(ctx context.Context, sessionID, message string) Reply {
	msg := strings.ToLower(strings.TrimSpace(message))

	session, _ := r.sessions.Get(sessionID)

	// Exit wins from any state.
	if containsExact(exitPhrases, msg) {
		r.sessions.Delete(sessionID)
		return Reply{Text: farewellReply, Source: SourceExit}
	}

	if session.State() == StateInSubmenu {
		return r.handleSubmenu(sessionID, session, msg)
	}

	if containsExact(greetingPhrases, msg) {
		r.sessions.Delete(sessionID)
		return Reply{Text: RenderMainMenu(), Source: SourceMenu}
	}

	if session.State() == StateAwaitingContact {
		return r.handleContactConfirmation(sessionID, msg)
	}

	if containsSubstring(reservationTriggers, msg) {
		return Reply{
			Text:   "Perfecto 😊 Necesito algunos datos para ayudarte con tu reserva.",
			Source: SourceFormDate,
		}
	}

	if containsSubstring(complaintTriggers, msg) {
		return Reply{
			Text:   "Perfecto 😟 Necesito algunos datos para ayudarte con tu queja.",
			Source: SourceFormComplaint,
		}
	}

	if entry, ok := MenuEntryByKey(msg); ok {
		items := r.holder.Current().ByIntent(entry.Intent)
		r.sessions.Save(sessionID, &Session{Intent: entry.Intent, Submenu: items})
		return Reply{Text: RenderSubmenu(entry.Intent, items), Source: SourceSubmenu}
	}

	// Complaint shortcut kept from the original flow for clients that send
	// the bare digit without the menu being active.
	if msg == "8" {
		return Reply{Text: "Vamos a registrar tu queja.", Source: SourceFormComplaint}
	}

	return r.handleSemantic(ctx, sessionID, message)
}

func (r *Router) handleSubmenu(sessionID string, session *Session, msg string) Reply {
	digit := isDigits(msg)

	// The reservation submenu hijacks option 2 to start the booking form,
	// and any digit in the complaints submenu opens the complaint form.
	if session.Intent == "reserva_info" && digit {
		if idx, _ := strconv.Atoi(msg); idx == 2 {
			return Reply{Text: "Perfecto 😊 Vamos a iniciar tu reserva.", Source: SourceFormDate}
		}
	}
	if session.Intent == "quejas" && digit {
		return Reply{Text: "Vamos a registrar tu queja.", Source: SourceFormComplaint}
	}

	if digit {
		idx, _ := strconv.Atoi(msg)
		if idx >= 1 && idx <= len(session.Submenu) {
			return Reply{Text: session.Submenu[idx-1].Response, Source: SourceSubmenu}
		}
		return Reply{Text: invalidOptionReply, Source: SourceSubmenu}
	}

	if msg == "menu" || msg == "inicio" {
		r.sessions.Delete(sessionID)
		return Reply{Text: RenderMainMenu(), Source: SourceMenu}
	}

	return Reply{Text: pickNumberReply, Source: SourceSubmenu}
}

func (r *Router) handleContactConfirmation(sessionID, msg string) Reply {
	switch {
	case containsExact(yesTokens, msg):
		r.sessions.Delete(sessionID)
		return Reply{
			Text:   "Abriendo formulario de contacto...",
			Source: SourceForm,
			Form:   ContactFormPath,
		}
	case containsExact(noTokens, msg):
		r.sessions.Delete(sessionID)
		return Reply{
			Text:   "Entendido 😊. Volviendo al menú principal...\n\n" + RenderMainMenu(),
			Source: SourceMenu,
		}
	default:
		// Self-loop: keep asking, keep the session.
		return Reply{Text: confirmContactReply, Source: SourceConfirmation}
	}
}

func (r *Router) handleSemantic(ctx context.Context, sessionID, message string) Reply {
	responses := r.matcher.Match(ctx, message, r.threshold)
	if len(responses) > 0 {
		return Reply{Text: strings.Join(responses, "\n"), Source: SourceSemantic}
	}

	r.sessions.Save(sessionID, &Session{Intent: IntentDirectContact})
	return Reply{Text: noMatchReply, Source: SourceSemantic}
}

func containsExact(set []string, msg string) bool {
	for _, s := range set {
		if msg == s {
			return true
		}
	}
	return false
}

func containsSubstring(set []string, msg string) bool {
	for _, s := range set {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
