package session

// EffectKind discriminates the one-shot signals the manager emits for the
// UI layer.
type EffectKind int

const (
	// EffectLoginSucceeded fires exactly once per successful login.
	EffectLoginSucceeded EffectKind = iota
	// EffectRegisterSucceeded fires exactly once per successful registration.
	EffectRegisterSucceeded
	// EffectMessage carries a transient user-facing message.
	EffectMessage
)

// Effect is a one-shot outbound signal. Message is set for EffectMessage.
type Effect struct {
	Kind    EffectKind
	Message string
}

// effectBuffer sizes the outbound queue. Emissions are queued when no
// listener is attached; they are never dropped.
const effectBuffer = 64

// Effects returns the manager's outbound signal channel. Each effect is
// delivered to at most one receiver.
func (m *Manager) Effects() <-chan Effect {
	return m.effects
}

func (m *Manager) emit(e Effect) {
	m.effects <- e
}

func (m *Manager) emitMessage(msg string) {
	m.emit(Effect{Kind: EffectMessage, Message: msg})
}
