package notify

import "context"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

type Message struct {
	Text     string   `json:"text"`
	Severity Severity `json:"severity"`
}

// Notifier é o destino dos avisos visíveis ao usuário (toasts). Fire and
// forget: o núcleo não espera confirmação nem propaga falha de entrega.
type Notifier interface {
	Notify(ctx context.Context, msg Message)
}

// Nop descarta todas as mensagens. Usado nos testes.
type Nop struct{}

func (Nop) Notify(context.Context, Message) {}
