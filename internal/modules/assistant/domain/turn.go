package domain

import (
	"fmt"

	apperrors "mindmate/internal/platform/errors"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role    Role
	Content string
}

// Persona selects the system prompt sent ahead of the conversation.
type Persona string

const (
	PersonaChat  Persona = "chat"
	PersonaVoice Persona = "voice"
)

const chatPrompt = `Ты Марк, опытный психолог. Ты ведешь конфиденциальную беседу с клиентом.
Отвечай на русском языке, тепло и без оценок. Задавай уточняющие вопросы,
помогай клиенту разобраться в чувствах и не ставь диагнозов.
Если клиент упоминает угрозу жизни, мягко порекомендуй обратиться на линию экстренной помощи.`

const voicePrompt = `Ты Марк, психолог, и разговариваешь с клиентом голосом.
Отвечай коротко, двумя-тремя предложениями, простыми фразами, которые удобно произносить вслух.
Отвечай на русском языке.`

func (p Persona) SystemPrompt() (string, error) {
	switch p {
	case PersonaChat, "":
		return chatPrompt, nil
	case PersonaVoice:
		return voicePrompt, nil
	default:
		return "", fmt.Errorf("%w: unknown persona %q", apperrors.ErrInvalidInput, string(p))
	}
}
