package core

// Role identifies the conversational origin of a message.
type Role string

const (
	// RoleUser marks the caller supplied task message.
	RoleUser Role = "user"
	// RoleAssistant marks agent produced output.
	RoleAssistant Role = "assistant"
	// RoleSystem marks instruction / priming content.
	RoleSystem Role = "system"
)

// Message is a single immutable entry in a conversation. Author identifies
// the agent (node) that produced the message and is empty for user and
// system messages. Ordering within a conversation is significant and
// append-only; the engine never rewrites a message once appended.
type Message struct {
	Role   Role   `json:"role"`
	Author string `json:"author,omitempty"`
	Text   string `json:"text"`
}

// NewUserMessage creates a user-authored task message.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

// NewAssistantMessage creates an assistant message attributed to the named
// agent.
func NewAssistantMessage(author, text string) Message {
	return Message{Role: RoleAssistant, Author: author, Text: text}
}

// NewSystemMessage creates a system message.
func NewSystemMessage(text string) Message {
	return Message{Role: RoleSystem, Text: text}
}

// LastAssistantMessage returns the last assistant-authored message in the
// slice and true, or the zero Message and false if none exists.
func LastAssistantMessage(messages []Message) (Message, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleAssistant {
			return messages[i], true
		}
	}
	return Message{}, false
}
