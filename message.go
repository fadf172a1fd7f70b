package chat

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one vendor-neutral entry of the payload sent to a provider.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
