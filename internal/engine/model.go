package engine

// Role identifies the speaker of a chat turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one chat message with an associated role. An ordered sequence of
// turns forms a session transcript, which is owned by the presentation shell;
// the engine only ever receives a read-only copy per call.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
