package store

// Roles recorded in the session log.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Turn is one utterance in a session, from either side of the conversation.
// Timestamp is epoch seconds.
type Turn struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}
