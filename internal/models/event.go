package models

// Event types published to the board event stream.
const (
	EventFeedbackCreated = "feedback_created"
	EventUpvoteAdded     = "upvote_added"
	EventUpvoteRemoved   = "upvote_removed"
	EventCommentAdded    = "comment_added"
)

// Event represents a board activity event published to Kafka.
type Event struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Type       string `json:"type"`        // Type is one of the Event* constants.
	FeedbackID string `json:"feedback_id"` // FeedbackID is the feedback item the event refers to.
	UserID     string `json:"user_id"`     // UserID is the user who triggered the event.
}
