package entity

// Entry represents one guestbook submission for data transfer between layers.
type Entry struct {
	ID         int64  `json:"id"`
	SenderName string `json:"sender_name"`
	Message    string `json:"message"`
}
