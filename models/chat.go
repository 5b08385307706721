package models

// ChatRequest is the payload coming from the frontend into /api/chat/message.
type ChatRequest struct {
	UserID  string   `json:"user_id"`           // unique user identifier; generated when empty
	Message string   `json:"message"`           // user's typed message
	Context *Session `json:"context,omitempty"` // opaque session state round-tripped by the caller
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	UserID   string   `json:"user_id"`
	Response string   `json:"response"`
	Context  *Session `json:"context"`
}
