package models

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Token   string `form:"token"`
	Name    string `form:"name"`
	Email   string `form:"email"`
	Company string `form:"company"`
	Phone   string `form:"phone"`
	Message string `form:"message"`

	// Set by the handler when a file was uploaded alongside the form
	AttachmentPath string `form:"-"`
	AttachmentName string `form:"-"`
}

// ChatRequest represents a chatbot round trip request
type ChatRequest struct {
	Message string `json:"message"`
}

// LoginRequest represents an admin login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SubscribeRequest represents a newsletter subscription request
type SubscribeRequest struct {
	Email string `json:"email"`
}
