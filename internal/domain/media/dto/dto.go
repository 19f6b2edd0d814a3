// Package dto contains data transfer objects for the media domain
package dto

// StartCommandRequest represents a request to handle /start command
type StartCommandRequest struct {
	UserID   int64  `json:"userId"`
	ChatID   int64  `json:"chatId"`
	Username string `json:"username"`
}

// TextMessageRequest represents a free text message, usually a link
type TextMessageRequest struct {
	UserID int64  `json:"userId"`
	ChatID int64  `json:"chatId"`
	Text   string `json:"text"`
}

// ChoiceRequest represents a button press on the format keyboard
type ChoiceRequest struct {
	UserID        int64  `json:"userId"`
	ChatID        int64  `json:"chatId"`
	ChoiceEventID string `json:"choiceEventId"`
	ChoiceID      string `json:"choiceId"`
}

// CommandResponse represents a response for bot commands
type CommandResponse struct {
	Message string `json:"message"`
}
