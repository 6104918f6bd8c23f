package request

// SendMessageRequest is one customer message. Blank text is accepted and
// ignored by the assistant.
type SendMessageRequest struct {
	Text string `json:"text"`
}
