package entity

// ChatTurn is one prior exchange in a conversation, as replayed by the client.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// service input model
type ChatInput struct {
	SessionId string
	Message   string
	History   []ChatTurn
}

// LeadDetails is contact information the assistant extracted from the
// conversation; nil when nothing was captured.
type LeadDetails struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
}

// AssistantReply is the structured answer produced by the generative model.
type AssistantReply struct {
	Content string       `json:"content"`
	Intent  string       `json:"intent"`
	Lead    *LeadDetails `json:"lead,omitempty"`
}

// controller model
type ChatOutputModel struct {
	Reply        string `json:"reply"`
	Intent       string `json:"intent"`
	LeadCaptured bool   `json:"leadCaptured"`
}
