package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"dealership-api/internal/entity"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client talks to the hosted generative model on behalf of the site's
// sales assistant. Replies come back as structured JSON so the caller can
// act on the detected intent and any captured contact details.
type Client struct {
	model *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel("gemini-2.0-flash-001")
	model.ResponseMIMEType = "application/json"

	return &Client{model: model}, nil
}

func (c *Client) Reply(ctx context.Context, history []entity.ChatTurn, message string) (*entity.AssistantReply, error) {
	var historyText strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&historyText, "- %s: %s\n", turn.Role, turn.Content)
	}

	promptText := fmt.Sprintf(`
You are the online sales assistant of a car dealership. You answer questions
about vehicles, financing, test drives and opening hours, always politely and
briefly.

**Conversation History:**
%s

**Current Visitor Message:**
"%s"

**Instructions:**
1. Classify the visitor's intent:
   - "QUESTION": general question about vehicles, prices, services.
   - "TEST_DRIVE": the visitor wants to try a vehicle.
   - "PURCHASE": the visitor wants to buy or reserve a vehicle.
   - "CALLBACK": the visitor asks to be contacted.
2. If the conversation so far contains the visitor's name AND phone number,
   fill the "lead" object; otherwise set "lead" to null. If the visitor shows
   buying interest but has not left contact details yet, ask for them in your
   reply.
3. Respond in JSON only.

JSON Schema:
{
  "content": "reply shown to the visitor",
  "intent": "QUESTION" | "TEST_DRIVE" | "PURCHASE" | "CALLBACK",
  "lead": {"name": "", "phone": "", "interest": ""} | null
}
`, historyText.String(), message)

	resp, err := c.model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from model")
	}

	part := resp.Candidates[0].Content.Parts[0]
	txt, ok := part.(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response type %T", part)
	}

	var reply entity.AssistantReply
	if err := json.Unmarshal([]byte(txt), &reply); err != nil {
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}

	return &reply, nil
}
