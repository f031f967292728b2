package service

import (
	"context"
	"errors"
	"testing"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
)

type fakeAssistant struct {
	reply *entity.AssistantReply
	err   error
}

func (a *fakeAssistant) Reply(ctx context.Context, history []entity.ChatTurn, message string) (*entity.AssistantReply, error) {
	return a.reply, a.err
}

type fakeSessionRepo struct {
	marked map[string]bool
	err    error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{marked: make(map[string]bool)}
}

func (r *fakeSessionRepo) MarkLeadCaptured(ctx context.Context, sessionId string, intent string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	key := sessionId + "/" + intent
	if r.marked[key] {
		return false, nil
	}
	r.marked[key] = true
	return true, nil
}

type fakeLeadRepo struct {
	created map[string]entity.CreateLeadInput
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{created: make(map[string]entity.CreateLeadInput)}
}

func (r *fakeLeadRepo) CreateLead(ctx context.Context, input *entity.CreateLeadInput) (bool, error) {
	key := input.SessionId + "/" + input.Intent
	if _, ok := r.created[key]; ok {
		return false, nil
	}
	r.created[key] = *input
	return true, nil
}

func (r *fakeLeadRepo) GetLeads(ctx context.Context, pg *entity.PaginationInput) ([]entity.Lead, error) {
	return nil, nil
}

func newTestChatService(assistant Assistant, sessions repo.ChatSession, leads repo.Lead) *ChatService {
	return NewChatService(&repo.Repositories{ChatSession: sessions, Lead: leads}, assistant)
}

func chatInput(session string) *entity.ChatInput {
	return &entity.ChatInput{SessionId: session, Message: "I want to try the X5"}
}

func TestChatCapturesLeadOnce(t *testing.T) {
	assistant := &fakeAssistant{reply: &entity.AssistantReply{
		Content: "We will call you back.",
		Intent:  "TEST_DRIVE",
		Lead:    &entity.LeadDetails{Name: "Alice", Phone: "+37060000000", Interest: "BMW X5"},
	}}
	leads := newFakeLeadRepo()
	s := newTestChatService(assistant, newFakeSessionRepo(), leads)

	out, err := s.Chat(context.Background(), chatInput("s-1"))
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if !out.LeadCaptured {
		t.Error("first complete lead should be captured")
	}
	if len(leads.created) != 1 {
		t.Fatalf("stored %d leads, want 1", len(leads.created))
	}

	out, err = s.Chat(context.Background(), chatInput("s-1"))
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.LeadCaptured {
		t.Error("repeated intent in the same session captured again")
	}
	if len(leads.created) != 1 {
		t.Errorf("stored %d leads, want 1", len(leads.created))
	}
}

func TestChatSeparateSessionsCaptureSeparately(t *testing.T) {
	assistant := &fakeAssistant{reply: &entity.AssistantReply{
		Content: "Noted.",
		Intent:  "CALLBACK",
		Lead:    &entity.LeadDetails{Name: "Bob", Phone: "+37061111111"},
	}}
	leads := newFakeLeadRepo()
	s := newTestChatService(assistant, newFakeSessionRepo(), leads)

	for _, session := range []string{"s-1", "s-2"} {
		if _, err := s.Chat(context.Background(), chatInput(session)); err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
	}

	if len(leads.created) != 2 {
		t.Errorf("stored %d leads, want 2", len(leads.created))
	}
}

func TestChatIncompleteLeadIgnored(t *testing.T) {
	assistant := &fakeAssistant{reply: &entity.AssistantReply{
		Content: "Could you leave your phone number?",
		Intent:  "PURCHASE",
		Lead:    &entity.LeadDetails{Name: "Alice"},
	}}
	leads := newFakeLeadRepo()
	s := newTestChatService(assistant, newFakeSessionRepo(), leads)

	out, err := s.Chat(context.Background(), chatInput("s-1"))
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.LeadCaptured {
		t.Error("lead without phone was captured")
	}
	if len(leads.created) != 0 {
		t.Errorf("stored %d leads, want 0", len(leads.created))
	}
}

func TestChatSessionStoreDownFallsBackToDurableGuard(t *testing.T) {
	assistant := &fakeAssistant{reply: &entity.AssistantReply{
		Content: "We will call you back.",
		Intent:  "CALLBACK",
		Lead:    &entity.LeadDetails{Name: "Alice", Phone: "+37060000000"},
	}}
	sessions := newFakeSessionRepo()
	sessions.err = errors.New("connection refused")
	leads := newFakeLeadRepo()
	s := newTestChatService(assistant, sessions, leads)

	// Two identical messages: with the cache down both reach the lead
	// store, which deduplicates on (session, intent).
	for i := 0; i < 2; i++ {
		if _, err := s.Chat(context.Background(), chatInput("s-1")); err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
	}

	if len(leads.created) != 1 {
		t.Errorf("stored %d leads, want 1", len(leads.created))
	}
}

func TestChatAssistantFailure(t *testing.T) {
	assistant := &fakeAssistant{err: errors.New("model unavailable")}
	s := newTestChatService(assistant, newFakeSessionRepo(), newFakeLeadRepo())

	if _, err := s.Chat(context.Background(), chatInput("s-1")); err == nil {
		t.Error("Chat() returned nil error when the assistant failed")
	}
}
