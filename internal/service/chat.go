package service

import (
	"context"
	"log"
	"strings"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
)

type ChatService struct {
	assistant   Assistant
	sessionRepo repo.ChatSession
	leadRepo    repo.Lead
}

func NewChatService(repos *repo.Repositories, assistant Assistant) *ChatService {
	return &ChatService{
		assistant:   assistant,
		sessionRepo: repos.ChatSession,
		leadRepo:    repos.Lead,
	}
}

// Chat forwards the conversation to the generative model and persists a lead
// when the reply carries complete contact details. De-duplication is keyed
// by (session, intent): the session cache is the fast path, the unique
// constraint on the lead table the durable one.
func (s *ChatService) Chat(ctx context.Context, input *entity.ChatInput) (*entity.ChatOutputModel, error) {
	reply, err := s.assistant.Reply(ctx, input.History, input.Message)
	if err != nil {
		return nil, err
	}

	out := &entity.ChatOutputModel{
		Reply:  reply.Content,
		Intent: reply.Intent,
	}

	if !leadComplete(reply.Lead) || input.SessionId == "" {
		return out, nil
	}

	firstTime, err := s.sessionRepo.MarkLeadCaptured(ctx, input.SessionId, reply.Intent)
	if err != nil {
		// Fall through to the durable guard.
		log.Printf("chat session store unavailable: %v", err)
		firstTime = true
	}
	if !firstTime {
		return out, nil
	}

	created, err := s.leadRepo.CreateLead(ctx, &entity.CreateLeadInput{
		SessionId: input.SessionId,
		Intent:    reply.Intent,
		Name:      reply.Lead.Name,
		Phone:     reply.Lead.Phone,
		Interest:  reply.Lead.Interest,
	})
	if err != nil {
		// The visitor still gets the reply; the lead is retried on the
		// next matching message of the session.
		log.Printf("failed to store lead: %v", err)
		return out, nil
	}

	out.LeadCaptured = created

	return out, nil
}

func leadComplete(lead *entity.LeadDetails) bool {
	return lead != nil &&
		strings.TrimSpace(lead.Name) != "" &&
		strings.TrimSpace(lead.Phone) != ""
}
