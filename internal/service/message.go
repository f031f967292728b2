package service

import (
	"context"
	"errors"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo"
	"dealership-api/internal/repo/repo_errors"
)

type MessageService struct {
	messageRepo repo.Message
}

func NewMessageService(repos *repo.Repositories) *MessageService {
	return &MessageService{messageRepo: repos.Message}
}

func (s *MessageService) CreateMessage(ctx context.Context, input *entity.CreateMessageInput) (string, error) {
	id, err := s.messageRepo.CreateMessage(ctx, input)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (s *MessageService) GetMessages(ctx context.Context, pg *entity.PaginationInput) ([]entity.MessageOutputModel, error) {
	messages, err := s.messageRepo.GetMessages(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapMessages(messages), nil
}

func (s *MessageService) MarkMessageReadById(ctx context.Context, messageId string) error {
	err := s.messageRepo.MarkMessageReadById(ctx, messageId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrMessageNotFound
		}

		return err
	}

	return nil
}
