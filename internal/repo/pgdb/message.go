package pgdb

import (
	"context"
	"time"

	"dealership-api/internal/entity"
	"dealership-api/internal/repo/repo_errors"
	"dealership-api/pkg/postgres"

	"github.com/google/uuid"
)

type MessageRepo struct {
	*postgres.Postgres
}

func NewMessageRepo(pgdb *postgres.Postgres) *MessageRepo {
	return &MessageRepo{pgdb}
}

func (r *MessageRepo) CreateMessage(ctx context.Context, input *entity.CreateMessageInput) (uuid.UUID, error) {
	createMessageSql, args, _ := r.SqlBuilder.
		Insert("contact_message").
		Columns("name", "phone", "content").
		Values(input.Name, input.Phone, input.Content).
		Suffix("RETURNING id").
		ToSql()

	var messageId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createMessageSql, args...).Scan(&messageId); err != nil {
		return uuid.Nil, err
	}

	return messageId, nil
}

func (r *MessageRepo) GetMessages(ctx context.Context, pg *entity.PaginationInput) ([]entity.ContactMessage, error) {
	getMessagesSql, args, _ := r.SqlBuilder.
		Select("id, name, phone, content, read, created_at").
		From("contact_message").
		OrderBy("created_at DESC").
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getMessagesSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]entity.ContactMessage, 0)
	for rows.Next() {
		var m entity.ContactMessage
		var createdAt time.Time
		if err := rows.Scan(&m.Id, &m.Name, &m.Phone, &m.Content, &m.Read, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = createdAt.Format(time.RFC3339)
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *MessageRepo) MarkMessageReadById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	markReadSql, args, _ := r.SqlBuilder.
		Update("contact_message").
		Set("read", true).
		Where("id = ?", uuidForm).
		ToSql()

	result, err := r.Database.ExecContext(ctx, markReadSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
