package guestbook

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/homepage/internal/common"
	"github.com/joseph-ayodele/homepage/internal/entity"
	"github.com/joseph-ayodele/homepage/internal/repository"
)

const (
	maxSenderNameLength = 100
	maxMessageLength    = 2000
)

// Service handles guestbook business logic.
type Service struct {
	store  repository.EntryStore
	logger *slog.Logger
}

// NewService creates a new guestbook service.
func NewService(store repository.EntryStore, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// SignRequest represents a guestbook submission.
type SignRequest struct {
	SenderName string
	Message    string
}

// Sign validates the submission and stores it.
func (s *Service) Sign(ctx context.Context, req SignRequest) (*entity.Entry, error) {
	name := strings.TrimSpace(req.SenderName)
	message := strings.TrimSpace(req.Message)

	validator := common.NewValidator()
	validator.Field("sender_name", name, common.Required, common.MaxLength(maxSenderNameLength))
	validator.Field("message", message, common.Required, common.MaxLength(maxMessageLength))
	if err := validator.Err(); err != nil {
		s.logger.Info("guestbook submission rejected", "reason", validator.ErrorMessage())
		return nil, err
	}

	e, err := s.store.Insert(ctx, name, message)
	if err != nil {
		return nil, common.WrapError(err, "sign guestbook")
	}
	s.logger.Info("guestbook signed", "entry_id", e.ID, "sender_name", e.SenderName)
	return e, nil
}

// List returns all entries.
func (s *Service) List(ctx context.Context) ([]*entity.Entry, error) {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list guestbook")
	}
	return entries, nil
}

// Delete removes the entry with id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return common.WrapError(err, "delete guestbook entry")
	}
	s.logger.Info("guestbook entry deleted", "entry_id", id)
	return nil
}
