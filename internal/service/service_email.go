package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-campus-assistant/internal/adapter"
	"github.com/MKhiriev/go-campus-assistant/internal/validators"
	"github.com/MKhiriev/go-campus-assistant/models"
)

type emailService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewEmailService(serverAdapter adapter.ServerAdapter) EmailService {
	return &emailService{adapter: serverAdapter, validator: validators.NewInputValidator()}
}

func (e *emailService) Status(ctx context.Context) (models.EmailStatus, error) {
	status, err := e.adapter.EmailStatus(ctx)
	if err != nil {
		return models.EmailStatus{}, fmt.Errorf("load email status: %w", err)
	}
	return status, nil
}

func (e *emailService) Recent(ctx context.Context, top int) (models.EmailList, error) {
	if top <= 0 {
		top = adapter.DefaultRecentEmails
	}

	list, err := e.adapter.RecentEmails(ctx, top)
	if err != nil {
		return models.EmailList{}, fmt.Errorf("load recent emails: %w", err)
	}
	return list, nil
}

func (e *emailService) Search(ctx context.Context, keyword string, top int) (models.EmailList, error) {
	req := models.EmailSearchRequest{Keyword: strings.TrimSpace(keyword), Top: top}
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.EmailList{}, err
	}
	if req.Top == 0 {
		req.Top = adapter.DefaultSearchEmails
	}

	list, err := e.adapter.SearchEmails(ctx, req)
	if err != nil {
		return models.EmailList{}, fmt.Errorf("search emails: %w", err)
	}
	return list, nil
}
