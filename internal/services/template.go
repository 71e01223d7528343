package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PauloSankovic/pywa/internal/domain"
)

// TemplateServiceConfig holds assembly settings for the template service.
type TemplateServiceConfig struct {
	// Delimiters used when extracting example placeholders from authored
	// text. Zero value means "{" / "}".
	Delimiters domain.Delimiters
	// StrictValidation runs the opt-in limit checks before submitting a
	// definition. Off by default; the platform validates authoritatively
	// either way.
	StrictValidation bool
}

type templateService struct {
	platform domain.TemplatePlatform
	logger   *slog.Logger
	cfg      TemplateServiceConfig
}

// NewTemplateService returns a TemplateService that assembles wire
// documents and hands them to the given platform port.
func NewTemplateService(platform domain.TemplatePlatform, logger *slog.Logger, cfg TemplateServiceConfig) domain.TemplateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &templateService{platform: platform, logger: logger, cfg: cfg}
}

// Register assembles the registration payload for def and submits it.
func (s *templateService) Register(ctx context.Context, def *domain.TemplateDefinition) (*domain.TemplateResponse, error) {
	if def == nil {
		return nil, fmt.Errorf("template definition is nil")
	}
	if s.cfg.StrictValidation {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("template %q failed validation: %w", def.Name, err)
		}
	}
	doc := def.Document(s.cfg.Delimiters)
	resp, err := s.platform.SubmitTemplate(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to submit template %q: %w", def.Name, err)
	}
	s.logger.Info("template submitted",
		"name", def.Name, "category", def.Category, "id", resp.ID, "status", resp.Status)
	return resp, nil
}

// SendMessage assembles the send payload for send and delivers it to the
// given recipient. headerMediaIsURL tells the assembler whether a media
// header value is a URL rather than a platform media ID.
func (s *templateService) SendMessage(ctx context.Context, to string, send *domain.TemplateSend, headerMediaIsURL bool) (string, error) {
	if send == nil {
		return "", fmt.Errorf("template send is nil")
	}
	doc := send.Document(headerMediaIsURL)
	messageID, err := s.platform.SendTemplate(ctx, to, doc)
	if err != nil {
		return "", fmt.Errorf("failed to send template %q to %s: %w", send.Name, to, err)
	}
	s.logger.Info("template message sent", "name", send.Name, "to", to, "message_id", messageID)
	return messageID, nil
}
