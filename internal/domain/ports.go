package domain

import "context"

// TemplatePlatform is the boundary to the messaging platform's management
// and messaging APIs (infrastructure port). Transport, authentication,
// media upload and retry behavior live behind it; this package only
// produces the documents it consumes.
type TemplatePlatform interface {
	// SubmitTemplate registers a new template definition.
	SubmitTemplate(ctx context.Context, doc *DefinitionDocument) (*TemplateResponse, error)

	// SendTemplate delivers a filled template to a recipient and returns
	// the platform's message ID.
	SendTemplate(ctx context.Context, to string, doc *SendDocument) (string, error)
}

// TemplateService defines the contract for registering template definitions
// and sending template messages.
type TemplateService interface {
	Register(ctx context.Context, def *TemplateDefinition) (*TemplateResponse, error)
	SendMessage(ctx context.Context, to string, send *TemplateSend, headerMediaIsURL bool) (string, error)
}
