package domain

// TemplateResponse is the platform's reply to a template submission.
type TemplateResponse struct {
	ID       string   `json:"id"`
	Status   string   `json:"status"`
	Category Category `json:"category"`
}
