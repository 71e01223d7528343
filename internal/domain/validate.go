package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrTooManyQuickReplies is returned for more than 10 quick reply buttons.
	ErrTooManyQuickReplies = errors.New("at most 10 quick reply buttons are allowed")
	// ErrTooManyPhoneButtons is returned for more than 1 phone number button.
	ErrTooManyPhoneButtons = errors.New("at most 1 phone number button is allowed")
	// ErrTooManyURLButtons is returned for more than 2 URL buttons.
	ErrTooManyURLButtons = errors.New("at most 2 URL buttons are allowed")
	// ErrButtonGrouping is returned when quick reply buttons are interleaved
	// with other button kinds.
	ErrButtonGrouping = errors.New("quick reply buttons must form one contiguous group")
)

var validate = validator.New()

// Validate checks the definition against the platform's documented limits:
// field lengths, button counts and the quick-reply grouping rule. It is
// strictly opt-in and never runs during assembly; the remote platform
// remains the authority on acceptance, and a definition that fails Validate
// still renders.
func (t *TemplateDefinition) Validate() error {
	if err := validate.Var(t.Name, "required,max=512"); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if err := validate.Var(t.Language, "required"); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	switch b := t.Body.(type) {
	case Body:
		if err := validate.Var(b.Text, "max=1024"); err != nil {
			return fmt.Errorf("body text: %w", err)
		}
	case AuthBody:
		if b.CodeExpirationMinutes != nil {
			if err := validate.Var(*b.CodeExpirationMinutes, "min=1,max=90"); err != nil {
				return fmt.Errorf("code expiration minutes: %w", err)
			}
		}
	}
	if h, ok := t.Header.(TextHeader); ok {
		if err := validate.Var(h.Text, "max=60"); err != nil {
			return fmt.Errorf("header text: %w", err)
		}
	}
	if t.Footer != nil {
		if err := validate.Var(t.Footer.Text, "max=60"); err != nil {
			return fmt.Errorf("footer text: %w", err)
		}
	}
	if list, ok := t.Buttons.(ButtonList); ok {
		if err := validateButtons(list); err != nil {
			return err
		}
	}
	return nil
}

func validateButtons(list ButtonList) error {
	var quickReplies, phones, urls, groups int
	var prevQuick bool
	for i, b := range list {
		_, isQuick := b.(QuickReplyButton)
		if isQuick {
			quickReplies++
		}
		if i == 0 || isQuick != prevQuick {
			groups++
		}
		prevQuick = isQuick

		switch b := b.(type) {
		case PhoneNumberButton:
			phones++
			if err := validate.Var(b.Title, "max=25"); err != nil {
				return fmt.Errorf("phone button %d title: %w", i, err)
			}
			if err := validate.Var(b.PhoneNumber, "max=20"); err != nil {
				return fmt.Errorf("phone button %d number: %w", i, err)
			}
		case URLButton:
			urls++
			if err := validate.Var(b.Title, "max=25"); err != nil {
				return fmt.Errorf("url button %d title: %w", i, err)
			}
			if err := validate.Var(b.URL, "max=2000"); err != nil {
				return fmt.Errorf("url button %d url: %w", i, err)
			}
		case QuickReplyButton:
			if err := validate.Var(b.Text, "max=25"); err != nil {
				return fmt.Errorf("quick reply button %d text: %w", i, err)
			}
		}
	}
	if quickReplies > 10 {
		return ErrTooManyQuickReplies
	}
	if phones > 1 {
		return ErrTooManyPhoneButtons
	}
	if urls > 2 {
		return ErrTooManyURLButtons
	}
	// Two groups at most: all quick replies together, everything else
	// together, in either order.
	if groups > 2 {
		return ErrButtonGrouping
	}
	return nil
}
