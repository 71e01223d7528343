package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utilityDefinition(t *testing.T, buttons ButtonList) *TemplateDefinition {
	t.Helper()
	def, err := NewTemplateDefinition(TemplateDefinition{
		Name:     "order_update",
		Category: CategoryUtility,
		Language: "en_US",
		Body:     Body{Text: "Your order has shipped."},
		Buttons:  buttons,
	})
	require.NoError(t, err)
	return def
}

func quickReplies(n int) ButtonList {
	list := make(ButtonList, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, QuickReplyButton{Text: "option"})
	}
	return list
}

func TestValidateButtonCounts(t *testing.T) {
	assert.NoError(t, utilityDefinition(t, quickReplies(10)).Validate())
	assert.ErrorIs(t, utilityDefinition(t, quickReplies(11)).Validate(), ErrTooManyQuickReplies)

	twoPhones := ButtonList{
		PhoneNumberButton{Title: "Call", PhoneNumber: "123"},
		PhoneNumberButton{Title: "Call too", PhoneNumber: "456"},
	}
	assert.ErrorIs(t, utilityDefinition(t, twoPhones).Validate(), ErrTooManyPhoneButtons)

	threeURLs := ButtonList{
		URLButton{Title: "A", URL: "https://example.com/a"},
		URLButton{Title: "B", URL: "https://example.com/b"},
		URLButton{Title: "C", URL: "https://example.com/c"},
	}
	assert.ErrorIs(t, utilityDefinition(t, threeURLs).Validate(), ErrTooManyURLButtons)
}

func TestValidateButtonGrouping(t *testing.T) {
	grouped := ButtonList{
		QuickReplyButton{Text: "Quick 1"},
		QuickReplyButton{Text: "Quick 2"},
		URLButton{Title: "Shop", URL: "https://example.com"},
		PhoneNumberButton{Title: "Call", PhoneNumber: "123"},
	}
	assert.NoError(t, utilityDefinition(t, grouped).Validate())

	reversed := ButtonList{
		URLButton{Title: "Shop", URL: "https://example.com"},
		QuickReplyButton{Text: "Quick 1"},
		QuickReplyButton{Text: "Quick 2"},
	}
	assert.NoError(t, utilityDefinition(t, reversed).Validate())

	interleaved := ButtonList{
		QuickReplyButton{Text: "Quick 1"},
		URLButton{Title: "Shop", URL: "https://example.com"},
		QuickReplyButton{Text: "Quick 2"},
	}
	assert.ErrorIs(t, utilityDefinition(t, interleaved).Validate(), ErrButtonGrouping)
}

func TestValidateFieldLengths(t *testing.T) {
	def, err := NewTemplateDefinition(TemplateDefinition{
		Name:     "long_body",
		Category: CategoryUtility,
		Language: "en_US",
		Body:     Body{Text: strings.Repeat("x", 1025)},
	})
	require.NoError(t, err)
	assert.Error(t, def.Validate())

	def, err = NewTemplateDefinition(TemplateDefinition{
		Name:     "long_footer",
		Category: CategoryUtility,
		Language: "en_US",
		Body:     Body{Text: "ok"},
		Footer:   &Footer{Text: strings.Repeat("x", 61)},
	})
	require.NoError(t, err)
	assert.Error(t, def.Validate())

	def, err = NewTemplateDefinition(TemplateDefinition{
		Name:     "",
		Category: CategoryUtility,
		Language: "en_US",
		Body:     Body{Text: "ok"},
	})
	require.NoError(t, err)
	assert.Error(t, def.Validate())
}

func TestValidateAuthExpirationRange(t *testing.T) {
	tooLong := 91
	def, err := NewTemplateDefinition(TemplateDefinition{
		Name:     "auth",
		Category: CategoryAuthentication,
		Language: "en_US",
		Body:     AuthBody{CodeExpirationMinutes: &tooLong},
		Buttons:  &OTPButton{OTPType: OTPTypeCopyCode},
	})
	require.NoError(t, err)
	assert.Error(t, def.Validate())
}

func TestValidateDoesNotGateRendering(t *testing.T) {
	def := utilityDefinition(t, quickReplies(11))
	require.Error(t, def.Validate())

	// The platform is authoritative; an over-limit definition still
	// renders locally.
	doc := def.Document(Delimiters{})
	assert.Len(t, doc.Components, 2)
}
