package domain

import "errors"

var (
	// ErrMissingBody is returned when a definition has no body at all.
	ErrMissingBody = errors.New("template body is required")

	// ErrAuthenticationComponents is returned when an AUTHENTICATION
	// template is built without an AuthBody body and an OTP button.
	ErrAuthenticationComponents = errors.New("an AuthBody body and an OTP button are required for AUTHENTICATION templates")

	// ErrCategoryMismatch is returned when an AuthBody or OTP button is
	// used outside the AUTHENTICATION category.
	ErrCategoryMismatch = errors.New("AuthBody and OTP buttons are only allowed for AUTHENTICATION templates")

	// ErrOneTapFields is returned when a ONE_TAP OTP button is missing
	// its package name or signature hash.
	ErrOneTapFields = errors.New("package name and signature hash are required for ONE_TAP")
)

// DefinitionHeader is the closed set of header variants a definition may
// carry: TextHeader, ImageHeader, VideoHeader, DocumentHeader or
// LocationHeader.
type DefinitionHeader interface {
	headerFormat() HeaderFormat
}

// TextHeader is a text header. Up to 60 characters, supports one
// placeholder.
type TextHeader struct {
	Text string
}

func (TextHeader) headerFormat() HeaderFormat { return HeaderFormatText }

// ImageHeader is an image header. Handles are media handles obtained from
// the platform's resumable upload API and are emitted verbatim.
type ImageHeader struct {
	Handles []string
}

func (ImageHeader) headerFormat() HeaderFormat { return HeaderFormatImage }

// VideoHeader is a video header carrying pre-uploaded media handles.
type VideoHeader struct {
	Handles []string
}

func (VideoHeader) headerFormat() HeaderFormat { return HeaderFormatVideo }

// DocumentHeader is a document header carrying pre-uploaded media handles.
type DocumentHeader struct {
	Handles []string
}

func (DocumentHeader) headerFormat() HeaderFormat { return HeaderFormatDocument }

// LocationHeader renders as a generic map at the top of the message. The
// actual coordinates are bound when the template is sent.
type LocationHeader struct{}

func (LocationHeader) headerFormat() HeaderFormat { return HeaderFormatLocation }

// DefinitionBody is either Body (standard categories) or AuthBody
// (AUTHENTICATION).
type DefinitionBody interface {
	isDefinitionBody()
}

// Body is the standard template body. Up to 1024 characters, supports
// multiple placeholders.
type Body struct {
	Text string
}

func (Body) isDefinitionBody() {}

// AuthBody configures an authentication template's generated body copy.
// CodeExpirationMinutes is optional (valid range 1-90); when nil the
// delivered message shows no expiration warning.
type AuthBody struct {
	CodeExpirationMinutes     *int
	AddSecurityRecommendation bool
}

func (AuthBody) isDefinitionBody() {}

// Footer is the template footer. Up to 60 characters, placeholders are not
// supported.
type Footer struct {
	Text string
}

// DefinitionButton is the closed set of standard button variants:
// PhoneNumberButton, URLButton or QuickReplyButton. The OTP button is not a
// list member; it replaces the list entirely (see DefinitionButtons).
type DefinitionButton interface {
	buttonType() ButtonType
}

// PhoneNumberButton calls the given business number when tapped. Templates
// are limited to one phone number button; placeholders are not supported.
type PhoneNumberButton struct {
	Title       string
	PhoneNumber string
}

func (PhoneNumberButton) buttonType() ButtonType { return ButtonTypePhoneNumber }

// URLButton opens the given URL when tapped. Templates are limited to two
// URL buttons. Title and URL each support one placeholder; a URL placeholder
// is appended to the end of the URL at send time.
type URLButton struct {
	Title string
	URL   string
}

func (URLButton) buttonType() ButtonType { return ButtonTypeURL }

// QuickReplyButton messages the business back with the given text when
// tapped. Templates are limited to ten quick reply buttons, and when mixed
// with other buttons the quick replies must form one contiguous group; the
// platform rejects interleaved arrangements. Neither limit is enforced here
// (see Validate), the platform stays authoritative.
type QuickReplyButton struct {
	Text string
}

func (QuickReplyButton) buttonType() ButtonType { return ButtonTypeQuickReply }

// DefinitionButtons is the buttons slot of a definition: either a
// ButtonList of standard buttons or a single *OTPButton.
type DefinitionButtons interface {
	isDefinitionButtons()
}

// ButtonList is an ordered list of standard buttons.
type ButtonList []DefinitionButton

func (ButtonList) isDefinitionButtons() {}

// OTPButton is the single button of an authentication template. COPY_CODE
// copies the one-time password to the clipboard; ONE_TAP hands it straight
// to the app identified by PackageName and SignatureHash. Title and
// AutofillText fall back to platform defaults localized to the template's
// language when empty.
type OTPButton struct {
	OTPType       OTPType
	Title         string
	AutofillText  string
	PackageName   string
	SignatureHash string
}

func (*OTPButton) isDefinitionButtons() {}

// NewOTPButton validates the discriminant-dependent required fields:
// ONE_TAP needs both PackageName and SignatureHash.
func NewOTPButton(b OTPButton) (*OTPButton, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *OTPButton) check() error {
	if b.OTPType == OTPTypeOneTap && (b.PackageName == "" || b.SignatureHash == "") {
		return ErrOneTapFields
	}
	return nil
}

// TemplateDefinition is the registration-time aggregate. Build it with
// NewTemplateDefinition so the category/body/buttons invariant is checked
// up front; a definition that passes construction always renders.
type TemplateDefinition struct {
	Name     string
	Category Category
	Language string
	Body     DefinitionBody
	Header   DefinitionHeader  // optional
	Footer   *Footer           // optional
	Buttons  DefinitionButtons // optional for standard categories
}

// NewTemplateDefinition checks the structural invariants the platform
// imposes on the category/body/buttons combination: AUTHENTICATION requires
// an AuthBody and an OTP button, and neither may appear under any other
// category. Violations are construction-time errors; rendering never fails.
func NewTemplateDefinition(def TemplateDefinition) (*TemplateDefinition, error) {
	if def.Body == nil {
		return nil, ErrMissingBody
	}
	_, isAuthBody := def.Body.(AuthBody)
	otp, isOTP := def.Buttons.(*OTPButton)
	if def.Category == CategoryAuthentication {
		if !isAuthBody || !isOTP {
			return nil, ErrAuthenticationComponents
		}
	} else if isAuthBody || isOTP {
		return nil, ErrCategoryMismatch
	}
	if isOTP {
		if err := otp.check(); err != nil {
			return nil, err
		}
	}
	return &def, nil
}

// Document assembles the registration payload. The authentication path has
// a fixed component order (BUTTONS, BODY, then FOOTER only when expiration
// minutes are set); the standard path emits body, header, footer and the
// buttons block in that order, skipping absent parts.
func (t *TemplateDefinition) Document(d Delimiters) *DefinitionDocument {
	var components []DefinitionComponent
	if otp, ok := t.Buttons.(*OTPButton); ok {
		auth, _ := t.Body.(AuthBody)
		components = append(components,
			DefinitionComponent{
				Type:    ComponentButtons,
				Buttons: []WireButton{otp.wire()},
			},
			DefinitionComponent{
				Type:                      ComponentBody,
				AddSecurityRecommendation: &auth.AddSecurityRecommendation,
			},
		)
		if auth.CodeExpirationMinutes != nil {
			// The platform carries the expiration minutes on a
			// FOOTER-typed component even though they configure
			// body copy. Keep the tag as the API expects it.
			components = append(components, DefinitionComponent{
				Type:                  ComponentFooter,
				CodeExpirationMinutes: auth.CodeExpirationMinutes,
			})
		}
	} else {
		if body, ok := t.Body.(Body); ok {
			components = append(components, bodyComponent(body, d))
		}
		if t.Header != nil {
			components = append(components, headerComponent(t.Header, d))
		}
		if t.Footer != nil {
			components = append(components, DefinitionComponent{
				Type: ComponentFooter,
				Text: &t.Footer.Text,
			})
		}
		if list, ok := t.Buttons.(ButtonList); ok && len(list) > 0 {
			buttons := make([]WireButton, 0, len(list))
			for _, b := range list {
				buttons = append(buttons, buttonWire(b, d))
			}
			components = append(components, DefinitionComponent{
				Type:    ComponentButtons,
				Buttons: buttons,
			})
		}
	}
	return &DefinitionDocument{
		Name:       t.Name,
		Category:   t.Category,
		Language:   t.Language,
		Components: components,
	}
}

func bodyComponent(b Body, d Delimiters) DefinitionComponent {
	text, examples := ExtractExamples(b.Text, d)
	c := DefinitionComponent{Type: ComponentBody, Text: &text}
	if len(examples) > 0 {
		// Body examples are nested one level: a single outer list
		// wrapping the ordered example values.
		c.Example = &Example{BodyText: [][]string{examples}}
	}
	return c
}

func headerComponent(h DefinitionHeader, d Delimiters) DefinitionComponent {
	c := DefinitionComponent{Type: ComponentHeader, Format: h.headerFormat()}
	switch h := h.(type) {
	case TextHeader:
		text, examples := ExtractExamples(h.Text, d)
		c.Text = &text
		if len(examples) > 0 {
			c.Example = &Example{HeaderText: examples}
		}
	case ImageHeader:
		c.Example = &Example{HeaderHandle: h.Handles}
	case VideoHeader:
		c.Example = &Example{HeaderHandle: h.Handles}
	case DocumentHeader:
		c.Example = &Example{HeaderHandle: h.Handles}
	case LocationHeader:
		// Type and format only.
	}
	return c
}

func buttonWire(b DefinitionButton, d Delimiters) WireButton {
	switch b := b.(type) {
	case PhoneNumberButton:
		return WireButton{
			Type:        ButtonTypePhoneNumber,
			Text:        &b.Title,
			PhoneNumber: &b.PhoneNumber,
		}
	case URLButton:
		title, titleExamples := ExtractExamples(b.Title, d)
		url, urlExamples := ExtractExamples(b.URL, d)
		// The two example lists merge into one flat list, title
		// examples first; the key is omitted when both are empty.
		return WireButton{
			Type:    ButtonTypeURL,
			Text:    &title,
			URL:     &url,
			Example: append(titleExamples, urlExamples...),
		}
	case QuickReplyButton:
		return WireButton{Type: ButtonTypeQuickReply, Text: &b.Text}
	}
	return WireButton{}
}

func (b *OTPButton) wire() WireButton {
	w := WireButton{Type: ButtonTypeOTP, OTPType: b.OTPType}
	if b.Title != "" {
		w.Text = &b.Title
	}
	if b.OTPType == OTPTypeOneTap {
		w.PackageName = b.PackageName
		w.SignatureHash = b.SignatureHash
		w.AutofillText = b.AutofillText
	}
	return w
}
