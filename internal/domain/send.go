package domain

import "errors"

// ErrOTPCodeComponents is returned when a send carries an OTP code together
// with a body or header; the platform derives both from the code.
var ErrOTPCodeComponents = errors.New("body and header are not allowed with an OTP code")

// SendBodyValue is the closed set of body value bindings: TextValue,
// CurrencyValue or DateTimeValue.
type SendBodyValue interface {
	isSendBodyValue()
}

// SendHeaderValue is the closed set of header value bindings: TextValue,
// DocumentValue, ImageValue, VideoValue or LocationValue.
type SendHeaderValue interface {
	isSendHeaderValue()
}

// TextValue fills one text placeholder. Usable in both body and header.
type TextValue struct {
	Value string
}

func (TextValue) isSendBodyValue()   {}
func (TextValue) isSendHeaderValue() {}

// CurrencyValue fills a placeholder with a localized amount. Amount1000 is
// the amount multiplied by 1000; FallbackValue is shown if localization
// fails.
type CurrencyValue struct {
	FallbackValue string
	Code          string
	Amount1000    int
}

func (CurrencyValue) isSendBodyValue() {}

// DateTimeValue fills a placeholder with a localized date. Only the
// fallback text is supplied; the platform does not localize it further.
type DateTimeValue struct {
	FallbackValue string
}

func (DateTimeValue) isSendBodyValue() {}

// DocumentValue binds a document header. Ref is a platform media ID or a
// URL; the caller tells Document which one it is.
type DocumentValue struct {
	Ref string
}

func (DocumentValue) isSendHeaderValue() {}

// ImageValue binds an image header.
type ImageValue struct {
	Ref string
}

func (ImageValue) isSendHeaderValue() {}

// VideoValue binds a video header.
type VideoValue struct {
	Ref string
}

func (VideoValue) isSendHeaderValue() {}

// LocationValue binds a location header.
type LocationValue struct {
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

func (LocationValue) isSendHeaderValue() {}

// SendButton is the closed set of list-style button bindings:
// QuickReplyData or URLButtonValue.
type SendButton interface {
	buttonSubType() ButtonSubType
}

// QuickReplyData is the callback payload delivered when the user taps the
// quick reply button at the same position.
type QuickReplyData struct {
	Data string
}

func (QuickReplyData) buttonSubType() ButtonSubType { return SubTypeQuickReply }

// URLButtonValue fills the URL button's placeholder; the value is appended
// to the registered URL.
type URLButtonValue struct {
	Value string
}

func (URLButtonValue) buttonSubType() ButtonSubType { return SubTypeURL }

// SendButtons is the buttons slot of a send: either a SendButtonList or a
// single *OTPCode.
type SendButtons interface {
	isSendButtons()
}

// SendButtonList is an ordered list of button bindings; a binding's
// position in the list is the button index it fills.
type SendButtonList []SendButton

func (SendButtonList) isSendButtons() {}

// OTPCode carries the one-time password for an authentication template.
type OTPCode struct {
	Code string
}

func (*OTPCode) isSendButtons() {}

// TemplateSend is the send-time aggregate: values bound to the placeholders
// of an already-registered template. Build it with NewTemplateSend.
type TemplateSend struct {
	Name     string
	Language string
	Body     []SendBodyValue
	Header   SendHeaderValue
	Buttons  SendButtons
}

// NewTemplateSend checks the authentication shortcut: when Buttons is an
// OTP code, body and header must be empty, and the body is auto-populated
// with a single text value equal to the code (the platform requires the
// code to appear as the body's sole variable). This is the only mutation in
// the model and happens exactly once, here.
func NewTemplateSend(send TemplateSend) (*TemplateSend, error) {
	if otp, ok := send.Buttons.(*OTPCode); ok {
		if send.Header != nil || len(send.Body) > 0 {
			return nil, ErrOTPCodeComponents
		}
		send.Body = []SendBodyValue{TextValue{Value: otp.Code}}
	}
	return &send, nil
}

// Document assembles the send payload: body component, header component,
// then one button component per list entry, in that order. Media header
// values render as {"url": ref} when isHeaderMediaURL is true and as
// {"id": ref} otherwise. An OTP code contributes no button component; it
// already lives in the auto-populated body.
func (t *TemplateSend) Document(isHeaderMediaURL bool) *SendDocument {
	var components []SendComponent
	if len(t.Body) > 0 {
		params := make([]SendParameter, 0, len(t.Body))
		for _, v := range t.Body {
			params = append(params, bodyParameter(v))
		}
		components = append(components, SendComponent{
			Type:       string(ComponentBody),
			Parameters: params,
		})
	}
	if t.Header != nil {
		components = append(components, SendComponent{
			Type:       string(ComponentHeader),
			Parameters: []SendParameter{headerParameter(t.Header, isHeaderMediaURL)},
		})
	}
	if list, ok := t.Buttons.(SendButtonList); ok {
		for idx, b := range list {
			idx := idx
			components = append(components, SendComponent{
				Type:       string(ParamButton),
				SubType:    b.buttonSubType(),
				Index:      &idx,
				Parameters: []SendParameter{buttonParameter(b)},
			})
		}
	}
	return &SendDocument{
		Name:       t.Name,
		Language:   SendLanguage{Code: t.Language},
		Components: components,
	}
}

func bodyParameter(v SendBodyValue) SendParameter {
	switch v := v.(type) {
	case TextValue:
		return SendParameter{Type: ParamText, Text: &v.Value}
	case CurrencyValue:
		return SendParameter{Type: ParamCurrency, Currency: &CurrencyObject{
			FallbackValue: v.FallbackValue,
			Code:          v.Code,
			Amount1000:    v.Amount1000,
		}}
	case DateTimeValue:
		return SendParameter{Type: ParamDateTime, DateTime: &DateTimeObject{
			FallbackValue: v.FallbackValue,
		}}
	}
	return SendParameter{}
}

func headerParameter(v SendHeaderValue, isURL bool) SendParameter {
	switch v := v.(type) {
	case TextValue:
		return SendParameter{Type: ParamText, Text: &v.Value}
	case DocumentValue:
		return SendParameter{Type: ParamDocument, Document: mediaObject(v.Ref, isURL)}
	case ImageValue:
		return SendParameter{Type: ParamImage, Image: mediaObject(v.Ref, isURL)}
	case VideoValue:
		return SendParameter{Type: ParamVideo, Video: mediaObject(v.Ref, isURL)}
	case LocationValue:
		return SendParameter{Type: ParamLocation, Location: &LocationObject{
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
			Name:      v.Name,
			Address:   v.Address,
		}}
	}
	return SendParameter{}
}

func mediaObject(ref string, isURL bool) *MediaObject {
	if isURL {
		return &MediaObject{URL: &ref}
	}
	return &MediaObject{ID: &ref}
}

func buttonParameter(b SendButton) SendParameter {
	switch b := b.(type) {
	case QuickReplyData:
		return SendParameter{Type: ParamPayload, Payload: &b.Data}
	case URLButtonValue:
		return SendParameter{Type: ParamText, Text: &b.Value}
	}
	return SendParameter{}
}
