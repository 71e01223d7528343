package domain

// Wire-level discriminants for template components. Values are the literal
// strings the platform's API expects; definition-time tags are upper case,
// send-time parameter tags lower case.

// ComponentType tags a definition-time component block.
type ComponentType string

const (
	ComponentHeader  ComponentType = "HEADER"
	ComponentBody    ComponentType = "BODY"
	ComponentFooter  ComponentType = "FOOTER"
	ComponentButtons ComponentType = "BUTTONS"
)

// HeaderFormat tags the header variant of a definition.
type HeaderFormat string

const (
	HeaderFormatText     HeaderFormat = "TEXT"
	HeaderFormatImage    HeaderFormat = "IMAGE"
	HeaderFormatVideo    HeaderFormat = "VIDEO"
	HeaderFormatDocument HeaderFormat = "DOCUMENT"
	HeaderFormatLocation HeaderFormat = "LOCATION"
)

// ButtonType tags a definition-time button.
type ButtonType string

const (
	ButtonTypePhoneNumber ButtonType = "PHONE_NUMBER"
	ButtonTypeURL         ButtonType = "URL"
	ButtonTypeQuickReply  ButtonType = "QUICK_REPLY"
	ButtonTypeOTP         ButtonType = "OTP"
)

// Category is the template's approval category.
type Category string

const (
	CategoryAuthentication Category = "AUTHENTICATION"
	CategoryMarketing      Category = "MARKETING"
	CategoryUtility        Category = "UTILITY"
)

// OTPType selects the behavior of an OTP button.
type OTPType string

const (
	OTPTypeCopyCode OTPType = "COPY_CODE"
	OTPTypeOneTap   OTPType = "ONE_TAP"
)

// ParamType tags a send-time parameter value. ParamPayload is not a
// parameter value of its own; it is the tag quick-reply button data is
// delivered under.
type ParamType string

const (
	ParamText     ParamType = "text"
	ParamCurrency ParamType = "currency"
	ParamDateTime ParamType = "date_time"
	ParamDocument ParamType = "document"
	ParamImage    ParamType = "image"
	ParamVideo    ParamType = "video"
	ParamLocation ParamType = "location"
	ParamButton   ParamType = "button"
	ParamPayload  ParamType = "payload"
)

// ButtonSubType tags a send-time button component.
type ButtonSubType string

const (
	SubTypeQuickReply ButtonSubType = "quick_reply"
	SubTypeURL        ButtonSubType = "url"
)

// Delimiters are the markers that surround inline example values in
// authored template text. The zero value means the default pair "{" / "}".
type Delimiters struct {
	Start string
	End   string
}

// DefaultDelimiters is the platform's authoring convention.
var DefaultDelimiters = Delimiters{Start: "{", End: "}"}

func (d Delimiters) orDefault() Delimiters {
	if d.Start == "" {
		d.Start = DefaultDelimiters.Start
	}
	if d.End == "" {
		d.End = DefaultDelimiters.End
	}
	return d
}
