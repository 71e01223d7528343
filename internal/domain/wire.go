package domain

// Wire shapes for the two payloads the platform accepts. Field presence is
// part of the contract: keys behind pointers are emitted even when the value
// is empty, keys behind nil pointers or empty slices are omitted entirely.

// DefinitionDocument is the template registration payload.
type DefinitionDocument struct {
	Name       string                `json:"name"`
	Category   Category              `json:"category"`
	Language   string                `json:"language"`
	Components []DefinitionComponent `json:"components"`
}

// DefinitionComponent is one block of a registration payload. Which fields
// are set depends on the component's type and, for headers, its format.
type DefinitionComponent struct {
	Type                      ComponentType `json:"type"`
	Format                    HeaderFormat  `json:"format,omitempty"`
	Text                      *string       `json:"text,omitempty"`
	Example                   *Example      `json:"example,omitempty"`
	Buttons                   []WireButton  `json:"buttons,omitempty"`
	AddSecurityRecommendation *bool         `json:"add_security_recommendation,omitempty"`
	CodeExpirationMinutes     *int          `json:"code_expiration_minutes,omitempty"`
}

// Example carries the example values attached to a definition component.
// Body examples are nested one level deeper than header examples.
type Example struct {
	HeaderText   []string   `json:"header_text,omitempty"`
	BodyText     [][]string `json:"body_text,omitempty"`
	HeaderHandle []string   `json:"header_handle,omitempty"`
}

// WireButton is one rendered button inside a BUTTONS component. Text has no
// omitempty on purpose: every button kind carries the key, and an untitled
// OTP button emits an explicit null so the platform falls back to its
// localized default label.
type WireButton struct {
	Type          ButtonType `json:"type"`
	Text          *string    `json:"text"`
	PhoneNumber   *string    `json:"phone_number,omitempty"`
	URL           *string    `json:"url,omitempty"`
	Example       []string   `json:"example,omitempty"`
	OTPType       OTPType    `json:"otp_type,omitempty"`
	PackageName   string     `json:"package_name,omitempty"`
	SignatureHash string     `json:"signature_hash,omitempty"`
	AutofillText  string     `json:"autofill_text,omitempty"`
}

// SendDocument is the template instantiation payload.
type SendDocument struct {
	Name       string          `json:"name"`
	Language   SendLanguage    `json:"language"`
	Components []SendComponent `json:"components"`
}

// SendLanguage wraps the language tag of a send payload.
type SendLanguage struct {
	Code string `json:"code"`
}

// SendComponent is one block of a send payload. Body and header components
// are tagged BODY/HEADER; button components are tagged button (lower case)
// and carry a sub_type plus their 0-based index, which must be emitted even
// when zero.
type SendComponent struct {
	Type       string          `json:"type"`
	SubType    ButtonSubType   `json:"sub_type,omitempty"`
	Index      *int            `json:"index,omitempty"`
	Parameters []SendParameter `json:"parameters"`
}

// SendParameter is one bound value inside a send component. Exactly one of
// the value fields is set, matching Type.
type SendParameter struct {
	Type     ParamType       `json:"type"`
	Text     *string         `json:"text,omitempty"`
	Payload  *string         `json:"payload,omitempty"`
	Currency *CurrencyObject `json:"currency,omitempty"`
	DateTime *DateTimeObject `json:"date_time,omitempty"`
	Document *MediaObject    `json:"document,omitempty"`
	Image    *MediaObject    `json:"image,omitempty"`
	Video    *MediaObject    `json:"video,omitempty"`
	Location *LocationObject `json:"location,omitempty"`
}

// CurrencyObject is the wire form of a currency value.
type CurrencyObject struct {
	FallbackValue string `json:"fallback_value"`
	Code          string `json:"code"`
	Amount1000    int    `json:"amount_1000"`
}

// DateTimeObject is the wire form of a date-time value.
type DateTimeObject struct {
	FallbackValue string `json:"fallback_value"`
}

// MediaObject references an already-uploaded media asset, either by
// platform media ID or by URL.
type MediaObject struct {
	ID  *string `json:"id,omitempty"`
	URL *string `json:"url,omitempty"`
}

// LocationObject is the wire form of a location value. Name and address are
// omitted when empty.
type LocationObject struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}
