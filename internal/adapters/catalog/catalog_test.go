package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PauloSankovic/pywa/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketingYAML = `name: buy_new_iphone_x
category: MARKETING
language: en_US
header:
  format: TEXT
  text: "The New iPhone {15} is here!"
body:
  text: "Hello {John}! Use code {WA15} to get {15%} off!"
footer: Reply STOP to unsubscribe
buttons:
  - type: URL
    title: Buy Now
    url: "https://example.com/shop/{iphone15}"
  - type: PHONE_NUMBER
    title: Call Us
    phone_number: "1234567890"
  - type: QUICK_REPLY
    text: Unsubscribe
`

const authYAML = `name: auth_with_otp
category: AUTHENTICATION
language: en_US
body:
  code_expiration_minutes: 5
  add_security_recommendation: true
otp_button:
  otp_type: ONE_TAP
  title: Copy Code
  autofill_text: Autofill
  package_name: com.example.app
  signature_hash: 1234567890ABCDEF1234567890ABCDEF12345678
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMarketingDefinition(t *testing.T) {
	path := writeFile(t, t.TempDir(), "marketing.yaml", marketingYAML)

	def, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "buy_new_iphone_x", def.Name)
	assert.Equal(t, domain.CategoryMarketing, def.Category)
	assert.Equal(t, domain.TextHeader{Text: "The New iPhone {15} is here!"}, def.Header)
	require.NotNil(t, def.Footer)
	assert.Equal(t, "Reply STOP to unsubscribe", def.Footer.Text)

	list, ok := def.Buttons.(domain.ButtonList)
	require.True(t, ok)
	require.Len(t, list, 3)
	assert.Equal(t, domain.URLButton{Title: "Buy Now", URL: "https://example.com/shop/{iphone15}"}, list[0])
	assert.Equal(t, domain.PhoneNumberButton{Title: "Call Us", PhoneNumber: "1234567890"}, list[1])
	assert.Equal(t, domain.QuickReplyButton{Text: "Unsubscribe"}, list[2])
}

func TestLoadAuthenticationDefinition(t *testing.T) {
	path := writeFile(t, t.TempDir(), "auth.yaml", authYAML)

	def, err := Load(path)
	require.NoError(t, err)

	body, ok := def.Body.(domain.AuthBody)
	require.True(t, ok)
	require.NotNil(t, body.CodeExpirationMinutes)
	assert.Equal(t, 5, *body.CodeExpirationMinutes)
	assert.True(t, body.AddSecurityRecommendation)

	otp, ok := def.Buttons.(*domain.OTPButton)
	require.True(t, ok)
	assert.Equal(t, domain.OTPTypeOneTap, otp.OTPType)
	assert.Equal(t, "com.example.app", otp.PackageName)
}

func TestLoadAppliesConstructionInvariants(t *testing.T) {
	// AUTHENTICATION category without an OTP button violates the
	// construction invariant and must fail at load time.
	broken := `name: broken_auth
category: AUTHENTICATION
language: en_US
body:
  add_security_recommendation: true
`
	path := writeFile(t, t.TempDir(), "broken.yaml", broken)

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrAuthenticationComponents)
}

func TestLoadOneTapRequiresAppFields(t *testing.T) {
	broken := `name: broken_one_tap
category: AUTHENTICATION
language: en_US
body: {}
otp_button:
  otp_type: ONE_TAP
`
	path := writeFile(t, t.TempDir(), "broken.yaml", broken)

	_, err := Load(path)
	assert.ErrorIs(t, err, domain.ErrOneTapFields)
}

func TestLoadRejectsUnknownButtonType(t *testing.T) {
	broken := `name: bad_button
category: UTILITY
language: en_US
body:
  text: hi
buttons:
  - type: CAROUSEL
    title: Nope
`
	path := writeFile(t, t.TempDir(), "bad.yaml", broken)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown button type")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", marketingYAML)
	writeFile(t, dir, "b.yml", authYAML)
	writeFile(t, dir, "notes.txt", "ignored")

	defs, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, defs, 2)
}

func TestLoadDirPropagatesErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "name: [")

	_, err := LoadDir(dir)
	assert.Error(t, err)
}
