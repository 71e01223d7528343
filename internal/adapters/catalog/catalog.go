// Package catalog loads template definitions from YAML files, the authoring
// format teams keep under version control. Construction invariants apply on
// load, so a file describing an inconsistent template fails with the same
// domain error a hand-built definition would.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/PauloSankovic/pywa/internal/domain"
)

type definitionFile struct {
	Name      string       `yaml:"name"`
	Category  string       `yaml:"category"`
	Language  string       `yaml:"language"`
	Header    *headerFile  `yaml:"header"`
	Body      *bodyFile    `yaml:"body"`
	Footer    string       `yaml:"footer"`
	Buttons   []buttonFile `yaml:"buttons"`
	OTPButton *otpFile     `yaml:"otp_button"`
}

type headerFile struct {
	Format  string   `yaml:"format"`
	Text    string   `yaml:"text"`
	Handles []string `yaml:"handles"`
}

type bodyFile struct {
	Text                      string `yaml:"text"`
	CodeExpirationMinutes     *int   `yaml:"code_expiration_minutes"`
	AddSecurityRecommendation bool   `yaml:"add_security_recommendation"`
}

type buttonFile struct {
	Type        string `yaml:"type"`
	Title       string `yaml:"title"`
	Text        string `yaml:"text"`
	URL         string `yaml:"url"`
	PhoneNumber string `yaml:"phone_number"`
}

type otpFile struct {
	OTPType       string `yaml:"otp_type"`
	Title         string `yaml:"title"`
	AutofillText  string `yaml:"autofill_text"`
	PackageName   string `yaml:"package_name"`
	SignatureHash string `yaml:"signature_hash"`
}

// Load reads a single template definition from the YAML file at path.
func Load(path string) (*domain.TemplateDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return Parse(raw, path)
}

// Parse decodes raw YAML into a template definition. name is used only in
// error messages.
func Parse(raw []byte, name string) (*domain.TemplateDefinition, error) {
	var file definitionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", name, err)
	}
	def, err := file.toDomain()
	if err != nil {
		return nil, fmt.Errorf("invalid template file %s: %w", name, err)
	}
	return def, nil
}

// LoadDir reads every .yaml/.yml file under dir (recursively) and returns
// the definitions in walk order.
func LoadDir(dir string) ([]*domain.TemplateDefinition, error) {
	var defs []*domain.TemplateDefinition
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		def, err := Load(path)
		if err != nil {
			return err
		}
		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

func (f *definitionFile) toDomain() (*domain.TemplateDefinition, error) {
	def := domain.TemplateDefinition{
		Name:     f.Name,
		Category: domain.Category(f.Category),
		Language: f.Language,
	}

	if f.Body != nil {
		if def.Category == domain.CategoryAuthentication {
			def.Body = domain.AuthBody{
				CodeExpirationMinutes:     f.Body.CodeExpirationMinutes,
				AddSecurityRecommendation: f.Body.AddSecurityRecommendation,
			}
		} else {
			def.Body = domain.Body{Text: f.Body.Text}
		}
	}

	if f.Header != nil {
		header, err := f.Header.toDomain()
		if err != nil {
			return nil, err
		}
		def.Header = header
	}

	if f.Footer != "" {
		def.Footer = &domain.Footer{Text: f.Footer}
	}

	switch {
	case f.OTPButton != nil && len(f.Buttons) > 0:
		return nil, fmt.Errorf("otp_button and buttons are mutually exclusive")
	case f.OTPButton != nil:
		otp, err := domain.NewOTPButton(domain.OTPButton{
			OTPType:       domain.OTPType(f.OTPButton.OTPType),
			Title:         f.OTPButton.Title,
			AutofillText:  f.OTPButton.AutofillText,
			PackageName:   f.OTPButton.PackageName,
			SignatureHash: f.OTPButton.SignatureHash,
		})
		if err != nil {
			return nil, err
		}
		def.Buttons = otp
	case len(f.Buttons) > 0:
		var list domain.ButtonList
		for i, b := range f.Buttons {
			button, err := b.toDomain()
			if err != nil {
				return nil, fmt.Errorf("button %d: %w", i, err)
			}
			list = append(list, button)
		}
		def.Buttons = list
	}

	return domain.NewTemplateDefinition(def)
}

func (f *headerFile) toDomain() (domain.DefinitionHeader, error) {
	switch domain.HeaderFormat(f.Format) {
	case domain.HeaderFormatText:
		return domain.TextHeader{Text: f.Text}, nil
	case domain.HeaderFormatImage:
		return domain.ImageHeader{Handles: f.Handles}, nil
	case domain.HeaderFormatVideo:
		return domain.VideoHeader{Handles: f.Handles}, nil
	case domain.HeaderFormatDocument:
		return domain.DocumentHeader{Handles: f.Handles}, nil
	case domain.HeaderFormatLocation:
		return domain.LocationHeader{}, nil
	}
	return nil, fmt.Errorf("unknown header format %q", f.Format)
}

func (f *buttonFile) toDomain() (domain.DefinitionButton, error) {
	switch domain.ButtonType(f.Type) {
	case domain.ButtonTypePhoneNumber:
		return domain.PhoneNumberButton{Title: f.Title, PhoneNumber: f.PhoneNumber}, nil
	case domain.ButtonTypeURL:
		return domain.URLButton{Title: f.Title, URL: f.URL}, nil
	case domain.ButtonTypeQuickReply:
		return domain.QuickReplyButton{Text: f.Text}, nil
	}
	return nil, fmt.Errorf("unknown button type %q", f.Type)
}
