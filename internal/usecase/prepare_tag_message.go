package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/compozy/autotag/internal/domain"
)

// PrepareTagMessageUseCase renders the annotation message of a release tag.
// An empty Template yields the default "automatic release tag of <name> (<version>)".
type PrepareTagMessageUseCase struct {
	Template string
}

// Execute runs the use case.
func (uc *PrepareTagMessageUseCase) Execute(_ context.Context, m *domain.Manifest, tag string) (string, error) {
	if m == nil {
		return "", fmt.Errorf("manifest cannot be nil")
	}
	if strings.TrimSpace(uc.Template) == "" {
		return domain.TagMessage(m.Name, m.Version), nil
	}
	data := struct {
		Name    string
		Version string
		Tag     string
		Format  string
	}{
		Name:    m.Name,
		Version: m.Version,
		Tag:     tag,
		Format:  string(m.Format),
	}
	// Fail on missing keys
	tmpl, err := template.New("tag-message").Option("missingkey=error").Parse(uc.Template)
	if err != nil {
		return "", fmt.Errorf("failed to parse tag message template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute tag message template: %w", err)
	}
	message := strings.TrimSpace(buf.String())
	if message == "" {
		return "", fmt.Errorf("tag message template rendered an empty message")
	}
	return message, nil
}
