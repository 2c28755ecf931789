package usecase

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/blackboyfilms/studio-api/internal/entity"
)

var nonDigits = regexp.MustCompile(`\D`)

// Regras do formulário de contato. Violação nunca chega ao banco.
func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "é obrigatório"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "deve ter no máximo 200 caracteres"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "é obrigatório"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "é inválido"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "é obrigatório"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "deve ser um telefone válido"})
	}

	if strings.TrimSpace(input.Niche) == "" {
		errors = append(errors, ValidationError{"niche", "é obrigatório"})
	}

	if len(strings.TrimSpace(input.Message)) < 10 {
		errors = append(errors, ValidationError{"message", "deve ter pelo menos 10 caracteres"})
	}

	if !input.Consent {
		errors = append(errors, ValidationError{"consent", "é necessário aceitar os termos"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	// 10-11 dígitos nacionais, 12-13 com o DDI 55 na frente.
	return len(cleaned) >= 10 && len(cleaned) <= 13
}

// NormalizePhoneE164 converte telefone brasileiro para E.164 (+55...).
// Devolve "" quando o número não é reconhecível.
func NormalizePhoneE164(phone string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	switch {
	case (len(cleaned) == 12 || len(cleaned) == 13) && strings.HasPrefix(cleaned, "55"):
		return "+" + cleaned
	case len(cleaned) == 10 || len(cleaned) == 11:
		return "+55" + cleaned
	}
	return ""
}

// Regras de slug e dos IDs de pixel, herdadas do painel antigo.
var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	ga4IDPattern    = regexp.MustCompile(`(?i)^G-[A-Z0-9]{6,12}$`)
	metaIDPattern   = regexp.MustCompile(`^[0-9]{15,16}$`)
	tiktokIDPattern = regexp.MustCompile(`(?i)^[A-Z0-9]{18,24}$`)
)

func ValidateNiche(n *entity.Niche) ValidationErrors {
	var errors ValidationErrors
	if strings.TrimSpace(n.Name) == "" {
		errors = append(errors, ValidationError{"name", "é obrigatório"})
	} else if len(n.Name) > 100 {
		errors = append(errors, ValidationError{"name", "deve ter no máximo 100 caracteres"})
	}
	if strings.TrimSpace(n.Slug) == "" {
		errors = append(errors, ValidationError{"slug", "é obrigatório"})
	} else if !slugPattern.MatchString(n.Slug) {
		errors = append(errors, ValidationError{"slug", "deve conter apenas letras minúsculas, números e hífens"})
	}
	if strings.TrimSpace(n.Description) == "" {
		errors = append(errors, ValidationError{"description", "é obrigatória"})
	} else if len(n.Description) > 500 {
		errors = append(errors, ValidationError{"description", "deve ter no máximo 500 caracteres"})
	}
	if n.DisplayOrder < 0 {
		errors = append(errors, ValidationError{"display_order", "deve ser maior ou igual a zero"})
	}
	return errors
}

func ValidatePortfolioItem(item *entity.PortfolioItem) ValidationErrors {
	var errors ValidationErrors
	if strings.TrimSpace(item.Title) == "" {
		errors = append(errors, ValidationError{"title", "é obrigatório"})
	} else if len(item.Title) > 200 {
		errors = append(errors, ValidationError{"title", "deve ter no máximo 200 caracteres"})
	}
	if strings.TrimSpace(item.Niche) == "" {
		errors = append(errors, ValidationError{"niche", "é obrigatório"})
	}
	if strings.TrimSpace(item.VideoURL) == "" {
		errors = append(errors, ValidationError{"video_url", "é obrigatória"})
	}
	if item.DisplayOrder < 0 {
		errors = append(errors, ValidationError{"display_order", "deve ser maior ou igual a zero"})
	}
	return errors
}

func ValidateClient(c *entity.Client) ValidationErrors {
	var errors ValidationErrors
	if strings.TrimSpace(c.Name) == "" {
		errors = append(errors, ValidationError{"name", "é obrigatório"})
	} else if len(c.Name) > 100 {
		errors = append(errors, ValidationError{"name", "deve ter no máximo 100 caracteres"})
	}
	if strings.TrimSpace(c.LogoURL) == "" {
		errors = append(errors, ValidationError{"logo_url", "é obrigatória"})
	}
	if c.DisplayOrder < 0 {
		errors = append(errors, ValidationError{"display_order", "deve ser maior ou igual a zero"})
	}
	return errors
}

// IDs de pixel só são validados quando o bloco está ativo e preenchido,
// igual ao comportamento do painel.
func ValidateTrackingConfig(cfg entity.TrackingConfig) ValidationErrors {
	var errors ValidationErrors
	if cfg.GA4.Enabled && cfg.GA4.MeasurementID != "" && !ga4IDPattern.MatchString(strings.TrimSpace(cfg.GA4.MeasurementID)) {
		errors = append(errors, ValidationError{"ga4.measurement_id", "formato esperado: G-XXXXXXXXXX"})
	}
	if cfg.Meta.Enabled && cfg.Meta.PixelID != "" && !metaIDPattern.MatchString(strings.TrimSpace(cfg.Meta.PixelID)) {
		errors = append(errors, ValidationError{"meta.pixel_id", "deve ter 15 ou 16 dígitos"})
	}
	if cfg.TikTok.Enabled && cfg.TikTok.PixelID != "" && !tiktokIDPattern.MatchString(strings.TrimSpace(cfg.TikTok.PixelID)) {
		errors = append(errors, ValidationError{"tiktok.pixel_id", "deve ter entre 18 e 24 caracteres alfanuméricos"})
	}
	return errors
}
