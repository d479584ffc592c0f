// Package i18n provides internationalization support for the recipe cost
// service. It handles translation of user-facing messages and error
// messages. Portuguese is a first-class locale: the service's original
// market is Brazilian food micro-entrepreneurs.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "pt-BR,pt;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Transport errors
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid email or password",
			"error.user_exists":          "A user with this email already exists",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timeout",

			// Ingredient
			"error.ingredient.name_required":                 "The ingredient name is required",
			"error.ingredient.name_too_long":                 "The ingredient name must be at most 100 characters",
			"error.ingredient.package_quantity_required":     "The quantity per package is required",
			"error.ingredient.package_quantity_not_positive": "The quantity per package must be greater than 0",
			"error.ingredient.package_price_required":        "The price paid per package is required",
			"error.ingredient.package_price_not_positive":    "The price paid per package must be greater than 0",
			"error.ingredient.not_found":                     "No ingredient found for the given id",

			// Recipe
			"error.recipe.name_required": "The recipe name is required",
			"error.recipe.name_too_long": "The recipe name must be at most 100 characters",
			"error.recipe.not_found":     "No recipe found for the given id",

			// Association
			"error.association.quantity_required":     "The quantity of ingredient used is required",
			"error.association.quantity_not_positive": "The quantity of ingredient used must be greater than 0",
			"error.association.already_exists":        "The ingredient is already associated with the recipe",
			"error.association.not_found":             "The ingredient is not associated with the recipe",
		},
		"pt": {
			// Transport errors
			"error.invalid_request":      "Requisição inválida",
			"error.invalid_request_body": "Corpo da requisição inválido",
			"error.internal_error":       "Ocorreu um erro inesperado",
			"error.unauthorized":         "Não autorizado",
			"error.invalid_credentials":  "E-mail ou senha inválidos",
			"error.user_exists":          "Já existe um usuário com este e-mail",
			"error.api_key_required":     "Chave de API é obrigatória",
			"error.invalid_api_key":      "Chave de API inválida",
			"error.not_found":            "Não encontrado",
			"error.rate_limit_exceeded":  "Muitas requisições, tente novamente mais tarde",
			"error.conflict":             "Conflito",
			"error.invalid_token":        "Token inválido ou expirado",
			"error.token_required":       "Token de autenticação é obrigatório",
			"error.timeout":              "Tempo de requisição esgotado",

			// Ingredient
			"error.ingredient.name_required":                 "O nome do insumo é obrigatório",
			"error.ingredient.name_too_long":                 "O nome do insumo deve ter no máximo 100 caracteres",
			"error.ingredient.package_quantity_required":     "A quantidade por pacote é obrigatória",
			"error.ingredient.package_quantity_not_positive": "A quantidade por pacote deve ser maior que 0",
			"error.ingredient.package_price_required":        "O valor pago por pacote é obrigatório",
			"error.ingredient.package_price_not_positive":    "O valor pago por pacote deve ser maior que 0",
			"error.ingredient.not_found":                     "Nenhum insumo encontrado pelo id informado",

			// Recipe
			"error.recipe.name_required": "O nome da receita é obrigatório",
			"error.recipe.name_too_long": "O nome da receita deve ter no máximo 100 caracteres",
			"error.recipe.not_found":     "Nenhuma receita encontrada pelo id informado",

			// Association
			"error.association.quantity_required":     "A quantidade utilizada de insumo é obrigatória",
			"error.association.quantity_not_positive": "A quantidade utilizada de insumo deve ser maior que 0",
			"error.association.already_exists":        "O insumo informado já está associado à receita informada",
			"error.association.not_found":             "O insumo informado não está associado à receita informada",
		},
	}
}
