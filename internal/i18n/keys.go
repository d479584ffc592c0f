// Package i18n provides internationalization support for the recipe cost
// service.
package i18n

// Transport-level error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyUserExists indicates an already-registered email.
	ErrKeyUserExists = "error.user_exists"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Ingredient validation and lookup keys.
const (
	ErrKeyIngredientNameRequired     = "error.ingredient.name_required"
	ErrKeyIngredientNameTooLong      = "error.ingredient.name_too_long"
	ErrKeyPackageQuantityRequired    = "error.ingredient.package_quantity_required"
	ErrKeyPackageQuantityNotPositive = "error.ingredient.package_quantity_not_positive"
	ErrKeyPackagePriceRequired       = "error.ingredient.package_price_required"
	ErrKeyPackagePriceNotPositive    = "error.ingredient.package_price_not_positive"
	ErrKeyIngredientNotFound         = "error.ingredient.not_found"
)

// Recipe validation and lookup keys.
const (
	ErrKeyRecipeNameRequired = "error.recipe.name_required"
	ErrKeyRecipeNameTooLong  = "error.recipe.name_too_long"
	ErrKeyRecipeNotFound     = "error.recipe.not_found"
)

// Association keys.
const (
	ErrKeyQuantityUsedRequired    = "error.association.quantity_required"
	ErrKeyQuantityUsedNotPositive = "error.association.quantity_not_positive"
	ErrKeyAlreadyAssociated       = "error.association.already_exists"
	ErrKeyNotAssociated           = "error.association.not_found"
)
