package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"The ingredient name is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// IngredientResponse represents an ingredient in API responses.
// @Description Ingredient with package values
type IngredientResponse struct {
	ID                 string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name               string          `json:"name" example:"Wheat flour"`
	QuantityPerPackage float64         `json:"quantity_per_package" example:"1000"`
	PricePerPackage    decimal.Decimal `json:"price_per_package" swaggertype:"number" example:"10.00"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
} // @name IngredientResponse

// NewIngredientResponse maps an ingredient to its response shape.
func NewIngredientResponse(in model.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:                 in.ID,
		Name:               in.Name,
		QuantityPerPackage: in.QuantityPerPackage,
		PricePerPackage:    in.PricePerPackage,
		CreatedAt:          in.CreatedAt,
		UpdatedAt:          in.UpdatedAt,
	}
}

// RecipeResponse represents a recipe in API responses.
// @Description Recipe with its derived total ingredient cost
type RecipeResponse struct {
	ID        string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string          `json:"name" example:"Carrot cake"`
	TotalCost decimal.Decimal `json:"total_cost" swaggertype:"number" example:"52.00"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
} // @name RecipeResponse

// NewRecipeResponse maps a recipe to its response shape.
func NewRecipeResponse(in model.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:        in.ID,
		Name:      in.Name,
		TotalCost: in.TotalCost,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// AssociationResponse represents a recipe-ingredient association in API
// responses.
// @Description Association with the computed cost contribution
type AssociationResponse struct {
	RecipeID         string          `json:"recipe_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	IngredientID     string          `json:"ingredient_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	QuantityUsed     decimal.Decimal `json:"quantity_used" swaggertype:"number" example:"200"`
	CostContribution decimal.Decimal `json:"cost_contribution" swaggertype:"number" example:"2.00"`
} // @name AssociationResponse

// NewAssociationResponse maps an association to its response shape.
func NewAssociationResponse(in model.Association) AssociationResponse {
	return AssociationResponse{
		RecipeID:         in.RecipeID,
		IngredientID:     in.IngredientID,
		QuantityUsed:     in.QuantityUsed,
		CostContribution: in.CostContribution,
	}
}

// AssociatedIngredientResponse represents one row of a recipe's ingredient
// listing.
// @Description Ingredient of a recipe with quantity used and contribution
type AssociatedIngredientResponse struct {
	IngredientID     string          `json:"ingredient_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	IngredientName   string          `json:"ingredient_name" example:"Wheat flour"`
	QuantityUsed     decimal.Decimal `json:"quantity_used" swaggertype:"number" example:"200"`
	CostContribution decimal.Decimal `json:"cost_contribution" swaggertype:"number" example:"2.00"`
} // @name AssociatedIngredientResponse

// NewAssociatedIngredientResponse maps a joined listing row to its response
// shape.
func NewAssociatedIngredientResponse(in model.AssociatedIngredient) AssociatedIngredientResponse {
	return AssociatedIngredientResponse{
		IngredientID:     in.IngredientID,
		IngredientName:   in.IngredientName,
		QuantityUsed:     in.QuantityUsed,
		CostContribution: in.CostContribution,
	}
}

// PageResponse is the listing envelope: one page of items plus the
// navigation totals.
// @Description Paginated listing envelope
type PageResponse[T any] struct {
	Items       []T   `json:"items"`
	TotalItems  int64 `json:"total_items" example:"25"`
	TotalPages  int   `json:"total_pages" example:"3"`
	PageIndex   int   `json:"page_index" example:"0"`
	PageSize    int   `json:"page_size" example:"10"`
	HasNext     bool  `json:"has_next" example:"true"`
	HasPrevious bool  `json:"has_previous" example:"false"`
} // @name PageResponse

// NewPageResponse maps a domain page to its response shape, converting each
// item with mapItem.
func NewPageResponse[In, Out any](page *model.Page[In], mapItem func(In) Out) PageResponse[Out] {
	items := make([]Out, len(page.Items))
	for i, item := range page.Items {
		items[i] = mapItem(item)
	}
	return PageResponse[Out]{
		Items:       items,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
		PageIndex:   page.PageIndex,
		PageSize:    page.PageSize,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}
}
