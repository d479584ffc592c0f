package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

// ingredientDocument is the stored shape of an ingredient.
type ingredientDocument struct {
	ID                 string               `bson:"_id"`
	Name               string               `bson:"name"`
	QuantityPerPackage float64              `bson:"quantity_per_package"`
	PricePerPackage    primitive.Decimal128 `bson:"price_per_package"`
	CreatedAt          time.Time            `bson:"created_at"`
	UpdatedAt          time.Time            `bson:"updated_at"`
}

func toIngredientDocument(in *model.Ingredient) ingredientDocument {
	return ingredientDocument{
		ID:                 in.ID,
		Name:               in.Name,
		QuantityPerPackage: in.QuantityPerPackage,
		PricePerPackage:    mustDecimal128(in.PricePerPackage),
		CreatedAt:          in.CreatedAt,
		UpdatedAt:          in.UpdatedAt,
	}
}

func (d ingredientDocument) toModel() (model.Ingredient, error) {
	price, err := fromDecimal128(d.PricePerPackage)
	if err != nil {
		return model.Ingredient{}, err
	}
	return model.Ingredient{
		ID:                 d.ID,
		Name:               d.Name,
		QuantityPerPackage: d.QuantityPerPackage,
		PricePerPackage:    price,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}, nil
}

// MongoIngredientRepository implements IngredientRepository using MongoDB.
type MongoIngredientRepository struct {
	collection *mongo.Collection
}

// NewMongoIngredientRepository creates a new MongoDB-backed ingredient
// repository.
func NewMongoIngredientRepository(db *MongoDB) *MongoIngredientRepository {
	return &MongoIngredientRepository{collection: db.Ingredients}
}

// Create inserts a new ingredient.
func (r *MongoIngredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	_, err := r.collection.InsertOne(ctx, toIngredientDocument(ingredient))
	return err
}

// GetByID returns the ingredient with the given id, or nil when absent.
func (r *MongoIngredientRepository) GetByID(ctx context.Context, id string) (*model.Ingredient, error) {
	var doc ingredientDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ingredient, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Update overwrites the ingredient's mutable fields.
func (r *MongoIngredientRepository) Update(ctx context.Context, ingredient *model.Ingredient) error {
	update := bson.M{"$set": bson.M{
		"name":                 ingredient.Name,
		"quantity_per_package": ingredient.QuantityPerPackage,
		"price_per_package":    mustDecimal128(ingredient.PricePerPackage),
		"updated_at":           ingredient.UpdatedAt,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": ingredient.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes the ingredient.
func (r *MongoIngredientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// nameFilter builds a case-insensitive substring match on the name field.
func nameFilter(filter string) bson.M {
	if filter == "" {
		return bson.M{}
	}
	return bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(filter), "$options": "i"}}
}

// Count returns the number of ingredients matching the filter.
func (r *MongoIngredientRepository) Count(ctx context.Context, filter string) (int64, error) {
	return r.collection.CountDocuments(ctx, nameFilter(filter))
}

// List returns one page of ingredients matching the filter.
func (r *MongoIngredientRepository) List(ctx context.Context, q ListQuery) ([]model.Ingredient, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: q.SortField, Value: sortOrder(q.Ascending)}}).
		SetSkip(int64(q.PageIndex * q.PageSize)).
		SetLimit(int64(q.PageSize))

	cursor, err := r.collection.Find(ctx, nameFilter(q.Filter), opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	ingredients := make([]model.Ingredient, 0, q.PageSize)
	for cursor.Next(ctx) {
		var doc ingredientDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		ingredient, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, cursor.Err()
}

func sortOrder(ascending bool) int {
	if ascending {
		return 1
	}
	return -1
}
