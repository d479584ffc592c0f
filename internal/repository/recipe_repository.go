package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

// recipeDocument is the stored shape of a recipe.
type recipeDocument struct {
	ID        string               `bson:"_id"`
	Name      string               `bson:"name"`
	TotalCost primitive.Decimal128 `bson:"total_cost"`
	CreatedAt time.Time            `bson:"created_at"`
	UpdatedAt time.Time            `bson:"updated_at"`
}

func toRecipeDocument(in *model.Recipe) recipeDocument {
	return recipeDocument{
		ID:        in.ID,
		Name:      in.Name,
		TotalCost: mustDecimal128(in.TotalCost),
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

func (d recipeDocument) toModel() (model.Recipe, error) {
	total, err := fromDecimal128(d.TotalCost)
	if err != nil {
		return model.Recipe{}, err
	}
	return model.Recipe{
		ID:        d.ID,
		Name:      d.Name,
		TotalCost: total,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// MongoRecipeRepository implements RecipeRepository using MongoDB.
type MongoRecipeRepository struct {
	collection *mongo.Collection
}

// NewMongoRecipeRepository creates a new MongoDB-backed recipe repository.
func NewMongoRecipeRepository(db *MongoDB) *MongoRecipeRepository {
	return &MongoRecipeRepository{collection: db.Recipes}
}

// Create inserts a new recipe.
func (r *MongoRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	_, err := r.collection.InsertOne(ctx, toRecipeDocument(recipe))
	return err
}

// GetByID returns the recipe with the given id, or nil when absent.
func (r *MongoRecipeRepository) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	var doc recipeDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	recipe, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateName renames the recipe. The total cost is never touched here.
func (r *MongoRecipeRepository) UpdateName(ctx context.Context, id, name string) error {
	update := bson.M{"$set": bson.M{
		"name":       name,
		"updated_at": time.Now().UTC(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateTotalCost overwrites the stored total cost.
func (r *MongoRecipeRepository) UpdateTotalCost(ctx context.Context, id string, total decimal.Decimal) error {
	update := bson.M{"$set": bson.M{
		"total_cost": mustDecimal128(total),
		"updated_at": time.Now().UTC(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the number of recipes matching the filter.
func (r *MongoRecipeRepository) Count(ctx context.Context, filter string) (int64, error) {
	return r.collection.CountDocuments(ctx, nameFilter(filter))
}

// List returns one page of recipes matching the filter.
func (r *MongoRecipeRepository) List(ctx context.Context, q ListQuery) ([]model.Recipe, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: q.SortField, Value: sortOrder(q.Ascending)}}).
		SetSkip(int64(q.PageIndex * q.PageSize)).
		SetLimit(int64(q.PageSize))

	cursor, err := r.collection.Find(ctx, nameFilter(q.Filter), opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	recipes := make([]model.Recipe, 0, q.PageSize)
	for cursor.Next(ctx) {
		var doc recipeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		recipe, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, cursor.Err()
}
