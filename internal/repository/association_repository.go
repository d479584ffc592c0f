package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/recipe-cost-service/internal/domain/model"
)

// associationDocument is the stored shape of a recipe-ingredient
// association. The (recipe_id, ingredient_id) pair is covered by a unique
// index.
type associationDocument struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	RecipeID         string               `bson:"recipe_id"`
	IngredientID     string               `bson:"ingredient_id"`
	QuantityUsed     primitive.Decimal128 `bson:"quantity_used"`
	CostContribution primitive.Decimal128 `bson:"cost_contribution"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

func (d associationDocument) toModel() (model.Association, error) {
	quantity, err := fromDecimal128(d.QuantityUsed)
	if err != nil {
		return model.Association{}, err
	}
	contribution, err := fromDecimal128(d.CostContribution)
	if err != nil {
		return model.Association{}, err
	}
	return model.Association{
		RecipeID:         d.RecipeID,
		IngredientID:     d.IngredientID,
		QuantityUsed:     quantity,
		CostContribution: contribution,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}, nil
}

// MongoAssociationRepository implements AssociationRepository using MongoDB.
type MongoAssociationRepository struct {
	collection *mongo.Collection
}

// NewMongoAssociationRepository creates a new MongoDB-backed association
// repository.
func NewMongoAssociationRepository(db *MongoDB) *MongoAssociationRepository {
	return &MongoAssociationRepository{collection: db.Associations}
}

func pairKey(recipeID, ingredientID string) bson.M {
	return bson.M{"recipe_id": recipeID, "ingredient_id": ingredientID}
}

// Exists reports whether the recipe already uses the ingredient.
func (r *MongoAssociationRepository) Exists(ctx context.Context, recipeID, ingredientID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, pairKey(recipeID, ingredientID))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Get returns the association for the pair, or nil when absent.
func (r *MongoAssociationRepository) Get(ctx context.Context, recipeID, ingredientID string) (*model.Association, error) {
	var doc associationDocument
	err := r.collection.FindOne(ctx, pairKey(recipeID, ingredientID)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	association, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &association, nil
}

// Create inserts a new association.
func (r *MongoAssociationRepository) Create(ctx context.Context, association *model.Association) error {
	doc := associationDocument{
		RecipeID:         association.RecipeID,
		IngredientID:     association.IngredientID,
		QuantityUsed:     mustDecimal128(association.QuantityUsed),
		CostContribution: mustDecimal128(association.CostContribution),
		CreatedAt:        association.CreatedAt,
		UpdatedAt:        association.UpdatedAt,
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// UpdateQuantity rewrites the quantity used and the contribution of one
// association.
func (r *MongoAssociationRepository) UpdateQuantity(ctx context.Context, recipeID, ingredientID string, quantityUsed, contribution decimal.Decimal) error {
	update := bson.M{"$set": bson.M{
		"quantity_used":     mustDecimal128(quantityUsed),
		"cost_contribution": mustDecimal128(contribution),
		"updated_at":        time.Now().UTC(),
	}}
	res, err := r.collection.UpdateOne(ctx, pairKey(recipeID, ingredientID), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// associationWithRecipeDocument is the $lookup result joining an
// association with its recipe.
type associationWithRecipeDocument struct {
	associationDocument `bson:",inline"`
	Recipe              recipeDocument `bson:"recipe"`
}

// ListByIngredient returns every association referencing the ingredient,
// joined with its recipe.
func (r *MongoAssociationRepository) ListByIngredient(ctx context.Context, ingredientID string) ([]model.AssociationWithRecipe, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ingredient_id": ingredientID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "recipes",
			"localField":   "recipe_id",
			"foreignField": "_id",
			"as":           "recipe",
		}}},
		{{Key: "$unwind", Value: "$recipe"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var out []model.AssociationWithRecipe
	for cursor.Next(ctx) {
		var doc associationWithRecipeDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		association, err := doc.associationDocument.toModel()
		if err != nil {
			return nil, err
		}
		recipe, err := doc.Recipe.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, model.AssociationWithRecipe{Association: association, Recipe: recipe})
	}
	return out, cursor.Err()
}

// DeleteByIngredient removes every association referencing the ingredient.
func (r *MongoAssociationRepository) DeleteByIngredient(ctx context.Context, ingredientID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"ingredient_id": ingredientID})
	return err
}

func ingredientNameMatch(filter string) bson.M {
	return bson.M{"ingredient.name": bson.M{"$regex": regexp.QuoteMeta(filter), "$options": "i"}}
}

// CountForRecipe returns the number of the recipe's associations whose
// ingredient name matches the filter.
func (r *MongoAssociationRepository) CountForRecipe(ctx context.Context, recipeID, filter string) (int64, error) {
	if filter == "" {
		return r.collection.CountDocuments(ctx, bson.M{"recipe_id": recipeID})
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"recipe_id": recipeID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "ingredients",
			"localField":   "ingredient_id",
			"foreignField": "_id",
			"as":           "ingredient",
		}}},
		{{Key: "$unwind", Value: "$ingredient"}},
		{{Key: "$match", Value: ingredientNameMatch(filter)}},
		{{Key: "$count", Value: "total"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var result struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}
	return result.Total, cursor.Err()
}

// associatedIngredientDocument is the $lookup result joining an association
// with its ingredient.
type associatedIngredientDocument struct {
	associationDocument `bson:",inline"`
	Ingredient          ingredientDocument `bson:"ingredient"`
}

// ListForRecipe returns one page of the recipe's associations joined with
// the ingredient name.
func (r *MongoAssociationRepository) ListForRecipe(ctx context.Context, recipeID string, q ListQuery) ([]model.AssociatedIngredient, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"recipe_id": recipeID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "ingredients",
			"localField":   "ingredient_id",
			"foreignField": "_id",
			"as":           "ingredient",
		}}},
		{{Key: "$unwind", Value: "$ingredient"}},
	}
	if q.Filter != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: ingredientNameMatch(q.Filter)}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: q.SortField, Value: sortOrder(q.Ascending)}}}},
		bson.D{{Key: "$skip", Value: int64(q.PageIndex * q.PageSize)}},
		bson.D{{Key: "$limit", Value: int64(q.PageSize)}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	items := make([]model.AssociatedIngredient, 0, q.PageSize)
	for cursor.Next(ctx) {
		var doc associatedIngredientDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		association, err := doc.associationDocument.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, model.AssociatedIngredient{
			RecipeID:         association.RecipeID,
			IngredientID:     association.IngredientID,
			IngredientName:   doc.Ingredient.Name,
			QuantityUsed:     association.QuantityUsed,
			CostContribution: association.CostContribution,
		})
	}
	return items, cursor.Err()
}
