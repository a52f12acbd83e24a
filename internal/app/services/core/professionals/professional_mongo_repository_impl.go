package professionals

import (
	"context"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfessionalMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfessionalMongoRepository(db *mongo.Client, dbName string) contracts.ProfessionalRepository {
	return &ProfessionalMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfessionals),
	}
}

func (r *ProfessionalMongoRepository) CreateProfessional(ctx context.Context, professional *models.Professional) error {
	_, err := r.Collection.InsertOne(ctx, professional)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ProfessionalMongoRepository) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	var professional models.Professional
	err := r.Collection.FindOne(ctx, bson.M{"id": professionalID}).Decode(&professional)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &professional, nil
}

func (r *ProfessionalMongoRepository) FindBySubdomain(ctx context.Context, subdomain string) (*models.Professional, error) {
	var professional models.Professional
	err := r.Collection.FindOne(ctx, bson.M{"subdomain": subdomain}).Decode(&professional)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &professional, nil
}

func (r *ProfessionalMongoRepository) FindByStatus(ctx context.Context, status models.ProfessionalStatus) ([]models.Professional, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"status": status}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return professionals, nil
}

func (r *ProfessionalMongoRepository) SubdomainExists(ctx context.Context, subdomain string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"subdomain": subdomain})
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

func (r *ProfessionalMongoRepository) UpdateStatus(ctx context.Context, professionalID string, status models.ProfessionalStatus) (bool, error) {
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"id": professionalID}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *ProfessionalMongoRepository) UpdateProfilePhoto(ctx context.Context, professionalID, profilePhoto string) (bool, error) {
	update := bson.M{"$set": bson.M{"profile_photo": profilePhoto}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"id": professionalID}, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}
