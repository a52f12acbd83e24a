package payments

import (
	"context"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	_, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PaymentMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.Collection.FindOne(ctx, bson.M{"appointment_id": appointmentID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (r *PaymentMongoRepository) Totals(ctx context.Context) (*models.PaymentTotals, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":           nil,
			"count":         bson.M{"$sum": 1},
			"gross":         bson.M{"$sum": "$amount"},
			"platform_fees": bson.M{"$sum": "$platform_fee"},
			"doctor_amount": bson.M{"$sum": "$doctor_amount"},
		}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.PaymentTotals
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(results) == 0 {
		return &models.PaymentTotals{}, nil
	}
	return &results[0], nil
}
