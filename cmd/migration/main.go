package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/drivers/database"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	log := logrus.New()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch internalConfig.DB.Driver {
	case constvars.DBDriverPostgres:
		db := database.NewPostgresDB(driverConfig)
		defer db.Close()
		migratePostgres(log, db)
		seedAdminPostgres(ctx, log, db)
	default:
		client := database.NewMongoDB(driverConfig)
		defer client.Disconnect(ctx)
		db := client.Database(driverConfig.MongoDB.DbName)
		migrateMongo(ctx, log, db)
		seedAdminMongo(ctx, log, db)
	}

	log.Println("Migration finished")
}

func migratePostgres(log *logrus.Logger, db *sql.DB) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!", n)
}

// migrateMongo creates the unique indexes the application depends on: one
// subdomain per professional and at most one ledger row per appointment.
func migrateMongo(ctx context.Context, log *logrus.Logger, db *mongo.Database) {
	_, err := db.Collection(constvars.MongoCollectionProfessionals).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "subdomain", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Error creating professionals.subdomain index: %v", err)
	}

	_, err = db.Collection(constvars.MongoCollectionPayments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "appointment_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Error creating payments.appointment_id index: %v", err)
	}

	_, err = db.Collection(constvars.MongoCollectionAppointments).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "professional_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		log.Fatalf("Error creating appointments.professional_id index: %v", err)
	}

	log.Println("Created MongoDB indexes")
}

func seedAdminMongo(ctx context.Context, log *logrus.Logger, db *mongo.Database) {
	collection := db.Collection(constvars.MongoCollectionAdmins)

	count, err := collection.CountDocuments(ctx, bson.M{"username": defaultAdminUsername})
	if err != nil {
		log.Fatalf("Error checking for default admin: %v", err)
	}
	if count > 0 {
		log.Println("Default admin already present, skipping seed")
		return
	}

	hash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		log.Fatalf("Error hashing default admin password: %v", err)
	}

	_, err = collection.InsertOne(ctx, &models.AdminUser{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Fatalf("Error seeding default admin: %v", err)
	}

	log.Println("Seeded default admin user")
}

func seedAdminPostgres(ctx context.Context, log *logrus.Logger, db *sql.DB) {
	var exists bool
	err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)`, defaultAdminUsername).Scan(&exists)
	if err != nil {
		log.Fatalf("Error checking for default admin: %v", err)
	}
	if exists {
		log.Println("Default admin already present, skipping seed")
		return
	}

	hash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		log.Fatalf("Error hashing default admin password: %v", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO admins (username, password_hash, created_at) VALUES ($1, $2, $3)`,
		defaultAdminUsername, hash, time.Now().UTC(),
	)
	if err != nil {
		log.Fatalf("Error seeding default admin: %v", err)
	}

	log.Println("Seeded default admin user")
}
