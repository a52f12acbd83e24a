package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/delivery/http/routers"
	"telecare-service/internal/app/drivers/database"
	"telecare-service/internal/app/drivers/logger"
	"telecare-service/internal/app/drivers/messaging"
	"telecare-service/internal/app/drivers/storage"
	"telecare-service/internal/app/services/core/analytics"
	"telecare-service/internal/app/services/core/appointments"
	"telecare-service/internal/app/services/core/auth"
	"telecare-service/internal/app/services/core/notifications"
	"telecare-service/internal/app/services/core/payments"
	"telecare-service/internal/app/services/core/professionals"
	"telecare-service/internal/app/services/shared/fast2sms"
	"telecare-service/internal/app/services/shared/locker"
	"telecare-service/internal/app/services/shared/meet"
	"telecare-service/internal/app/services/shared/payment_gateway"
	sharedredis "telecare-service/internal/app/services/shared/redis"
	sharedstorage "telecare-service/internal/app/services/shared/storage"
	"telecare-service/internal/app/services/shared/whatsapp"
	"telecare-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	switch internalConfig.DB.Driver {
	case constvars.DBDriverPostgres:
		bootstrap.PostgresDB = database.NewPostgresDB(driverConfig)
	default:
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}

	bootstrapTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	zapLogger.Sugar().Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	zapLogger := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	var (
		adminUserRepository    contracts.AdminUserRepository
		professionalRepository contracts.ProfessionalRepository
		patientRepository      contracts.PatientRepository
		appointmentRepository  contracts.AppointmentRepository
		paymentRepository      contracts.PaymentRepository
	)
	switch internalConfig.DB.Driver {
	case constvars.DBDriverPostgres:
		adminUserRepository, professionalRepository, patientRepository, appointmentRepository, paymentRepository = buildPostgresRepositories(bootstrap.PostgresDB)
	default:
		adminUserRepository, professionalRepository, patientRepository, appointmentRepository, paymentRepository = buildMongoRepositories(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	}

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	razorpayService := payment_gateway.NewRazorpayService(internalConfig, zapLogger)
	meetService := meet.NewGoogleMeetService(internalConfig, zapLogger)
	minioClient := storage.NewMinio(bootstrap.DriverConfig)
	storageService := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	whatsAppService, err := whatsapp.NewWhatsAppService(bootstrap.RabbitMQ, zapLogger, internalConfig.WhatsApp.Queue)
	if err != nil {
		log.Fatalf("Failed to initialize WhatsApp queue: %v", err)
	}
	notificationService := notifications.NewNotificationService(whatsAppService, zapLogger)

	// Notification worker draining the queue into the messaging provider.
	messagingClient := fast2sms.NewFast2SMSClient(internalConfig, zapLogger)
	worker, err := notifications.NewWhatsAppWorker(bootstrap.RabbitMQ, internalConfig.WhatsApp.Queue, messagingClient, zapLogger)
	if err != nil {
		log.Fatalf("Failed to initialize notification worker: %v", err)
	}
	workerCtx, workerCancel := context.WithCancel(context.Background())
	bootstrap.WorkerStop = workerCancel
	go func() {
		if err := worker.Run(workerCtx); err != nil && err != context.Canceled {
			zapLogger.Sugar().Errorf("Notification worker stopped: %v", err)
		}
	}()

	// Usecases
	authUsecase := auth.NewAuthUsecase(adminUserRepository, internalConfig, zapLogger)
	professionalUsecase := professionals.NewProfessionalUsecase(professionalRepository, storageService, internalConfig, zapLogger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, professionalRepository, zapLogger)
	paymentUsecase := payments.NewPaymentUsecase(
		appointmentRepository,
		professionalRepository,
		paymentRepository,
		razorpayService,
		meetService,
		notificationService,
		lockerService,
		internalConfig,
		zapLogger,
	)
	analyticsUsecase := analytics.NewAnalyticsUsecase(appointmentRepository, paymentRepository, zapLogger)

	// Delivery
	mw := middlewares.NewMiddlewares(zapLogger, authUsecase, internalConfig)
	authController := controllers.NewAuthController(zapLogger, authUsecase)
	appointmentController := controllers.NewAppointmentController(zapLogger, appointmentUsecase)
	paymentController := controllers.NewPaymentController(zapLogger, paymentUsecase)
	professionalController := controllers.NewProfessionalController(zapLogger, professionalUsecase)
	analyticsController := controllers.NewAnalyticsController(zapLogger, analyticsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		mw,
		authController,
		appointmentController,
		paymentController,
		professionalController,
		analyticsController,
	)
}

func buildMongoRepositories(client *mongo.Client, dbName string) (
	contracts.AdminUserRepository,
	contracts.ProfessionalRepository,
	contracts.PatientRepository,
	contracts.AppointmentRepository,
	contracts.PaymentRepository,
) {
	return auth.NewAdminUserMongoRepository(client, dbName),
		professionals.NewProfessionalMongoRepository(client, dbName),
		appointments.NewPatientMongoRepository(client, dbName),
		appointments.NewAppointmentMongoRepository(client, dbName),
		payments.NewPaymentMongoRepository(client, dbName)
}

func buildPostgresRepositories(db *sql.DB) (
	contracts.AdminUserRepository,
	contracts.ProfessionalRepository,
	contracts.PatientRepository,
	contracts.AppointmentRepository,
	contracts.PaymentRepository,
) {
	return auth.NewAdminUserPostgresRepository(db),
		professionals.NewProfessionalPostgresRepository(db),
		appointments.NewPatientPostgresRepository(db),
		appointments.NewAppointmentPostgresRepository(db),
		payments.NewPaymentPostgresRepository(db)
}
