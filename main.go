package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"doctorsportal/config"
	"doctorsportal/controllers"
	"doctorsportal/db"
	"doctorsportal/identity"
	"doctorsportal/middleware"
	"doctorsportal/payments"
	"doctorsportal/repository"
	"doctorsportal/routes"
	"doctorsportal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(context.Background()); err != nil {
			log.Println("Error while disconnecting from the database:", err)
		}
	}()

	credentials, err := cfg.CredentialsJSON()
	if err != nil {
		return err
	}
	verifier, err := identity.NewFirebaseVerifier(ctx, credentials)
	if err != nil {
		return err
	}
	gateway := payments.NewStripeGateway(cfg.StripeSecret)

	handle := database.Handle()
	appointmentController := controllers.NewAppointmentController(
		services.NewAppointmentService(repository.NewMongoAppointmentRepository(handle)))
	doctorController := controllers.NewDoctorController(
		services.NewDoctorService(repository.NewMongoDoctorRepository(handle)))
	userController := controllers.NewUserController(
		services.NewUserService(repository.NewMongoUserRepository(handle)))
	paymentController := controllers.NewPaymentController(
		services.NewPaymentService(gateway))

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	routes.Register(r, appointmentController, doctorController, userController, paymentController,
		middleware.VerifyToken(verifier))

	log.Println("listening at", cfg.Port)
	return r.Run(":" + cfg.Port)
}
