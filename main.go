package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/wbenmachich/portfolio-site-backend/api"
	"github.com/wbenmachich/portfolio-site-backend/config"
	"github.com/wbenmachich/portfolio-site-backend/database"
	"github.com/wbenmachich/portfolio-site-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	ctx := context.Background()

	mongoURI := config.GetString(c, "MONGODB_URI", "")
	client, err := database.Connect(ctx, mongoURI)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from database")
		}
	}()

	dbName := config.GetString(c, "MONGODB_DATABASE", "portfolio")
	db := database.New(client.Database(dbName))

	images, err := services.NewS3ImageStore(ctx, services.S3Config{
		Endpoint:      config.GetString(c, "S3_ENDPOINT", ""),
		Region:        config.GetString(c, "S3_REGION", "us-east-1"),
		Bucket:        config.GetString(c, "S3_BUCKET", ""),
		AccessKey:     config.GetString(c, "S3_ACCESS_KEY", ""),
		SecretKey:     config.GetString(c, "S3_SECRET_KEY", ""),
		PublicBaseURL: config.GetString(c, "S3_PUBLIC_BASE_URL", ""),
	})
	if err != nil {
		fmt.Printf("Error initializing image store: %v\n", err)
		os.Exit(1)
	}

	mailer, err := services.NewResendMailer(
		config.GetString(c, "RESEND_API_KEY", ""),
		config.GetString(c, "RESEND_FROM_EMAIL", ""),
	)
	if err != nil {
		fmt.Printf("Error initializing mailer: %v\n", err)
		os.Exit(1)
	}

	notifier := services.NewContactNotifier(
		mailer,
		config.GetString(c, "ADMIN_EMAIL", ""),
		config.GetString(c, "SITE_OWNER_NAME", "Wassime Benmachich"),
	)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db, images, notifier)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
