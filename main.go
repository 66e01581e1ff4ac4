package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"football-master-app/internal/seed"
	"football-master-app/internal/store"
	"football-master-app/internal/web"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		_ = godotenv.Load(".env", ".env.local")
	}

	appStore, err := openStore()
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer func() { _ = appStore.Close() }()

	if err := seed.Initialize(appStore); err != nil {
		log.Fatalf("seed: %v", err)
	}

	server := web.NewServer(appStore)
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(server.Routes())

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		log.Println("starting in Lambda mode")
		adapter := httpadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func openStore() (store.Store, error) {
	if uri := strings.TrimSpace(os.Getenv("MONGO_URL")); uri != "" {
		dbName := strings.TrimSpace(os.Getenv("DB_NAME"))
		if dbName == "" {
			dbName = "football_master"
		}
		return store.NewMongoStore(uri, dbName)
	}
	if dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN")); dsn != "" {
		return store.NewPostgresStore(dsn)
	}
	if path := strings.TrimSpace(os.Getenv("DB_PATH")); path != "" {
		return store.NewSQLiteStore(path)
	}
	log.Println("no database configured, using in-memory store")
	return store.NewMemoryStore(), nil
}
