// Command ielsd is the hosted IELS platform service.
// It serves the run API and a health check, backed by Postgres and blob storage.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/iels/iels/internal/api"
	"github.com/iels/iels/internal/archive"
	"github.com/iels/iels/internal/platform"
	"github.com/iels/iels/internal/registry"
	"github.com/iels/iels/pkg/scoring"
)

type config struct {
	Port        string
	DatabaseURL string
	StoragePath string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	GCSBucket   string
}

func loadConfig() config {
	return config{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: envOrDefault("DATABASE_URL", "postgres://localhost:5432/iels?sslmode=disable"),
		StoragePath: envOrDefault("LOCAL_STORAGE_PATH", "/tmp/iels-data"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    os.Getenv("S3_REGION"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		GCSBucket:   os.Getenv("GCS_BUCKET"),
	}
}

func main() {
	cfg := loadConfig()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	registrySvc := registry.NewService(db)
	engine := scoring.NewEngine(scoring.DefaultIndicators()...)
	archiveSvc := archive.NewService(registrySvc, storage, engine)

	mux := http.NewServeMux()
	api.NewHandler(registrySvc, archiveSvc).RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		log.Printf("starting ielsd on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// newStorage picks a blob storage backend: S3 or GCS when a bucket is
// configured, local filesystem otherwise.
func newStorage(ctx context.Context, cfg config) (archive.StorageClient, error) {
	switch {
	case cfg.S3Bucket != "":
		return archive.NewS3Storage(ctx, archive.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case cfg.GCSBucket != "":
		return archive.NewGCSStorage(ctx, cfg.GCSBucket)
	default:
		return archive.NewLocalStorage(cfg.StoragePath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
