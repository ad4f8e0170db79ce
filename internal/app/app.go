package app

import (
	"log"
	"net/http"
	"time"

	"floraconcierge/backend/internal/app/config"
	apphttp "floraconcierge/backend/internal/app/http"
	"floraconcierge/backend/internal/domain/catalog"
	"floraconcierge/backend/internal/domain/location"
	"floraconcierge/backend/internal/domain/session"
	"floraconcierge/backend/internal/infra/db/postgres"
	"floraconcierge/backend/internal/infra/events"
	"floraconcierge/backend/internal/infra/store"
)

func Run() {
	cfg := config.MustLoad()

	var plants catalog.Provider = catalog.NewMemoryProvider(nil)
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
		plants = postgres.NewCatalogProvider(db)
		log.Printf("catalog: postgres")
	} else {
		log.Printf("catalog: in-memory seed")
	}

	var st store.Store = store.NewMemory()
	if cfg.RedisAddr != "" {
		rs, err := store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.StateTTL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rs.Close()
		st = rs
		log.Printf("store: redis addr=%s", cfg.RedisAddr)
	} else {
		log.Printf("store: in-memory")
	}

	producer := events.NewProducer(cfg.KafkaBroker)
	defer producer.Close()

	sessions := session.NewManager(st, plants, producer, cfg.GenerateLatency, cfg.KioskIdleAfter)
	router := apphttp.NewRouter(cfg, sessions, plants, location.MockProvider{})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
