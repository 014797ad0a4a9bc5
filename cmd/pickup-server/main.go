package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jcmexdev/saltyeast-pickup/internal/catalog"
	catalogsqlite "github.com/jcmexdev/saltyeast-pickup/internal/catalog/sqlite"
	"github.com/jcmexdev/saltyeast-pickup/internal/httpx"
	"github.com/jcmexdev/saltyeast-pickup/internal/order"
	ordersqlite "github.com/jcmexdev/saltyeast-pickup/internal/order/sqlite"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/cache"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/config"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/sqlitedb"
	"github.com/jcmexdev/saltyeast-pickup/internal/pkg/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.InitLogger()

	cfg := config.LoadServer()

	shutdown, err := telemetry.SetupTracer(ctx, "pickup-server")
	if err != nil {
		log.Fatalf("tracer setup failed: %v", err)
	}
	defer shutdown(context.Background())

	db, err := sqlitedb.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("database open failed: %v", err)
	}
	defer db.Close()

	catalogStore, err := catalogsqlite.NewStore(db)
	if err != nil {
		log.Fatalf("catalog store init failed: %v", err)
	}

	orderRepo, err := ordersqlite.NewRepository(db)
	if err != nil {
		log.Fatalf("order repository init failed: %v", err)
	}

	var catalogCache cache.Cache
	if cfg.RedisAddr != "" {
		catalogCache = cache.NewRedisCache(cfg.RedisAddr, "pickup")
	} else {
		catalogCache = cache.NewMemoryCache("pickup")
	}
	cachedCatalog := catalog.NewCachedStore(catalogStore, catalogCache, cfg.CatalogCacheTTL)

	orderService := order.NewService(orderRepo, cachedCatalog)

	handler := httpx.NewHandler(cachedCatalog, orderService)
	router := httpx.NewRouter(handler)

	log.Printf("pickup server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
