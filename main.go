package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/cdmx-opendata/wifi-points-api/internal/config"
	"github.com/cdmx-opendata/wifi-points-api/internal/db"
	"github.com/cdmx-opendata/wifi-points-api/internal/graph"
	"github.com/cdmx-opendata/wifi-points-api/internal/middleware"
	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
	"github.com/cdmx-opendata/wifi-points-api/internal/wifiimport"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "WiFi points API is up! Query console at /graphql")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load("wifi.yaml")
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Connected to database")

	if err := wifi.Init(gdb); err != nil {
		log.Fatal("Failed to migrate wifi tables: ", err)
	}

	// One-shot bulk load; the import_control flag makes restarts a no-op.
	// Must finish (or skip) before the server starts taking queries.
	res, err := wifiimport.Run(gdb, wifiimport.Config{
		CSVPath:   cfg.CSVPath,
		BatchSize: cfg.BatchSize,
	})
	if err != nil {
		log.Fatal("Bulk import failed: ", err)
	}
	if !res.Skipped {
		log.Printf("Bulk import done: %d points, %d rows rejected", res.Imported, res.Rejected)
	}

	svc := wifi.NewService(gdb)
	gql, err := graph.NewHandler(svc)
	if err != nil {
		log.Fatal("Failed to build GraphQL schema: ", err)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Get("/", RootHandler)
	r.Handle("/graphql", gql)

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
