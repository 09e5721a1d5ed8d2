package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"hrmclient/internal/hrmstest"
)

func main() {
	addr := os.Getenv("HRMS_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := hrmstest.NewServer()

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Mount("/api", srv.Router())

	slog.Info("hrmsd listening", "addr", addr,
		"admin", hrmstest.SeedAdminEmail, "employee", hrmstest.SeedEmployeeEmail)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
