package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	staticcatalog "zooverse/internal/adapter/catalog/static"
	httpadapter "zooverse/internal/adapter/http"
	metricsinmem "zooverse/internal/adapter/metrics/inmemory"
	notifyinmem "zooverse/internal/adapter/notify/inmemory"
	gormrepo "zooverse/internal/adapter/repo/gorm"
	memoryrepo "zooverse/internal/adapter/repo/memory"
	"zooverse/internal/app/game"
	"zooverse/internal/app/ports"
	"zooverse/internal/app/sim"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	saveRepo, journalRepo := mustBuildRepos()

	sink := notifyinmem.NewSink()
	kpiRecorder := metricsinmem.NewRecorder()
	catalog := staticcatalog.Provider{Root: envOr("ZOO_CATALOG_DIR", "./catalog")}

	cfg := simConfigFromEnv()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	loop := sim.New(cfg, sim.Deps{
		Saves:    saveRepo,
		Journal:  journalRepo,
		Notifier: sink,
		Metrics:  kpiRecorder,
		Rand:     rng,
		Now:      time.Now,
	})

	uc := &game.UseCase{
		Loop:     loop,
		Saves:    saveRepo,
		Journal:  journalRepo,
		Notifier: sink,
		Confirm:  httpadapter.RequestConfirmer{},
		Names:    httpadapter.RequestNamePrompter{},
		Catalog:  catalog,
		Metrics:  kpiRecorder,
		Rand:     rng,
		Now:      time.Now,
		Slot:     cfg.Slot,
	}

	h := httpadapter.Handler{
		Game:    uc,
		Journal: journalRepo,
		Slot:    cfg.Slot,
		Notes:   sink,
		KPI:     kpiRecorder,
	}

	addr := envOr("ZOO_LISTEN_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("zooverse server listening on %s (slot %q)", addr, cfg.Slot)
	s.Spin()
}

func mustBuildRepos() (ports.SaveRepository, ports.JournalRepository) {
	dsn := strings.TrimSpace(os.Getenv("ZOOVERSE_DB_DSN"))
	if dsn == "" {
		log.Println("ZOOVERSE_DB_DSN not set, using in-memory persistence")
		store := memoryrepo.NewStore()
		return memoryrepo.NewSaveRepo(store), memoryrepo.NewJournalRepo(store)
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	return gormrepo.NewSaveRepo(db), gormrepo.NewJournalRepo(db)
}

func simConfigFromEnv() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.IncomeEvery = secondsEnv("ZOO_INCOME_SECONDS", cfg.IncomeEvery)
	cfg.DecayEvery = secondsEnv("ZOO_DECAY_SECONDS", cfg.DecayEvery)
	cfg.EventEvery = secondsEnv("ZOO_EVENT_SECONDS", cfg.EventEvery)
	cfg.WeatherEvery = secondsEnv("ZOO_WEATHER_SECONDS", cfg.WeatherEvery)
	cfg.AutosaveEvery = secondsEnv("ZOO_AUTOSAVE_SECONDS", cfg.AutosaveEvery)
	cfg.Slot = envOr("ZOO_SAVE_SLOT", cfg.Slot)
	return cfg
}

func secondsEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
