package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/importer"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/infrastructure"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis not reachable, persistence disabled for this run", "addr", cfg.RedisAddr, "error", err)
	}
	store := repository.NewStore(rdb)

	registry := render.DefaultRegistry()
	editor := usecase.NewEditor()
	session := usecase.NewSession(registry, "classic")

	// resume where the last session left off
	if rec, ok := store.LoadRecord(ctx); ok {
		editor.Replace(rec)
		slog.Info("restored record", "name", rec.PersonalInfo.Name)
	}

	autosaver := usecase.NewAutosaver(store, cfg.AutosaveWindow)
	editor.OnChange(autosaver.Notify)

	imp := importer.NewImporter(store)
	pdf := infrastructure.NewPDFRenderer(cfg.ChromePath)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	h := httpadapter.NewHandler(editor, session, imp, registry, pdf, store)
	h.Register(app)

	go func() {
		slog.Info("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	autosaver.Flush()
	autosaver.Stop()
	if err := app.Shutdown(); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	_ = rdb.Close()
}
