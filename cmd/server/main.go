package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"geocoin-server/internal/agent"
	"geocoin-server/internal/engine"
	"geocoin-server/internal/infrastructure/storage"
	"geocoin-server/internal/server"
	"geocoin-server/internal/version"
	"geocoin-server/pkg/logger"
	"geocoin-server/pkg/utils"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: дефолты -> окружение -> флаги.
	cfg := engine.NewConfig()
	if err := env.Parse(&cfg); err != nil {
		logger.Log.Fatal("Failed to parse environment config: ", err)
	}

	var seed int64
	var withBot bool
	var noPersist bool
	// Читаем флаг -seed. По умолчанию 0 (значит взять из конфига/случайный).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.BoolVar(&withBot, "bot", false, "Run a wandering bot client (soak testing)")
	flag.BoolVar(&noPersist, "no-persist", false, "Disable snapshot persistence")
	flag.Parse()

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using seed: %d", cfg.Seed)
	}

	logger.Log.Info("Starting Geocoin Carrier...")
	logger.Log.Info(version.String())

	// 2. Инициализация ядра.
	session := engine.NewSession(cfg)

	// Персистентность: открываем хранилище и восстанавливаем снапшот.
	var store *storage.SnapshotStore
	if !noPersist {
		var err error
		store, err = storage.Open(cfg.DataDir)
		if err != nil {
			logger.Log.Fatal("Failed to open snapshot store: ", err)
		}
		session.AttachStore(store)
	}

	session.Start()

	if withBot {
		bot := agent.NewBot("bot_"+utils.GenerateID(), session, cfg.Seed+1)
		go bot.Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(session, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Сначала останавливаем цикл команд: финальный снапшот нельзя снимать,
	// пока сессия может обрабатывать команды от еще живых клиентов.
	session.Stop()

	if store != nil {
		if err := store.Save(session.Snapshot()); err != nil {
			logger.Log.Warn("Failed to save final snapshot: ", err)
		}
		if err := store.Close(); err != nil {
			logger.Log.Warn("Failed to close snapshot store: ", err)
		}
	}

	logger.Log.Info("Done.")
}
