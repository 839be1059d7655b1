// cmd/migrate/main.go
package main

import (
	"card-rewards/internal/app"
	"card-rewards/internal/config"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// migrate [up|down|status], по умолчанию up.
func main() {
	dir := flag.String("dir", "migrations", "каталог с миграциями")
	flag.Parse()

	cfg := config.MustLoad()
	app.SetupLogger(cfg)

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	db, err := sql.Open("pgx", cfg.DBConn)
	if err != nil {
		slog.Error("Не удалось открыть БД", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrationsDir, err := filepath.Abs(*dir)
	if err != nil {
		slog.Error("Неверный каталог миграций", "error", err)
		os.Exit(1)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("Не удалось выбрать диалект", "error", err)
		os.Exit(1)
	}

	slog.Info("Применяем миграции", "dir", migrationsDir, "command", command)
	if err := goose.Run(command, db, migrationsDir); err != nil {
		slog.Error("Миграции завершились с ошибкой", "error", err)
		os.Exit(1)
	}
	slog.Info("✅ Готово")
}
