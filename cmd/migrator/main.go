package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	goose "github.com/pressly/goose/v3"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/storage/postgresdb"
	"github.com/Alexandr-Snisarenko/subnet-failban/migrations"
)

var ErrArgRequired = errors.New("arg is required for this command")

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"migrator - утилита для управления миграциями БД сервиса subnet-failban (на основе goose)\n\n"+
				"вызов: migrator -config=<config file name> [-dir=<migration dir>] -command=<migration command> [-arg=<version>]\n\n"+
				"Без -dir используются миграции, встроенные в бинарник.\n\n"+
				"Примеры:\n"+
				"  migrator -config=config.yaml -command up\n"+
				"  migrator -dir=./migrations -command up-to -arg 1\n"+
				"  migrator -command status\n\n"+
				"Доступные флаги:\n")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		configFile    string
		migrationsDir string
		command       string
		arg           string
	)

	flag.StringVar(&configFile, "config", "config.yaml", "path to config file")
	flag.StringVar(&migrationsDir, "dir", "", "path to migrations dir (embedded migrations if empty)")
	flag.StringVar(&command, "command", "up", "goose command: up|down|redo|reset|status|version|up-to|down-to")
	flag.StringVar(&arg, "arg", "", "argument for command (version for up-to/down-to)")
	flag.Parse()

	if err := runMigration(configFile, migrationsDir, command, arg); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	fmt.Println("migration completed successfully")
}

func runMigration(configFile, migrationsDir, command, arg string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if migrationsDir == "" {
		goose.SetBaseFS(migrations.FS)
		migrationsDir = "."
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	dbx, err := postgresdb.OpenDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("DB open error: %w", err)
	}
	defer dbx.Close()

	return migrate(dbx.DB, migrationsDir, command, arg)
}

func migrate(db *sql.DB, dir, command, arg string) error {
	var err error

	switch strings.ToLower(command) {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "redo":
		err = goose.Redo(db, dir)
	case "reset":
		err = goose.Reset(db, dir)
	case "status":
		err = goose.Status(db, dir)
	case "version":
		v, verr := goose.GetDBVersion(db)
		if verr != nil {
			return fmt.Errorf("get DB version: %w", verr)
		}
		fmt.Printf("Current version: %d\n", v)
		return nil
	case "up-to", "down-to":
		v, perr := parseVersion(arg)
		if perr != nil {
			return fmt.Errorf("parse version error: %w", perr)
		}
		if strings.ToLower(command) == "up-to" {
			err = goose.UpTo(db, dir, v)
		} else {
			err = goose.DownTo(db, dir, v)
		}
	default:
		return fmt.Errorf("unknown command: %s", command)
	}

	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// Номер версии должен конвертироваться в int64.
func parseVersion(s string) (int64, error) {
	if s == "" {
		return 0, ErrArgRequired
	}
	return strconv.ParseInt(s, 10, 64)
}
