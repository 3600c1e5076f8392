package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	failbanv1 "github.com/Alexandr-Snisarenko/subnet-failban/api/proto/failban/v1"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
	grpcserver "github.com/Alexandr-Snisarenko/subnet-failban/internal/delivery/grpc"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/delivery/grpc/interceptors"
	httpapi "github.com/Alexandr-Snisarenko/subnet-failban/internal/delivery/http"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/logger"
	"github.com/Alexandr-Snisarenko/subnet-failban/internal/version"
)

const shutdownTimeout = 5 * time.Second

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "/etc/subnet-failban/config.yaml", "Path to configuration file")
}

func main() {
	flag.Parse()

	if flag.Arg(0) == "version" {
		version.PrintVersion()
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Контекст с сигналами ОС
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(rootCtx, cfg)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "subnet-failban exited with error: %v\n", err)
		os.Exit(1)
	}
}

func run(rootCtx context.Context, cfg *config.Config) error {
	logg := logger.New(&cfg.Logger)
	logg.Info("logger initialized", "level", cfg.Logger.Level, "workmode", cfg.Database.Workmode)

	// --------- Репозитории и сервисы ---------
	d, err := buildDeps(cfg, logg)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.Close(); err != nil {
			logg.Error("close storages", "error", err)
		}
	}()

	// Подсети из конфига дописываем в репозиторий до первой загрузки
	if err := d.trusted.Seed(rootCtx, cfg.Failban.Trusted); err != nil {
		return fmt.Errorf("seed trusted list: %w", err)
	}
	if err := d.failban.Init(rootCtx); err != nil {
		return fmt.Errorf("failban service init: %w", err)
	}

	// -------- gRPC-сервер --------
	addr := net.JoinHostPort(cfg.Server.Address, fmt.Sprint(cfg.Server.Port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRequestIDInterceptor(),
			interceptors.UnaryLoggingInterceptor(logg),
		),
	}
	if cfg.Server.TLS.Enabled {
		creds, err := credentials.NewServerTLSFromFile(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		if err != nil {
			_ = lis.Close()
			return fmt.Errorf("load TLS credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	grpcSrv := grpc.NewServer(opts...)
	failbanv1.RegisterFailbanServer(grpcSrv, grpcserver.NewServer(d.failban, d.trusted))

	// -------- Admin HTTP API --------
	var adminSrv *httpapi.Server
	if cfg.Server.Admin.Enabled {
		adminAddr := net.JoinHostPort(cfg.Server.Admin.Address, fmt.Sprint(cfg.Server.Admin.Port))
		adminSrv = httpapi.NewServer(adminAddr, cfg.Server.Admin.Secret, d.failban, d.trusted, logg.With("component", "admin"))
	}

	// -------- Запуск серверов и подписчика в горутинах --------
	g, ctx := errgroup.WithContext(rootCtx)

	// Ждём отмены контекста (сигнал или падение другой горутины) и гасим серверы
	g.Go(func() error {
		<-ctx.Done()

		logg.Info("shutting down gRPC server...")
		done := make(chan struct{})
		go func() {
			grpcSrv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			logg.Info("gRPC server stopped gracefully")
		case <-time.After(shutdownTimeout):
			logg.Info("gRPC server force stop")
			grpcSrv.Stop()
		}

		if adminSrv != nil {
			shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := adminSrv.Shutdown(shCtx); err != nil {
				logg.Error("admin API shutdown", "error", err)
			}
		}
		return ctx.Err()
	})

	if d.subscriber != nil {
		g.Go(func() error {
			logg.Info("starting trusted list updates subscriber...")
			return d.subscriber.Start(ctx)
		})
	}

	if adminSrv != nil {
		g.Go(adminSrv.ListenAndServe)
	}

	g.Go(func() error {
		logg.Info("gRPC server listening", "address", addr)
		return grpcSrv.Serve(lis)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error("error from goroutines", "error", err)
		return err
	}

	logg.Info("application stopped gracefully")
	return nil
}
