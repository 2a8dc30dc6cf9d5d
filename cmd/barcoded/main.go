package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"

	"example.com/barcoded/internal/barcode"
	"example.com/barcoded/internal/common"
	"example.com/barcoded/internal/server"
	"example.com/barcoded/internal/storage"
)

type logConfig struct {
	Directory  string `yaml:"directory"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	MaxBackups int    `yaml:"maxBackups"`
	Compress   bool   `yaml:"compress"`
}

type barcodeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	QRSize int `yaml:"qrSize"`
}

type config struct {
	Port       int           `yaml:"port"`
	StorageDir string        `yaml:"storageDir"`
	Barcode    barcodeConfig `yaml:"barcode"`
	Logs       logConfig     `yaml:"logs"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file is fine; everything has a default.
			return applyDefaults(cfg), nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	return applyDefaults(cfg), nil
}

func applyDefaults(cfg config) config {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = filepath.Join(".", "generated")
	}
	if cfg.Barcode.Width <= 0 {
		cfg.Barcode.Width = 400
	}
	if cfg.Barcode.Height <= 0 {
		cfg.Barcode.Height = 120
	}
	if cfg.Barcode.QRSize <= 0 {
		cfg.Barcode.QRSize = 256
	}
	if cfg.Logs.Directory == "" {
		cfg.Logs.Directory = filepath.Join(cfg.StorageDir, "logs")
	}
	if cfg.Logs.MaxSizeMB <= 0 {
		cfg.Logs.MaxSizeMB = 25
	}
	if cfg.Logs.MaxAgeDays <= 0 {
		cfg.Logs.MaxAgeDays = 7
	}
	if cfg.Logs.MaxBackups <= 0 {
		cfg.Logs.MaxBackups = 5
	}
	return cfg
}

func setupLogging(cfg config) error {
	if err := os.MkdirAll(cfg.Logs.Directory, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile := filepath.Join(cfg.Logs.Directory, "barcoded.log")
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    cfg.Logs.MaxSizeMB,
		MaxAge:     cfg.Logs.MaxAgeDays,
		MaxBackups: cfg.Logs.MaxBackups,
		Compress:   cfg.Logs.Compress,
	}
	sink := io.MultiWriter(os.Stdout, rotator)
	log.SetOutput(sink)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	common.SetOutput(sink)
	return nil
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	addr := flag.String("addr", "", "listen address (overrides config port)")
	readTimeout := flag.Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 60*time.Second, "HTTP write timeout")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := setupLogging(cfg); err != nil {
		log.Fatalf("setup logging: %v", err)
	}

	store, err := storage.NewDir(filepath.Join(cfg.StorageDir, "barcodes"))
	if err != nil {
		log.Fatalf("storage dir: %v", err)
	}

	srv, err := server.NewServer(server.Options{
		Store: store,
		Renderer: barcode.Code128{
			Width:  cfg.Barcode.Width,
			Height: cfg.Barcode.Height,
		},
		QRSize: cfg.Barcode.QRSize,
	})
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	listenAddr := fmt.Sprintf(":%d", cfg.Port)
	if *addr != "" {
		listenAddr = *addr
	}
	httpServer := &http.Server{
		Addr:         listenAddr,
		Handler:      server.NewRouter(srv),
		ReadTimeout:  *readTimeout,
		WriteTimeout: *writeTimeout,
	}

	log.Printf("barcoded listening on %s, artifacts in %s", listenAddr, store.Root())
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("barcoded stopped")
}
