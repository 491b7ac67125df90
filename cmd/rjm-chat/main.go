package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/assist"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/config"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/logger"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/tracing"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/site"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/storage"
)

var (
	configPath = flag.String("config", "configs/rjm-admin.json", "config file path")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	if _, closer, err := tracing.InitTracer(cfg.App.Name, cfg.Jaeger.Endpoint, cfg.Jaeger.Sampler); err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}

	kv, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open storage backend: %v", err)
	}

	ctx := context.Background()
	store := site.New(ctx, kv, log)
	gateway := assist.New(cfg.Assist, log)

	fmt.Println("Halo Bosku! Ada yang bisa saya bantu carikan mobil? (ketik /quit untuk keluar)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" {
			break
		}
		if line == "" {
			continue
		}

		// one stateless request per message; the gateway refuses a
		// second message while this one is pending
		answer := gateway.Recommend(ctx, line, store.Cars())
		fmt.Println(answer)
	}
}
