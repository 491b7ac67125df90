package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/account"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/backup"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/config"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/logger"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/common/tracing"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/content"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/fleet"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/site"
	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/storage"
)

var (
	configPath = flag.String("config", "configs/rjm-admin.json", "config file path")
	mode       = flag.String("mode", "", `operation: seed | overview | list | add-car | delete-car | add-article | delete-article | contact | add-admin | delete-admin | login-check | export | import | reset`)

	id       = flag.String("id", "", "record id (delete-car, delete-article, delete-admin)")
	brand    = flag.String("brand", "", "car brand")
	name     = flag.String("name", "", "car model name / admin display name")
	price    = flag.Int("price", 0, "car price per day (IDR)")
	seats    = flag.Int("seats", 7, "car seat count")
	category = flag.String("category", string(fleet.CategoryMPV), "car category")
	image    = flag.String("image", "", "image URL")
	title    = flag.String("title", "", "article title")
	body     = flag.String("content", "", "article content")
	email    = flag.String("email", "", "admin email")
	password = flag.String("password", "", "admin password")
	phone    = flag.String("phone", "", "contact phone")
	address  = flag.String("address", "", "contact address")
	token    = flag.String("token", "", "backup token (import)")
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

	// tracing failure must not block an admin operation
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

	// import and reset write storage directly; the store is built
	// afterwards so it picks the new slot contents up.
	switch *mode {
	case "import":
		if err := backup.Import(ctx, kv, *token); err != nil {
			log.Fatalf("import failed: %v", err)
		}
		log.Info("backup imported")
	case "reset":
		if err := backup.Reset(ctx, kv); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		log.Info("storage cleared, next load reseeds defaults")
	}

	store := site.New(ctx, kv, log)
	bo := site.NewBackoffice(store)

	switch *mode {
	case "seed", "import", "reset":
		units, articles, users := bo.Overview()
		log.Infof("state ready: %d units, %d articles, %d users", units, articles, users)

	case "overview":
		units, articles, users := bo.Overview()
		fmt.Printf("units: %d\narticles: %d\nusers: %d\n", units, articles, users)

	case "list":
		for _, c := range store.Cars() {
			fmt.Printf("%-10s %-8s %-16s %-12s Rp%d/hari\n", c.ID, c.Brand, c.Name, c.Category, c.PricePerDay)
		}

	case "add-car":
		car, err := bo.AddCar(ctx, fleet.Car{
			Brand:        *brand,
			Name:         *name,
			Category:     fleet.Category(*category),
			PricePerDay:  *price,
			Seats:        *seats,
			Image:        *image,
			Transmission: fleet.TransmissionAutomatic,
		})
		if err != nil {
			log.Fatalf("add-car: %v", err)
		}
		log.Infof("car added: id=%s %s %s", car.ID, car.Brand, car.Name)

	case "delete-car":
		bo.DeleteCar(ctx, *id)
		log.Infof("car deleted (if present): %s", *id)

	case "add-article":
		art := bo.AddArticle(ctx, content.Article{
			Title:   *title,
			Content: *body,
			Image:   *image,
		})
		log.Infof("article added: id=%s %q", art.ID, art.Title)

	case "delete-article":
		bo.DeleteArticle(ctx, *id)
		log.Infof("article deleted (if present): %s", *id)

	case "contact":
		c := store.Contact()
		if *phone != "" {
			c.Phone = *phone
		}
		if *email != "" {
			c.Email = *email
		}
		if *address != "" {
			c.Address = *address
		}
		bo.SetContact(ctx, c)
		log.Info("contact info updated")

	case "add-admin":
		u := bo.AddUser(ctx, account.User{
			Email:    *email,
			Name:     *name,
			Password: *password,
		})
		log.Infof("admin added: id=%s %s", u.ID, u.Email)

	case "delete-admin":
		if err := bo.DeleteUser(ctx, *id); err != nil {
			log.Fatalf("delete-admin: %v", err)
		}
		log.Infof("admin deleted (if present): %s", *id)

	case "login-check":
		u, err := store.Login(ctx, *email, *password)
		if err != nil {
			log.Fatalf("login failed: %v", err)
		}
		log.Infof("login ok: %s (%s)", u.Name, u.Role)

	case "export":
		t, err := backup.Export(ctx, kv)
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		fmt.Println(t)

	default:
		fmt.Fprintln(os.Stderr, "error: unknown or missing -mode")
		flag.Usage()
		os.Exit(2)
	}
}
