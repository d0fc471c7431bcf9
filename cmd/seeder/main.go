// cmd/seeder/main.go
//
// Development seeder: fills the database with demo orders and dispatch notes
// for a handful of engineers and optionally uploads part images to the image
// store. Never run against production.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/servitech/parts-portal/internal/adapters/catalogue"
	"github.com/servitech/parts-portal/internal/adapters/db"
	"github.com/servitech/parts-portal/internal/adapters/storage"
	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
	"github.com/servitech/parts-portal/internal/pkg/config"
	"github.com/servitech/parts-portal/internal/pkg/logger"
)

func main() {
	var (
		engineers = flag.String("engineers", "j.smith,k.jones", "comma-separated engineer usernames to seed")
		imagesDir = flag.String("images", "", "directory of part images to upload (optional)")
		wipe      = flag.Bool("wipe", false, "truncate order and dispatch tables first")
	)
	flag.Parse()

	slogger := logger.SetupLogger("debug", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction() {
		slogger.Error("refusing to seed a production environment")
		os.Exit(1)
	}

	ctx := context.Background()

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConnections: 5,
		MinConnections: 1,
		ConnectTimeout: 10 * time.Second,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	cat, err := catalogue.NewLoader(slogger).LoadFile(cfg.Catalogue.CSVPath, cfg.Catalogue.HiddenParts)
	if err != nil {
		slogger.Error("failed to load catalogue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *wipe {
		slogger.Info("truncating order and dispatch tables")
		for _, table := range []string{"dispatch_items", "dispatch_notes", "order_items", "orders"} {
			if _, err := database.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
				slogger.Error("failed to truncate table",
					slog.String("table", table),
					slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
	}

	orderRepo := db.NewOrderRepository(database, slogger)
	dispatchRepo := db.NewDispatchRepository(database, slogger)

	for _, username := range strings.Split(*engineers, ",") {
		username = strings.TrimSpace(username)
		if username == "" {
			continue
		}
		email := username + domain.EmailDomain
		if err := seedEngineer(ctx, database, orderRepo, dispatchRepo, cat, email); err != nil {
			slogger.Error("failed to seed engineer",
				slog.String("engineer", email),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		slogger.Info("engineer seeded", slog.String("engineer", email))
	}

	if *imagesDir != "" {
		if err := uploadImages(ctx, cfg, *imagesDir, slogger); err != nil {
			slogger.Error("failed to upload images", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	slogger.Info("seeding complete")
}

// seedEngineer writes two orders and two dispatch notes: one order fully
// dispatched a while back, one recent order partially dispatched with a line
// on back order.
func seedEngineer(
	ctx context.Context,
	database *db.Database,
	orders ports.OrderRepository,
	dispatches ports.DispatchRepository,
	cat *domain.Catalogue,
	email string,
) error {
	parts := cat.Parts()
	if len(parts) < 3 {
		return fmt.Errorf("catalogue too small to seed demo data: %d parts", len(parts))
	}

	old := &domain.Order{
		EngineerEmail: email,
		Kind:          domain.OrderKindParts,
		Comments:      "Van restock",
		Items: []domain.OrderItem{
			{PartNumber: parts[0].PartNumber, Description: parts[0].Description, Quantity: 2},
			{PartNumber: parts[1].PartNumber, Description: parts[1].Description, Quantity: 1},
		},
	}
	if err := orders.Save(ctx, old); err != nil {
		return fmt.Errorf("failed to save old order: %w", err)
	}
	if err := backdate(ctx, database, "orders", old.ID.String(), 20*24*time.Hour); err != nil {
		return err
	}

	recent := &domain.Order{
		EngineerEmail: email,
		Kind:          domain.OrderKindParts,
		Comments:      "Site visit next week",
		Items: []domain.OrderItem{
			{PartNumber: parts[1].PartNumber, Description: parts[1].Description, Quantity: 4},
			{PartNumber: parts[2].PartNumber, Description: parts[2].Description, Quantity: 1, BackOrder: true},
		},
	}
	if err := orders.Save(ctx, recent); err != nil {
		return fmt.Errorf("failed to save recent order: %w", err)
	}

	// mark the old order fully dispatched and the recent one partially
	if _, err := database.Exec(ctx,
		`UPDATE order_items SET quantity_sent = quantity WHERE order_id = $1`, old.ID); err != nil {
		return fmt.Errorf("failed to mark old order dispatched: %w", err)
	}
	if _, err := database.Exec(ctx,
		`UPDATE order_items SET quantity_sent = 2 WHERE order_id = $1 AND part_number = $2`,
		recent.ID, parts[1].PartNumber); err != nil {
		return fmt.Errorf("failed to mark recent order dispatched: %w", err)
	}

	notes := []*domain.DispatchNote{
		{
			EngineerEmail: email,
			PickerName:    "Stores",
			CreatedAt:     time.Now().Add(-19 * 24 * time.Hour),
			Items: []domain.DispatchItem{
				{PartNumber: parts[0].PartNumber, Description: parts[0].Description, QuantitySent: 2},
				{PartNumber: parts[1].PartNumber, Description: parts[1].Description, QuantitySent: 1},
			},
		},
		{
			EngineerEmail: email,
			PickerName:    "Stores",
			CreatedAt:     time.Now().Add(-24 * time.Hour),
			Items: []domain.DispatchItem{
				{PartNumber: parts[1].PartNumber, Description: parts[1].Description, QuantitySent: 2},
			},
		},
	}
	for _, note := range notes {
		if err := dispatches.SaveNote(ctx, note); err != nil {
			return fmt.Errorf("failed to save dispatch note: %w", err)
		}
	}

	return nil
}

func backdate(ctx context.Context, database *db.Database, table, id string, age time.Duration) error {
	_, err := database.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET created_at = NOW() - $1::interval WHERE id = $2`, table),
		age.String(), id)
	if err != nil {
		return fmt.Errorf("failed to backdate %s row: %w", table, err)
	}
	return nil
}

// uploadImages pushes every .png in dir to the image store under the part's
// image key. The filename stem is treated as the part number.
func uploadImages(ctx context.Context, cfg *config.Config, dir string, slogger *slog.Logger) error {
	images, err := storage.NewImageStore(ctx, &storage.S3Config{
		Region:          cfg.AWS.Region,
		Bucket:          cfg.AWS.S3Bucket,
		KeyPrefix:       cfg.AWS.S3KeyPrefix,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
		Endpoint:        cfg.AWS.S3Endpoint,
		UsePathStyle:    cfg.AWS.UsePathStyle,
	}, slogger)
	if err != nil {
		return fmt.Errorf("failed to initialize image store: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read image directory: %w", err)
	}

	var uploaded int
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}

		partNumber := domain.NormalizePartNumber(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		key := catalogue.ImageKey(partNumber)

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", entry.Name(), err)
		}
		err = images.Upload(ctx, key, f, "image/png")
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", entry.Name(), err)
		}
		uploaded++
	}

	slogger.Info("images uploaded", slog.Int("count", uploaded))
	return nil
}
