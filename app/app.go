package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"inventario-activos/app/controller"
	"inventario-activos/app/router"
	"inventario-activos/db"
	"inventario-activos/repository"
	"inventario-activos/service"
)

// Initialize initializes the application
func Initialize() error {
	// Get credentials path from environment variable
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}

	// Token provider and authorized HTTP client
	tokens, err := service.NewGoogleTokenProvider(credentialsPath,
		service.ScopeSpreadsheets, service.ScopeGmailSend, service.ScopeDrive)
	if err != nil {
		return err
	}
	client := service.NewClient(tokens)

	// Sheets access
	sheetsCfg, err := service.SheetsConfigFromEnv()
	if err != nil {
		return err
	}
	sheets := service.NewSheetsService(client, sheetsCfg)
	history := service.NewHistoryLogService(sheets)

	// Mail notifications are optional
	var mail *service.MailService
	if mailCfg, ok := service.MailConfigFromEnv(); ok {
		mail = service.NewMailService(client, mailCfg)
	} else {
		log.Printf("⚠️  Mail notifications disabled: MAIL_FROM / MAIL_NOTIFY_TO not set")
	}

	// Core services
	inventory := service.NewInventoryService(sheets, history)
	sales := service.NewSalesService(sheets, history, inventory, mail)
	rooms := service.NewRoomService(sheets)
	export := service.NewExportService(sheets)

	// Drive object store is optional
	var store service.ObjectStore
	if folderID := os.Getenv("DRIVE_FOLDER_ID"); folderID != "" {
		driveStore, err := service.NewDriveObjectStore(context.Background(), credentialsPath, folderID)
		if err != nil {
			return err
		}
		store = driveStore
	} else {
		log.Printf("⚠️  Object store disabled: DRIVE_FOLDER_ID not set")
	}

	// Database mirror is optional
	var mirror *service.MirrorService
	if db.Configured() {
		if err := db.InitDB(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		mirror = service.NewMirrorService(inventory, repository.NewMirrorRepository())
	} else {
		log.Printf("⚠️  Database mirror disabled: DATABASE_URL / DB_HOST not set")
	}

	// Create controllers
	controllers := &router.Controllers{
		Item:  controller.NewItemController(inventory, store),
		Sale:  controller.NewSaleController(sales),
		Room:  controller.NewRoomController(rooms),
		Admin: controller.NewAdminController(mirror, export),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
