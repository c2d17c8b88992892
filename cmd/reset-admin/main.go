// Command reset-admin restores the default admin password. It is the
// escape hatch for an operator who has lost both the password and the
// security answer; run it with the API stopped.
package main

import (
	"log"
	"os"
	"path/filepath"

	"hardtrack/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// 2. Open user store
	userStore, err := store.OpenUserStore(filepath.Join(dataDir, "users.json"))
	if err != nil {
		log.Fatalf("Failed to open user store: %v", err)
	}

	// 3. Find admin
	admin, err := userStore.Find(store.DefaultAdminUsername)
	if err != nil {
		log.Fatalf("User %s not found: %v", store.DefaultAdminUsername, err)
	}

	// 4. Hash new password and update
	if err := admin.SetPassword(store.DefaultAdminPassword); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := userStore.Update(*admin); err != nil {
		log.Fatalf("Failed to update password: %v", err)
	}

	log.Printf("Success! Password for %s has been reset to: %s", store.DefaultAdminUsername, store.DefaultAdminPassword)
}
