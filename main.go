// ABOUTME: Entry point for the vCard importer CLI
// ABOUTME: Routes to import and list commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/harperreed/vimport/cli"
	"github.com/harperreed/vimport/db"
	"github.com/joho/godotenv"
)

const version = "0.1.0"

func main() {
	// Optional .env for VIMPORT_* configuration
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "Database path (default: ~/.local/share/vimport/contacts.db)")
	initOnly := flag.Bool("init", false, "Initialize database and exit")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("vimport version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	database, err := db.OpenDatabase(getDatabasePath(*dbPath))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if *initOnly {
		log.Println("Database initialized successfully")
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "import":
		if err := cli.ImportCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	case "list":
		if err := cli.ListRecordsCommand(database, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func getDatabasePath(dbPath string) string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("VIMPORT_DB_PATH"); env != "" {
		return env
	}
	return filepath.Join(xdg.DataHome, "vimport", "contacts.db")
}

func printUsage() {
	fmt.Printf(`vimport v%s - vCard importer for the contact database

USAGE:
  vimport [global flags] <command> [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       Database path (default: ~/.local/share/vimport/contacts.db)
  --init                 Initialize database and exit

COMMANDS:
  vimport import [flags] <file.vcf> [more files]   Import vCard 3.0 files
    --skip-pattern <re>     Drop unhandled properties whose key matches
    --labels <path>         JSON label translation table
    --dry-run               Parse and report without committing

  vimport list [flags]    List contact records
    --query <text>          Filter by name or email substring
    --limit <n>             Max results (default: 50)

ENVIRONMENT (also read from .env):
  VIMPORT_DB_PATH         Database path
  VIMPORT_SKIP_PATTERN    Default --skip-pattern
  VIMPORT_LABELS          Default --labels

EXAMPLES:
  # Import a vCard export, dropping vendor extensions
  vimport import --skip-pattern '^x-' contacts.vcf

  # See what an import would do
  vimport import --dry-run contacts.vcf

  # List everyone at Acme
  vimport list --query acme
`, version)
}
