package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/keltoummalouki/talenthub/pkg/config"
	"github.com/keltoummalouki/talenthub/pkg/db"
	"github.com/keltoummalouki/talenthub/pkg/server"
	"github.com/keltoummalouki/talenthub/pkg/server/endpoints"
	"github.com/keltoummalouki/talenthub/pkg/token"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the TalentHub application server",
	Long: `Run the TalentHub application server.

Requires the environment variables TALENTHUB_TOKEN_SECRET and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.

With --watch-config the configuration file is re-read whenever it changes.
Page-size limits and other per-request attributes apply to subsequent
requests; the listen address, port and token TTL require a restart.`,
	Run: func(cmd *cobra.Command, args []string) {
		secret, ok := os.LookupEnv("TALENTHUB_TOKEN_SECRET")
		if !ok || secret == "" {
			fmt.Fprintln(os.Stderr, "TALENTHUB_TOKEN_SECRET environment variable is required")
			os.Exit(1)
		}

		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load configuration:", err)
			os.Exit(1)
		}
		if bind, _ := cmd.Flags().GetString("bind-address"); bind != "" {
			cfg.BindAddress = bind
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Port = port
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		if watch, _ := cmd.Flags().GetBool("watch-config"); watch {
			go func() {
				if err := watchConfig(cfg); err != nil {
					log.Printf("Config watch stopped: %v", err)
				}
			}()
		}

		codec := token.NewCodec([]byte(secret), time.Duration(cfg.TokenTTL)*time.Second)

		s := server.NewServer(database, cfg, codec)
		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%d...\n", cfg.BindAddress, cfg.Port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().IntP("port", "p", 0, "server listen port (overrides configuration)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides configuration)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("watch-config", false, "reload the configuration file on change")
}

// watchConfig blocks, reloading the configuration on every change to the
// config file. Editors that replace the file on save remove the watched
// inode, so the path is re-added after a rename or remove event.
func watchConfig(cfg *config.Config) error {
	path := cfg.ConfigFilePath()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}
	log.Printf("Watching %s for configuration changes", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				time.Sleep(100 * time.Millisecond)
				if err := watcher.Add(path); err != nil {
					return err
				}
			} else if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := cfg.Reload(); err != nil {
				log.Printf("Failed to reload configuration: %v", err)
				continue
			}
			log.Println("Configuration reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config watch error: %v", err)
		}
	}
}
