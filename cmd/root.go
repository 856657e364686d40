package cmd

import (
	"fmt"
	"log"
	"os"

	"backend-games/pkg/database"
	"backend-games/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "backend-games",
	Short: "Board game reviews API",
	Long: `Board game reviews API: categories, reviews, comments and users on PostgreSQL.

Commands:
  serve     - Start the HTTP server
  migrate   - Apply or roll back the schema
  seed      - Load a bundled dataset`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".env", "Path to the .env config file")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// runtime holds what every command needs: config, logger and a database pool.
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     *database.DB
}

func bootstrap() (*runtime, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		logger.Sync()
		return nil, err
	}

	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("database", config.Database.Name),
	)

	return &runtime{config: config, logger: logger, db: db}, nil
}

func (rt *runtime) close() {
	rt.db.Close()
	rt.logger.Sync()
}
