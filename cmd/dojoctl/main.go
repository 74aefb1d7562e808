// cmd/dojoctl/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"dojo_path/internal/config"
	"dojo_path/internal/repository"
	"dojo_path/internal/seed"
)

var (
	configDir   string
	catalogFile string
)

var rootCmd = &cobra.Command{
	Use:           "dojoctl",
	Short:         "DojoPath 管理コマンド",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{TimeFormat: time.Kitchen})))
		return config.LoadConfig(configDir)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "テーブルを作成・更新します",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "カタログ YAML から種目・カテゴリ・技を投入します",
	RunE:  runSeed,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "config.yaml のあるディレクトリ")
	seedCmd.Flags().StringVarP(&catalogFile, "file", "f", "configs/catalog.yaml", "カタログ YAML のパス")
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openDB() (*gorm.DB, func(), error) {
	db, err := repository.NewDB(config.Cfg.Database.URL, slog.Default())
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return db, func() { sqlDB.Close() }, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, closeDB, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	if err := repository.AutoMigrate(db); err != nil {
		return err
	}
	slog.Info("Migration completed", slog.Int("tables", len(repository.AllModels())))
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	file, err := seed.LoadCatalogFile(catalogFile)
	if err != nil {
		return err
	}

	db, closeDB, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := seed.ApplyCatalog(cmd.Context(), db, repository.NewGormCatalogRepository(), file)
	if err != nil {
		return err
	}
	slog.Info("Catalog seeded",
		slog.String("file", catalogFile),
		slog.Int("disciplines", stats.Disciplines),
		slog.Int("categories", stats.Categories),
		slog.Int("techniques", stats.Techniques),
	)
	return nil
}
