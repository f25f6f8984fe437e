// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-clusters CLI.
// Implements: corpus ingest and listing, clustering runs (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-clusters/internal/corpus"
	"github.com/pdiddy/research-clusters/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the research-clusters CLI.
var rootCmd = &cobra.Command{
	Use:   "research-clusters",
	Short: "Cluster research papers by topic, citations, and metadata",
	Long: `research-clusters groups a corpus of research papers into topical clusters.
Papers come from a YAML corpus file or a local SQLite corpus store; the
citation graph between them can drive community detection or contribute
network features.

Use corpus to build the store and cluster to run k-means, hierarchical,
community, or hybrid clustering over it.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-clusters.yaml or ~/.config/research-clusters/research-clusters.yaml)")
	rootCmd.PersistentFlags().String("db", "", "corpus database path (default: "+corpus.DefaultStorePath+")")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-clusters")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-clusters"))
		}
	}

	viper.SetEnvPrefix("RESEARCH_CLUSTERS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig returns the defaults overlaid with the config file and the
// --db flag.
func appConfig(cmd *cobra.Command) (types.AppConfig, error) {
	cfg := types.AppConfig{
		Store:      types.StoreConfig{Path: corpus.DefaultStorePath},
		Clustering: types.DefaultClusteringConfig(),
	}
	if err := viper.UnmarshalKey("clustering", &cfg.Clustering); err != nil {
		return cfg, fmt.Errorf("reading clustering config: %w", err)
	}
	if p := viper.GetString("store.path"); p != "" {
		cfg.Store.Path = p
	}
	if cmd.Flags().Changed("db") {
		cfg.Store.Path, _ = cmd.Flags().GetString("db")
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
