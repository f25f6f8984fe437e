// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-clusters/internal/corpus"
	"github.com/pdiddy/research-clusters/internal/engine"
	"github.com/pdiddy/research-clusters/pkg/types"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster papers from a corpus file or the corpus store",
	Long: `Cluster reads papers and citations from --input (a YAML corpus file) or
from the corpus store, runs the selected algorithm, and prints the clusters
as a table, JSON, or YAML.

Flags override values from the config file's clustering section.`,
	RunE: runCluster,
}

func runCluster(cmd *cobra.Command, args []string) error {
	app, err := appConfig(cmd)
	if err != nil {
		return err
	}
	cfg := app.Clustering
	applyClusterFlags(cmd, &cfg)

	records, graph, err := loadCorpus(cmd, app.Store)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	eng := engine.New(engine.WithOutput(os.Stderr))
	result, err := eng.PerformClustering(ctx, records, graph, cfg)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "":
		corpus.FormatSummary(out, result)
		return nil
	case "json":
		return corpus.WriteResultJSON(out, result)
	case "yaml":
		return corpus.WriteResultYAML(out, result)
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

func loadCorpus(cmd *cobra.Command, storeCfg types.StoreConfig) ([]types.Record, types.Graph, error) {
	if input, _ := cmd.Flags().GetString("input"); input != "" {
		f, err := corpus.ReadFile(input)
		if err != nil {
			return nil, types.Graph{}, err
		}
		return f.Records, f.Graph(), nil
	}

	store, err := corpus.NewStore(storeCfg)
	if err != nil {
		return nil, types.Graph{}, err
	}
	defer store.Close()

	records, err := store.Records(cmd.Context())
	if err != nil {
		return nil, types.Graph{}, err
	}
	graph, err := store.Graph(cmd.Context())
	if err != nil {
		return nil, types.Graph{}, err
	}
	return records, graph, nil
}

func applyClusterFlags(cmd *cobra.Command, cfg *types.ClusteringConfig) {
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		v, _ := flags.GetString("algorithm")
		cfg.Algorithm = types.Algorithm(v)
	}
	if flags.Changed("clusters") {
		cfg.NumClusters, _ = flags.GetInt("clusters")
	}
	if flags.Changed("linkage") {
		v, _ := flags.GetString("linkage")
		cfg.Hierarchical.Linkage = types.Linkage(v)
	}
	if flags.Changed("scaling") {
		v, _ := flags.GetString("scaling")
		cfg.Scaling = types.ScalingMode(v)
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("text-only") {
		if textOnly, _ := flags.GetBool("text-only"); textOnly {
			cfg.Features.Network.Enabled = false
			cfg.Features.Temporal.Enabled = false
			cfg.Features.Categorical.Enabled = false
		}
	}
}

func init() {
	defaults := types.DefaultClusteringConfig()

	clusterCmd.Flags().String("input", "", "YAML corpus file (default: read the corpus store)")
	clusterCmd.Flags().String("algorithm", string(defaults.Algorithm), "algorithm: kmeans, hierarchical, community, hybrid")
	clusterCmd.Flags().Int("clusters", defaults.NumClusters, "number of clusters for kmeans, hierarchical, and hybrid")
	clusterCmd.Flags().String("linkage", string(defaults.Hierarchical.Linkage), "hierarchical linkage: single, complete, average")
	clusterCmd.Flags().String("scaling", string(defaults.Scaling), "feature scaling: zscore or minmax")
	clusterCmd.Flags().Int64("seed", 0, "random seed (0 = seed from the clock)")
	clusterCmd.Flags().Duration("timeout", defaults.Timeout, "cancel the run after this long")
	clusterCmd.Flags().Bool("text-only", false, "use text features only")
	clusterCmd.Flags().String("format", "table", "output format: table, json, or yaml")
	clusterCmd.Flags().String("out", "", "write output to this file instead of stdout")

	rootCmd.AddCommand(clusterCmd)
}
