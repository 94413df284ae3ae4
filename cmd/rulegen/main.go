// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rulegen CLI, which converts a
// tree of Markdown documents into a mirrored tree of rule documents.
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/rulegen/internal/convert"
	"github.com/pdiddy/rulegen/internal/report"
	"github.com/pdiddy/rulegen/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Running it with an input and an output
// path performs the conversion; subcommands cover the auxiliary surfaces.
var rootCmd = &cobra.Command{
	Use:   "rulegen <input> <output>",
	Short: "Convert a Markdown tree into rule documents",
	Long: `rulegen walks a tree of Markdown documents, rewrites intra-tree links to
the rule link scheme, generates a path-derived description for each file,
and writes a mirrored tree of rule documents under a new extension.

The input may be a directory (bulk mode) or a single Markdown file. A
failure on one document is logged and does not stop the run.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := types.Config{
		InputRoot:  args[0],
		OutputRoot: args[1],
		SourceExt:  viper.GetString("source_ext"),
		TargetExt:  viper.GetString("target_ext"),
		Scheme:     viper.GetString("scheme"),
		LinkPrefix: viper.GetString("link_prefix"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res, err := convert.ConvertTree(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if res.HasFailures() {
		log.Warn("some documents failed conversion", "failed", res.Failed, "converted", res.Converted)
	}

	if path := viper.GetString("report"); path != "" {
		if err := report.Write(path, cfg, res); err != nil {
			log.Error("could not write run report", "path", path, "err", err)
		} else {
			log.Info("run report written", "path", path)
		}
	}

	// Per-file failures and the single-file skip path both end the run
	// normally; only bad invocation or an unusable root is fatal.
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rulegen.yaml or ~/.config/rulegen/config.yaml)")

	rootCmd.Flags().String("source-ext", types.DefaultSourceExt, "extension of documents to convert")
	rootCmd.Flags().String("target-ext", types.DefaultTargetExt, "extension of converted documents")
	rootCmd.Flags().String("scheme", types.DefaultScheme, "link scheme literal for rewritten targets")
	rootCmd.Flags().String("link-prefix", "", "output-link prefix (default: the output path)")
	rootCmd.Flags().String("report", "", "write a YAML run manifest to this path")

	viper.SetDefault("source_ext", types.DefaultSourceExt)
	viper.SetDefault("target_ext", types.DefaultTargetExt)
	viper.SetDefault("scheme", types.DefaultScheme)

	must(viper.BindPFlag("source_ext", rootCmd.Flags().Lookup("source-ext")))
	must(viper.BindPFlag("target_ext", rootCmd.Flags().Lookup("target-ext")))
	must(viper.BindPFlag("scheme", rootCmd.Flags().Lookup("scheme")))
	must(viper.BindPFlag("link_prefix", rootCmd.Flags().Lookup("link-prefix")))
	must(viper.BindPFlag("report", rootCmd.Flags().Lookup("report")))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rulegen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rulegen"))
		}
	}

	viper.SetEnvPrefix("RULEGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Info("using config file", "path", viper.ConfigFileUsed())
	}
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
