package main

import (
	"flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/algonotes/backend/config"
)

var configPath string

// rootCmd algonotes 命令入口
var rootCmd = &cobra.Command{
	Use:   "algonotes",
	Short: "Algorithm exam study-guide backend",
	Long: `algonotes serves chapters, topics, tags and study plans for algorithm exam preparation.

Available subcommands:
  serve         - Start the HTTP API server
  seed          - Rebuild all study content from the built-in catalog
  hash-password - Print a bcrypt hash for admin.password_hash`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			config.SetPath(configPath)
		}
	},
}

func init() {
	// 初始化 klog，-v 等参数挂到根命令上
	klog.InitFlags(nil)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default: $CONFIG_PATH or config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(hashPasswordCmd)
}

func main() {
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}
