// Package cmd provides CLI commands for the inventory tool.
package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Global flags
var (
	cfgFile   string // Config file path
	logLevel  string // Log level
	inputPath string // Machine list path
)

// rootCmd represents the base command. Without a subcommand it generates the inventory.
var rootCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Generate an Ansible inventory for Kubernetes and Slurm from a machine list",
	Long: `inventory reads a tab-separated machine list (name<TAB>address per line),
classifies every machine by role keyword (mgmt, login, gpu, cpu by default)
and writes an Ansible inventory grouping the machines for kubespray
(kube-master, etcd, kube-node) and Slurm (slurm-master, slurm-node).

Examples:
  # Read machine_list.tsv and write ./inventory
  inventory

  # Use another machine list and also write inventory.yml
  inventory -i hosts.tsv -f ini,yaml

  # Load settings from a config file
  inventory -c inventory.yaml`,
	Version: Version,
	Args:    cobra.NoArgs,
	Run:     runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "machine list path (default machine_list.tsv)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// GetConfigFile returns the config file path from command line flag.
func GetConfigFile() string {
	return cfgFile
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}
