package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarpushin/twinstep/internal/config"
	"github.com/mkarpushin/twinstep/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeLevels string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the twinstep SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own play session over the shared catalog.
Completions are stored per-server (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.twinstep/host_key

Examples:
  twinstep serve                           # Listen on :23234 with auto-generated key
  twinstep serve --ssh :2222               # Listen on port 2222
  twinstep serve --host-key ./my_host_key  # Use specific host key
  twinstep serve --levels ./my-levels/     # Serve a custom level pack

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeLevels, "levels", "", "Directory of YAML level files (builtin catalog if empty)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	catalog, err := loadCatalog(flagServeLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		gameCfg.Timing.TickRate = flagFPS
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, catalog, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting twinstep SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
