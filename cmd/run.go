package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stripbot/stripbot/internal/config"
	"github.com/stripbot/stripbot/internal/guard"
	"github.com/stripbot/stripbot/internal/router"
	"github.com/stripbot/stripbot/internal/session"
	"github.com/stripbot/stripbot/internal/telegram"
	"github.com/stripbot/stripbot/internal/transport"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to the broker and start polling Telegram",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	devices, err := cfg.ResolveDevices()
	if err != nil {
		return fmt.Errorf("resolving devices: %w", err)
	}
	mode := router.Mode(cfg.EffectiveMode(len(devices)))
	log.Printf("🤖 stripbot starting: %d device(s), %s mode", len(devices), mode)

	pub, err := transport.Connect(transport.Config{
		Broker:   cfg.MQTT.Broker,
		Port:     cfg.MQTT.Port,
		Username: cfg.MQTT.Username,
		Password: cfg.MQTT.Password,
		CAFile:   cfg.MQTT.CAFile,
	})
	if err != nil {
		return err
	}
	defer pub.Close()

	rt := router.New(mode, guard.New(cfg.Telegram.AllowFrom), session.NewStore(), devices, pub)
	ch := telegram.New(cfg.Telegram.Token, rt)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		cancel()
	}()

	return ch.Run(ctx)
}
