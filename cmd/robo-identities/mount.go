package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	robofuse "github.com/systemshift/robo-identities/internal/fuse"
)

var (
	mountOpts      avatarFlags
	mountAccessLog string
	mountDebug     bool
)

func init() {
	rootCmd.AddCommand(mountCmd)
	mountOpts.register(mountCmd)
	mountCmd.Flags().StringVar(&mountAccessLog, "access-log", "", "Append a JSONL record of every file read to FILE")
	mountCmd.Flags().BoolVar(&mountDebug, "debug", false, "Log FUSE requests")
}

var mountCmd = &cobra.Command{
	Use:   "mount <dir>",
	Short: "Serve avatars as a read-only filesystem",
	Long: `Mount a read-only filesystem at dir. Reading <dir>/<seed>/avatar.png
renders the avatar for <seed>; avatar.b64, avatar.cid, nickname and
parts.json sit next to it.`,
	Args: cobra.ExactArgs(1),
	RunE: runMount,
}

func runMount(cmd *cobra.Command, args []string) error {
	mountpoint := args[0]
	opts, err := mountOpts.options(nil)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(mountpoint, 0755); err != nil {
		return fmt.Errorf("create mountpoint: %w", err)
	}

	var accessLog *robofuse.AccessLog
	if mountAccessLog != "" {
		accessLog = robofuse.NewAccessLog(mountAccessLog)
	}

	log.Printf("robo-identities: mounting at %s (assets %s)", mountpoint, opts.Assets.Root())
	server, err := robofuse.MountFS(mountpoint, &robofuse.Renderer{Options: opts}, accessLog, mountDebug)
	if err != nil {
		return fmt.Errorf("mount: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-done
		log.Println("robo-identities: shutting down...")
		server.Unmount()
	}()

	log.Printf("robo-identities: ready (pid %d)", os.Getpid())
	server.Wait()
	log.Println("robo-identities: stopped")
	return nil
}
