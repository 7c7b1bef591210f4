// printsim runs the printer arm simulation core from the command line:
// octree and voxel density reports for OFF models, and headless runs of the
// path-following arm.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/printsim/internal/config"
	"github.com/Faultbox/printsim/internal/logger"
)

func main() {
	// Global flags come before the command
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	command, rest := args[0], args[1:]
	switch command {
	case "octree":
		err = cmdOctree(cfg, rest)
	case "voxels", "voxel":
		err = cmdVoxels(cfg, rest)
	case "simulate", "sim":
		err = cmdSimulate(cfg, rest)
	case "config":
		err = cmdConfig(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`printsim - printer arm simulation core

Usage:
  printsim [flags] <command> [options]

Commands:
  octree <model.off>        Build the face octree and report nodes per depth
  voxels <model.off>        Count vertices per voxel and report density stats
  simulate [model.off]      Drive the IK arm along the keyframe path
  config [path]             Write the effective config as YAML

Flags:
  -config <path>   Config file (default: ./printsim.yaml or user config dir)
  -debug           Enable debug logging
  -depth <n>       Octree max depth
  -density <n>     Voxel grid density target
  -workers <n>     Parallel voxel fill workers
  -speed <v>       Path speed in units per second
  -smooth          Smoothstep easing between keyframes

Examples:
  printsim -depth 6 octree bunny.off
  printsim -density 64 -workers 4 voxels bunny.off
  printsim -smooth simulate -ticks 240
  printsim config ./printsim.yaml`)
}
