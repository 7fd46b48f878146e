package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avlr/boxup/internal/actions"
	"github.com/avlr/boxup/internal/choco"
	"github.com/avlr/boxup/internal/config"
	"github.com/avlr/boxup/internal/execx"
	"github.com/avlr/boxup/internal/platform"
	"github.com/avlr/boxup/internal/winenv"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

func main() {

	cmd := &cli.Command{
		Name:  "boxup",
		Usage: "Provision a fresh Windows developer workstation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Usage:   "provisioning config file",
				Value:   "boxup.yml",
				Aliases: []string{"f"},
			},
			&cli.BoolFlag{
				Name:  "remove-apps",
				Usage: "remove preinstalled store apps",
			},
			&cli.BoolFlag{
				Name:  "install-base-software",
				Usage: "install the everyday software set",
			},
			&cli.BoolFlag{
				Name:  "install-dev-software",
				Usage: "install developer tooling, register git on PATH, pull latest Node.js",
			},
			&cli.BoolFlag{
				Name:  "install-web-server",
				Usage: "enable the IIS features and optional Web Platform products",
			},
			&cli.BoolFlag{
				Name:  "create-startup-entry",
				Usage: "create the startup folder shortcut",
			},
			&cli.BoolFlag{
				Name:  "install-frontend-tools",
				Usage: "install global npm and gem tooling",
			},
			&cli.BoolFlag{
				Name:  "list-manual-steps",
				Usage: "print the follow-up steps to do by hand",
			},
			&cli.BoolFlag{
				Name:  "write-config",
				Usage: "write the built-in default config to the config file and exit",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print external commands instead of running them",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "echo every external command",
				Aliases: []string{"v"},
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("write-config") {
		if err := config.Default().Save(cmd.String("file")); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cmd.String("file"))
		return nil
	}

	cfg, err := config.Load(cmd.String("file"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if info := platform.GetPlatformInfo(); info.OS != platform.OSWindows && !cmd.Bool("dry-run") {
		color.New(color.FgYellow).Printf("⚠️  Running on %s/%s; most steps only work on Windows\n", info.OS, info.Arch)
	}

	runner := execx.New(execx.Options{
		Verbose: cmd.Bool("verbose"),
		DryRun:  cmd.Bool("dry-run"),
	})
	drv := choco.New(runner)

	// flags are independent and combinable; each one triggers exactly one
	// action, in this fixed order
	ran := false
	if cmd.Bool("remove-apps") {
		ran = true
		if err := actions.RemoveApps(runner, cfg); err != nil {
			return err
		}
	}
	if cmd.Bool("install-base-software") {
		ran = true
		if err := actions.InstallBaseSoftware(runner, drv, cfg); err != nil {
			return err
		}
	}
	if cmd.Bool("install-dev-software") {
		ran = true
		if err := actions.InstallDevSoftware(runner, drv, winenv.OpenSystemStore, cfg); err != nil {
			return err
		}
	}
	if cmd.Bool("install-web-server") {
		ran = true
		if err := actions.InstallWebServer(runner, cfg); err != nil {
			return err
		}
	}
	if cmd.Bool("create-startup-entry") {
		ran = true
		if err := actions.CreateStartupEntry(runner, cfg); err != nil {
			return err
		}
	}
	if cmd.Bool("install-frontend-tools") {
		ran = true
		if err := actions.InstallFrontendTools(runner, cfg); err != nil {
			return err
		}
	}
	if cmd.Bool("list-manual-steps") {
		ran = true
		actions.ListManualSteps(cfg)
	}

	if !ran {
		fmt.Println("Nothing to do; pass at least one action flag (see --help)")
		return nil
	}
	fmt.Println("🎉 All requested actions completed!")
	return nil
}
