// Command thunderbolt runs the particle engine behind a small text editor in the terminal
//
// Type to spawn particles at the caret, move the mouse to spawn at the pointer.
// F1 cycles themes; F2-F6 toggle snow, stardust, butterflies, reverse echoes and regular sparks.
// Esc or Ctrl-C quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/thunderbolt/bootstrap"
	"github.com/lixenwraith/thunderbolt/terminal"
)

const defaultLogFile = "thunderbolt.log"

func main() {
	var flags bootstrap.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	// The screen owns the terminal; keep logs off stderr unless a file is configured
	if flags.LogFile == "" {
		flags.LogFile = defaultLogFile
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "thunderbolt: %v\n", err)
		os.Exit(1)
	}
}

func run(flags bootstrap.Flags) (err error) {
	rt, err := bootstrap.Build(flags)
	if err != nil {
		return err
	}
	defer rt.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Runs after screen.Fini, so the report never lands on the raw-mode screen
	defer func() {
		if r := recover(); r != nil {
			rt.Log.Error("host panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := terminal.NewHost(screen, rt.Engine, rt.Log.Named("terminal"))
	if err := rt.Engine.Start(ctx); err != nil {
		return err
	}

	if err := host.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
