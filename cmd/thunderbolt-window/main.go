// Command thunderbolt-window runs the particle engine in a desktop window
//
// Same controls as the terminal host, rendered with anti-aliased vector shapes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/thunderbolt/bootstrap"
	"github.com/lixenwraith/thunderbolt/window"
)

func main() {
	var flags bootstrap.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "thunderbolt-window: %v\n", err)
		os.Exit(1)
	}
}

func run(flags bootstrap.Flags) error {
	rt, err := bootstrap.Build(flags)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := rt.Engine.Start(ctx); err != nil {
		return err
	}

	vp := rt.Config.Viewport
	host := window.NewHost(rt.Engine, rt.Log.Named("window"))
	if err := host.Run(int(vp.Width), int(vp.Height)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
