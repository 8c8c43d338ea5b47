package bootstrap

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/thunderbolt/config"
)

func TestFlagsRegister(t *testing.T) {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse([]string{"-config", "x.toml", "-seed", "9", "-audio", "-log-level", "debug"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.ConfigPath != "x.toml" || f.Seed != 9 || !f.Audio || f.LogLevel != "debug" {
		t.Errorf("flags = %+v", f)
	}
}

func TestBuildAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thunderbolt.toml")
	body := "[engine]\nseed = 3\nmax_particles = 500\n[settings]\nsnow = true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	rt, err := Build(Flags{
		ConfigPath: path,
		LogFile:    filepath.Join(dir, "thunderbolt.log"),
		Seed:       11,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer rt.Close()

	if rt.Config.Engine.Seed != 11 {
		t.Errorf("seed = %d, want flag override 11", rt.Config.Engine.Seed)
	}
	if rt.Config.Engine.MaxParticles != 500 {
		t.Errorf("max_particles = %d, want 500", rt.Config.Engine.MaxParticles)
	}
	if !rt.Engine.Settings().Settings().Snow {
		t.Error("snow setting from file not applied")
	}
	if rt.Config.Audio.Enabled {
		t.Error("audio should stay disabled without the flag")
	}
}

func TestBuildReportsConfigErrors(t *testing.T) {
	_, err := Build(Flags{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[engine]\nmax_particles = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Build(Flags{ConfigPath: path}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
