package integrations

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// CommandPlayer hands the source to an external audio player such as mpv.
type CommandPlayer struct {
	command string
	args    []string
	logger  *zap.Logger
}

func NewCommandPlayer(command string, args []string, logger *zap.Logger) *CommandPlayer {
	return &CommandPlayer{command: command, args: args, logger: logger}
}

// Play starts the player and returns once it is running. The process is
// reaped in the background.
func (p *CommandPlayer) Play(ctx context.Context, source string) error {
	if source == "" {
		return fmt.Errorf("no audio for this verse")
	}
	if p.command == "" {
		return fmt.Errorf("no audio player configured")
	}

	args := append(append([]string{}, p.args...), source)
	cmd := exec.Command(p.command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.command, err)
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			p.logger.Debug("audio player exited", zap.String("source", source), zap.Error(err))
		}
	}()
	return nil
}

// AudioFileName is the name a downloaded recitation is stored under.
func AudioFileName(audioURL string) string {
	u, err := url.Parse(audioURL)
	if err != nil || u.Path == "" {
		return ""
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return ""
	}
	return name
}

// CachedPlayer plays a downloaded copy of a recitation when one exists.
type CachedPlayer struct {
	Player
	dir string
}

func NewCachedPlayer(p Player, dir string) *CachedPlayer {
	return &CachedPlayer{Player: p, dir: dir}
}

func (c *CachedPlayer) LocalPath(audioURL string) (string, bool) {
	name := AudioFileName(audioURL)
	if name == "" {
		return "", false
	}
	p := filepath.Join(c.dir, name)
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

func (c *CachedPlayer) Play(ctx context.Context, source string) error {
	if local, ok := c.LocalPath(source); ok {
		return c.Player.Play(ctx, local)
	}
	return c.Player.Play(ctx, source)
}
