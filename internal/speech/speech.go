// Package speech plays prompts through a text-to-speech program.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultCommand is the synthesizer used when none is configured.
const DefaultCommand = "espeak-ng -v ar"

// ErrNoCommand is returned when the speech command is empty.
var ErrNoCommand = errors.New("speech command is empty")

// Speaker speaks text and returns when playback has finished.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// CommandSpeaker runs an external program with the text as its last
// argument.
type CommandSpeaker struct {
	Name string
	Args []string
}

// NewCommandSpeaker parses a command line such as "espeak-ng -v ar".
func NewCommandSpeaker(command string) (*CommandSpeaker, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}
	return &CommandSpeaker{Name: fields[0], Args: fields[1:]}, nil
}

// Available reports whether the program can be found on PATH.
func (s *CommandSpeaker) Available() bool {
	_, err := exec.LookPath(s.Name)
	return err == nil
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	args := append(append([]string(nil), s.Args...), text)
	cmd := exec.CommandContext(ctx, s.Name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", s.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}

// NopSpeaker discards everything.
type NopSpeaker struct{}

func (NopSpeaker) Speak(context.Context, string) error { return nil }
