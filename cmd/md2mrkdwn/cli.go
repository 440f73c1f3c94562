package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bigbag/md2mrkdwn"
	"github.com/bigbag/md2mrkdwn/internal/config"
)

// ErrReadInput wraps failures reading the markdown input.
var ErrReadInput = errors.New("failed to read input")

// run executes one conversion: input from files or stdin, result to stdout.
func run(flags *cliFlags, files []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	conv, err := md2mrkdwn.New(md2mrkdwn.WithConfig(cfg))
	if err != nil {
		return err
	}

	input, err := readInput(files, stdin)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(stdout, conv.Convert(input)+"\n"); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// resolveConfig builds the conversion config: defaults, then the config
// file (if any), then explicit flag overrides.
func resolveConfig(flags *cliFlags) (*md2mrkdwn.Config, error) {
	fileCfg := config.Default()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}

	cfg := fileCfg.Converter()
	if flags.changed("bullet") {
		cfg.BulletChar = flags.bullet
	}
	if flags.changed("header-style") {
		cfg.HeaderStyle = flags.headerStyle
	}
	if flags.changed("link-format") {
		cfg.LinkFormat = flags.linkFormat
	}
	if flags.changed("table-mode") {
		cfg.TableMode = flags.tableMode
	}
	if flags.changed("hr-char") {
		cfg.HorizontalRuleChar = flags.hrChar
	}
	if flags.changed("hr-length") {
		cfg.HorizontalRuleLength = flags.hrLength
	}
	return cfg, nil
}

// readInput concatenates the named files, or reads stdin when none are given.
func readInput(files []string, stdin io.Reader) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return string(data), nil
	}

	parts := make([]string, 0, len(files))
	for _, name := range files {
		data, err := os.ReadFile(name) // #nosec G304 -- input path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrReadInput, name, err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), nil
}
