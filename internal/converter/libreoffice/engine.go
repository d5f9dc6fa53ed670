// Package libreoffice converts documents by running a headless soffice
// process per call, each with its own throwaway user profile.
package libreoffice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/doc_converter/internal/domain"
)

const (
	sourceStem    = "source"
	maxStderrTail = 512

	// soffice forks soffice.bin which may keep the output pipes open after
	// the parent is killed.
	waitDelay = 5 * time.Second
)

var zipMagic = []byte("PK\x03\x04")

type Engine struct {
	binary  string
	workDir string
}

// New returns an engine running binary (looked up in PATH when it has no
// separator). Temporary directories are created under workDir, or the system
// temp dir when workDir is empty.
func New(binary, workDir string) *Engine {
	return &Engine{
		binary:  binary,
		workDir: workDir,
	}
}

func (e *Engine) Name() string {
	return "libreoffice"
}

func (e *Engine) Supports(format domain.Format) bool {
	return format.Valid()
}

func (e *Engine) Convert(ctx context.Context, data []byte, format domain.Format) (_ []byte, err error) {
	bin, err := exec.LookPath(e.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEngineUnavailable, err)
	}

	dir, err := os.MkdirTemp(e.workDir, "soffice-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}
	defer func() { err = errors.Join(err, os.RemoveAll(dir)) }()

	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	src := filepath.Join(dir, sourceStem+sourceExtension(data))
	if err := os.WriteFile(src, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write source: %w", err)
	}

	profile := (&url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Join(dir, "profile"))}).String()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin,
		"-env:UserInstallation="+profile,
		"--headless",
		"--invisible",
		"--nologo",
		"--nodefault",
		"--norestore",
		"--nolockcheck",
		"--convert-to", format.Filter(),
		"--outdir", outDir,
		src,
	)
	cmd.Dir = dir
	cmd.Stdout = &stderr
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: soffice exited with %d: %s", domain.ErrConversionFailed, exitErr.ExitCode(), tail(stderr.String()))
		}

		return nil, fmt.Errorf("%w: failed to start soffice: %w", domain.ErrEngineUnavailable, err)
	}

	out, err := os.ReadFile(filepath.Join(outDir, sourceStem+format.Extension()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: soffice produced no output: %s", domain.ErrConversionFailed, tail(stderr.String()))
		}
		return nil, fmt.Errorf("failed to read output: %w", err)
	}

	return out, nil
}

// sourceExtension picks the extension soffice uses to choose an import filter.
func sourceExtension(data []byte) string {
	if bytes.HasPrefix(data, zipMagic) {
		return ".docx"
	}
	return ".doc"
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderrTail {
		s = s[len(s)-maxStderrTail:]
	}
	return s
}
