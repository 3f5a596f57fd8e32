// Package guide holds the tutorial registry and the driver that runs every
// tutorial in ordinal order, framing each one with a numbered banner.
//
// Lifecycle:
//
//	ts := guide.Tutorials()          // fixed, ordered registry
//	err := guide.Run(guide.Config{}, ts)
//
// The driver only frames output. Tutorials write to the same stdout sink and
// must return normally; a tutorial that exits the process ends the whole run.
package guide

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Fixed lines emitted by the driver around the tutorials.
const (
	Header    = "Rust 代码教程库 - 主程序"
	Ruler     = "======================="
	Preamble  = "运行各个教程模块的演示："
	Footer    = "所有教程演示完成！"
	bannerTag = "教程："
)

// ErrInvalidRegistry is wrapped by every Validate failure.
var ErrInvalidRegistry = errors.New("invalid tutorial registry")

// Tutorial describes one demonstration unit: its fixed position in the run,
// the display title printed in its banner and its nullary entry point.
type Tutorial struct {
	Ordinal int
	Title   string
	Run     func()
}

// Config holds driver parameters.
type Config struct {
	// Out receives the header, banners, separators and footer. Tutorials
	// print to os.Stdout themselves, so Out should be os.Stdout outside of
	// tests. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives debug records about each tutorial. If nil,
	// DefaultLogger() is used.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Logger == nil {
		out.Logger = DefaultLogger()
	}
	return out
}

// DefaultLogger returns a stderr logger at warn level, so a normal run
// writes nothing besides the tutorial transcript.
func DefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "guide",
		Level:  log.WarnLevel,
	})
}

// Banner returns the line printed before a tutorial runs.
func Banner(t Tutorial) string {
	return fmt.Sprintf("%d. %s%s", t.Ordinal, t.Title, bannerTag)
}

// Validate reports whether ts is a well-formed registry: ordinals run from 1
// to len(ts) in slice order, every title is set and every entry is callable.
func Validate(ts []Tutorial) error {
	if len(ts) == 0 {
		return fmt.Errorf("%w: no tutorials", ErrInvalidRegistry)
	}
	for i, t := range ts {
		if t.Ordinal != i+1 {
			return fmt.Errorf("%w: position %d has ordinal %d, want %d",
				ErrInvalidRegistry, i, t.Ordinal, i+1)
		}
		if t.Title == "" {
			return fmt.Errorf("%w: tutorial %d has no title", ErrInvalidRegistry, t.Ordinal)
		}
		if t.Run == nil {
			return fmt.Errorf("%w: tutorial %d (%s) has no entry", ErrInvalidRegistry, t.Ordinal, t.Title)
		}
	}
	return nil
}

// Run validates ts and then runs every tutorial in order:
//
//	header → banner₁ → tutorial₁ → blank → … → bannerₙ → tutorialₙ → blank → footer
//
// There is no recovery boundary around a tutorial. A panic or os.Exit inside
// one propagates and the remaining banners and the footer are never printed.
func Run(cfg Config, ts []Tutorial) error {
	cfg = cfg.withDefaults()

	if err := Validate(ts); err != nil {
		return err
	}

	p := printer{w: cfg.Out}
	p.line(Header)
	p.line(Ruler)
	p.line(Preamble)
	p.line("")
	if p.err != nil {
		return fmt.Errorf("write header: %w", p.err)
	}

	for _, t := range ts {
		p.line(Banner(t))
		if p.err != nil {
			return fmt.Errorf("write banner %d: %w", t.Ordinal, p.err)
		}

		cfg.Logger.Debug("running tutorial", "ordinal", t.Ordinal, "title", t.Title)
		start := time.Now()
		t.Run()
		cfg.Logger.Debug("tutorial finished", "ordinal", t.Ordinal, "elapsed", time.Since(start))

		p.line("")
		if p.err != nil {
			return fmt.Errorf("write separator %d: %w", t.Ordinal, p.err)
		}
	}

	p.line(Footer)
	if p.err != nil {
		return fmt.Errorf("write footer: %w", p.err)
	}
	return nil
}

// printer writes whole lines and remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}
