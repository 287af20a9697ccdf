// Command gen regenerates data/catalog.cue from Unicode's emoji-test.txt.
//
// Only fully-qualified emoji are kept. Skin tone variants are not written
// out; a base emoji is marked with tones: true when emoji-test.txt lists a
// single-modifier variant for each of the five Fitzpatrick tones and the emoji
// is not a multi-person grouping. The catalog package derives the variant
// records from that flag.
//
// Shortcodes are not part of emoji-test.txt. They are merged in from a
// separate overlay file (see shortcodes.txt).
//
// The rendered source is compiled with catalog.Load before it is written, so
// a generator bug cannot produce a catalog the binary would refuse to embed.
//
// Usage:
//
//	go run ./gen -source gen/emoji-test.txt -shortcodes gen/shortcodes.txt -out data/catalog.cue
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/sparklet/windot/internal/catalog"
)

func main() {
	source := flag.String("source", "gen/emoji-test.txt", "path to emoji-test.txt")
	shortcodes := flag.String("shortcodes", "gen/shortcodes.txt", "path to the shortcode overlay")
	out := flag.String("out", "data/catalog.cue", "output CUE file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*source, *shortcodes, *out, logger); err != nil {
		logger.Error("generate catalog", "error", err)
		os.Exit(1)
	}
}

func run(sourcePath, shortcodesPath, outPath string, logger *slog.Logger) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	test, err := parseEmojiTest(src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", sourcePath, err)
	}

	ovl, err := os.Open(shortcodesPath)
	if err != nil {
		return err
	}
	defer ovl.Close()

	codes, err := parseShortcodes(ovl)
	if err != nil {
		return fmt.Errorf("parse %s: %w", shortcodesPath, err)
	}

	bases, err := selectBases(test.Entries)
	if err != nil {
		return err
	}
	if err := mergeShortcodes(bases, codes); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render(&buf, test.Version, bases); err != nil {
		return err
	}

	c, err := catalog.Load(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated catalog does not load: %w", err)
	}
	if c.Len() != len(bases) {
		return fmt.Errorf("generated catalog has %d records, want %d", c.Len(), len(bases))
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return err
	}

	logger.Info("catalog generated",
		"version", test.Version,
		"emoji", len(bases),
		"toned", countToned(bases),
		"out", outPath)
	return nil
}
