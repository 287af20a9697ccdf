package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// testEntry is one data line of emoji-test.txt.
type testEntry struct {
	Group  string // CLDR group label, e.g. "Smileys & Emotion"
	Status string // fully-qualified, minimally-qualified, unqualified, component
	Glyph  string
	Since  string // Unicode Emoji version without the leading "E"
	Name   string
}

type emojiTest struct {
	Version string
	Entries []testEntry
}

const (
	versionPrefix = "# Version: "
	groupPrefix   = "# group: "
)

// parseEmojiTest reads the emoji-test.txt format:
//
//	1F44D ; fully-qualified # 👍 E0.6 thumbs up
//
// Code points are authoritative; the glyph echoed in the comment is checked
// against them.
func parseEmojiTest(r io.Reader) (*emojiTest, error) {
	out := &emojiTest{}
	group := ""

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")

		switch {
		case strings.HasPrefix(line, versionPrefix):
			out.Version = strings.TrimSpace(line[len(versionPrefix):])
			continue
		case strings.HasPrefix(line, groupPrefix):
			group = strings.TrimSpace(line[len(groupPrefix):])
			continue
		case strings.TrimSpace(line) == "", strings.HasPrefix(line, "#"):
			continue
		}

		e, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		e.Group = group
		out.Entries = append(out.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out.Version == "" {
		return nil, fmt.Errorf("missing %q header", strings.TrimSpace(versionPrefix))
	}
	return out, nil
}

func parseEntry(line string) (testEntry, error) {
	data, comment, ok := strings.Cut(line, "#")
	if !ok {
		return testEntry{}, fmt.Errorf("missing comment: %q", line)
	}
	points, status, ok := strings.Cut(data, ";")
	if !ok {
		return testEntry{}, fmt.Errorf("missing status: %q", line)
	}

	var glyph strings.Builder
	for _, field := range strings.Fields(points) {
		cp, err := strconv.ParseUint(field, 16, 32)
		if err != nil {
			return testEntry{}, fmt.Errorf("code point %q: %w", field, err)
		}
		glyph.WriteRune(rune(cp))
	}

	// "# 👍 E0.6 thumbs up"
	echoed, rest, _ := strings.Cut(strings.TrimSpace(comment), " ")
	version, name, _ := strings.Cut(rest, " ")
	if !strings.HasPrefix(version, "E") {
		return testEntry{}, fmt.Errorf("missing version: %q", line)
	}
	if echoed != glyph.String() {
		return testEntry{}, fmt.Errorf("glyph %q does not match code points %q", echoed, strings.TrimSpace(points))
	}

	return testEntry{
		Status: strings.TrimSpace(status),
		Glyph:  glyph.String(),
		Since:  version[1:],
		Name:   name,
	}, nil
}

// parseShortcodes reads the overlay: one glyph per line followed by its
// shortcodes. Blank lines and lines starting with '#' are skipped.
func parseShortcodes(r io.Reader) (map[string][]string, error) {
	out := make(map[string][]string)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %q has no shortcodes", lineNo, fields[0])
		}
		key := overlayKey(fields[0])
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("line %d: %q listed twice", lineNo, fields[0])
		}
		out[key] = fields[1:]
	}
	return out, sc.Err()
}

// overlayKey makes VS-16 optional in the overlay file.
func overlayKey(glyph string) string {
	return strings.ReplaceAll(glyph, "\uFE0F", "")
}
