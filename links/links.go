// Package links provides terminal hyperlink support: tracking of explicit
// OSC 8 hyperlinks and automatic detection of URLs, file paths and
// tool-specific patterns in rendered terminal lines.
package links

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// TargetKind identifies what a link points at
type TargetKind uint8

const (
	// TargetURL is a web or other scheme-qualified URL
	TargetURL TargetKind = iota
	// TargetFile is a file path, optionally with line and column
	TargetFile
	// TargetCustom is a custom protocol handler match
	TargetCustom
)

// Target is the destination of a terminal link
type Target struct {
	Kind TargetKind

	// URL for TargetURL
	URL string

	// Path, Line and Column for TargetFile; 0 means unset
	Path   string
	Line   int
	Column int

	// Protocol and Data for TargetCustom
	Protocol string
	Data     string
}

// URLTarget creates a URL target
func URLTarget(url string) Target {
	return Target{Kind: TargetURL, URL: url}
}

// FileTarget creates a file target; pass 0 for unknown line/column
func FileTarget(path string, line, column int) Target {
	return Target{Kind: TargetFile, Path: path, Line: line, Column: column}
}

// URI renders the target as a URI string
func (t Target) URI() string {
	switch t.Kind {
	case TargetFile:
		uri := "file://" + t.Path
		if t.Line > 0 {
			uri += fmt.Sprintf(":%d", t.Line)
			if t.Column > 0 {
				uri += fmt.Sprintf(":%d", t.Column)
			}
		}
		return uri
	case TargetCustom:
		return t.Protocol + ":" + t.Data
	default:
		return t.URL
	}
}

// Link is a detected or explicit hyperlink within a terminal line
type Link struct {
	// Text is the linked span as it appeared on screen
	Text string
	// Target is where the link points
	Target Target
	// StartCol and EndCol bound the span within the line
	StartCol int
	EndCol   int
	// Row is the terminal buffer row the line came from
	Row int
	// ID is the OSC 8 link id, when present
	ID string
	// Explicit marks OSC 8 links as opposed to detected ones
	Explicit bool
}

// DetectorConfig controls automatic link detection
type DetectorConfig struct {
	// DetectURLs enables URL detection
	DetectURLs bool
	// DetectFilePaths enables file path detection
	DetectFilePaths bool
	// WorkingDir resolves relative paths when set
	WorkingDir string
	// CustomPatterns are applied after the built-in detectors
	CustomPatterns []Pattern
	// ValidatePaths drops file links whose path does not exist
	ValidatePaths bool
	// Exists overrides path existence checks in tests; nil uses the default
	Exists func(path string) bool
}

// DefaultDetectorConfig returns a config with URL and file path detection on
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		DetectURLs:      true,
		DetectFilePaths: true,
	}
}

var (
	urlRegex = regexp.MustCompile(
		`(?i)\b(?:https?://|ftp://|ftps://|file://)[^\s<>\[\]{}|\\^` + "`" + `]+`)

	// File paths with an optional :line:col or (line, col) suffix,
	// e.g. /path/to/file.go:10:5, ./main.go:42, index.ts(10, 5)
	filePathRegex = regexp.MustCompile(
		`(?:/[^\s:,()]+|\.\.?/[^\s:,()]+|[a-zA-Z_][a-zA-Z0-9_./\-]*\.[a-zA-Z]{1,10})` +
			`(?::\d+(?::\d+)?|\(\d+(?:,\s*\d+)?\))?`)
)

// Pattern is a custom regex-based link detector. The target template may
// reference the whole match as $0 and capture groups as $1..$9.
type Pattern struct {
	Name           string
	TargetTemplate string
	re             *regexp.Regexp
}

// NewPattern compiles a custom pattern; an invalid regex yields a pattern
// that never matches
func NewPattern(name, expr, targetTemplate string) Pattern {
	re, err := regexp.Compile(expr)
	if err != nil {
		re = nil
	}
	return Pattern{Name: name, TargetTemplate: targetTemplate, re: re}
}

type patternMatch struct {
	start  int
	end    int
	target string
}

func (p Pattern) findMatches(text string) []patternMatch {
	if p.re == nil {
		return nil
	}
	var matches []patternMatch
	for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
		target := p.TargetTemplate
		for g := 0; g*2+1 < len(loc); g++ {
			value := ""
			if loc[g*2] >= 0 {
				value = text[loc[g*2]:loc[g*2+1]]
			}
			target = strings.ReplaceAll(target, "$"+strconv.Itoa(g), value)
		}
		matches = append(matches, patternMatch{start: loc[0], end: loc[1], target: target})
	}
	return matches
}

// Detector finds links in terminal output lines
type Detector struct {
	config DetectorConfig
}

// NewDetector creates a detector with the default config
func NewDetector() *Detector {
	return &Detector{config: DefaultDetectorConfig()}
}

// NewDetectorWithConfig creates a detector with a custom config
func NewDetectorWithConfig(config DetectorConfig) *Detector {
	return &Detector{config: config}
}

// SetWorkingDir sets the directory used to resolve relative file paths
func (d *Detector) SetWorkingDir(dir string) {
	d.config.WorkingDir = dir
}

// AddPattern appends a custom pattern
func (d *Detector) AddPattern(p Pattern) {
	d.config.CustomPatterns = append(d.config.CustomPatterns, p)
}

// DetectLinks scans one line of text and returns the links found, sorted
// by start column
func (d *Detector) DetectLinks(text string, row int) []Link {
	var found []Link

	if d.config.DetectURLs {
		for _, loc := range urlRegex.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			found = append(found, Link{
				Text:     match,
				Target:   URLTarget(match),
				StartCol: loc[0],
				EndCol:   loc[1],
				Row:      row,
			})
		}
	}

	if d.config.DetectFilePaths {
		for _, loc := range filePathRegex.FindAllStringIndex(text, -1) {
			if overlapsAny(found, loc[0], loc[1]) {
				continue
			}
			match := text[loc[0]:loc[1]]
			path, line, col := parsePathLocation(match)
			resolved := d.resolvePath(path)
			if d.config.ValidatePaths && !d.pathExists(resolved) {
				continue
			}
			found = append(found, Link{
				Text:     match,
				Target:   FileTarget(resolved, line, col),
				StartCol: loc[0],
				EndCol:   loc[1],
				Row:      row,
			})
		}
	}

	for _, pattern := range d.config.CustomPatterns {
		for _, m := range pattern.findMatches(text) {
			if overlapsAny(found, m.start, m.end) {
				continue
			}
			found = append(found, Link{
				Text: text[m.start:m.end],
				Target: Target{
					Kind:     TargetCustom,
					Protocol: pattern.Name,
					Data:     m.target,
				},
				StartCol: m.start,
				EndCol:   m.end,
				Row:      row,
			})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].StartCol < found[j].StartCol
	})
	return found
}

// LinkAt returns the link covering a column in the line, if any
func (d *Detector) LinkAt(text string, row, col int) (Link, bool) {
	for _, link := range d.DetectLinks(text, row) {
		if col >= link.StartCol && col < link.EndCol {
			return link, true
		}
	}
	return Link{}, false
}

func overlapsAny(found []Link, start, end int) bool {
	for _, l := range found {
		if start < l.EndCol && end > l.StartCol {
			return true
		}
	}
	return false
}

// parsePathLocation splits a matched path from its trailing :line:col or
// (line, col) location, when present
func parsePathLocation(text string) (path string, line, col int) {
	if open := strings.LastIndexByte(text, '('); open >= 0 && strings.HasSuffix(text, ")") {
		coords := strings.Split(text[open+1:len(text)-1], ",")
		if l, err := strconv.Atoi(strings.TrimSpace(coords[0])); err == nil {
			c := 0
			if len(coords) > 1 {
				c, _ = strconv.Atoi(strings.TrimSpace(coords[1]))
			}
			return text[:open], l, c
		}
	}

	if last := strings.LastIndexByte(text, ':'); last >= 0 {
		if l, err := strconv.Atoi(text[last+1:]); err == nil {
			rest := text[:last]
			if prev := strings.LastIndexByte(rest, ':'); prev >= 0 {
				if actual, err := strconv.Atoi(rest[prev+1:]); err == nil {
					return rest[:prev], actual, l
				}
			}
			return rest, l, 0
		}
	}

	return text, 0, 0
}

func (d *Detector) resolvePath(path string) string {
	if filepath.IsAbs(path) || d.config.WorkingDir == "" {
		return path
	}
	return filepath.Join(d.config.WorkingDir, path)
}

func (d *Detector) pathExists(path string) bool {
	if d.config.Exists != nil {
		return d.config.Exists(path)
	}
	return defaultExists(path)
}
