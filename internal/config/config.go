// Package config implements the per-rank configuration reader (C1):
// given a rank index and a shared file path, it returns the color,
// working directory, and environment assignments for that rank.
//
// Grounded on original_source/src/split.c's GetRankParamsFromFile: open
// the file, skip to the line addressed by rank, then parse it.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sentinel errors for the three configuration-error classes. Callers
// assert with errors.Is.
var (
	ConfigMissing    = errors.New("config: file cannot be opened")
	ConfigTruncated  = errors.New("config: fewer lines than rank requires")
	ConfigMalformed  = errors.New("config: line cannot be parsed")
)

// EnvAssignment is one name=value pair parsed from a line's env string.
type EnvAssignment struct {
	Name  string
	Value string
}

// Record is the per-process configuration record produced by C1 and
// consumed by the init orchestrator (C4) and process shaper (C2).
type Record struct {
	Color   int
	WorkDir string
	Env     []EnvAssignment
}

// Read opens path and returns the record for the given zero-based rank
// index. The file is addressed one line per world rank.
func Read(path string, rank int) (Record, error) {
	if rank < 0 {
		return Record{}, fmt.Errorf("config: negative rank %d: %w", rank, ConfigMalformed)
	}

	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("config: opening %q: %w", path, errors.Join(err, ConfigMissing))
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var line string
	for i := 0; i <= rank; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return Record{}, fmt.Errorf("config: reading %q at line %d: %w", path, i, errors.Join(err, ConfigTruncated))
			}
			return Record{}, fmt.Errorf("config: %q has no line for rank %d: %w", path, rank, ConfigTruncated)
		}
		line = scanner.Text()
	}

	return parseLine(path, rank, line)
}

func parseLine(path string, rank int, line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, fmt.Errorf("config: %q rank %d: empty line: %w", path, rank, ConfigMalformed)
	}

	color, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("config: %q rank %d: color %q: %w", path, rank, fields[0], errors.Join(err, ConfigMalformed))
	}

	rec := Record{Color: color}
	if len(fields) >= 2 {
		rec.WorkDir = fields[1]
	}
	if len(fields) >= 3 {
		envString := strings.Join(fields[2:], " ")
		env, err := parseEnvString(envString)
		if err != nil {
			return Record{}, fmt.Errorf("config: %q rank %d: %w", path, rank, err)
		}
		rec.Env = env
	}

	return rec, nil
}

// parseEnvString splits the semicolon-separated name=value elements of
// a config line's trailing field. An empty string is permitted and
// yields no assignments; an element with no '=' is malformed.
func parseEnvString(s string) ([]EnvAssignment, error) {
	if s == "" {
		return nil, nil
	}

	var out []EnvAssignment
	for _, tok := range strings.Split(s, ";") {
		if tok == "" {
			continue
		}
		name, value, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, fmt.Errorf("env assignment %q: %w", tok, ConfigMalformed)
		}
		out = append(out, EnvAssignment{Name: name, Value: value})
	}
	return out, nil
}
