package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"
)

type Source int

const (
	// Value read from the configuration file
	FROM_CONFIG Source = iota
	// No configuration file
	DEFAULT_NO_CONFIG
	// Configuration file without a usable key
	DEFAULT_NO_KEY
)

func (source Source) String() string {
	switch source {
	case FROM_CONFIG:
		return "config"
	case DEFAULT_NO_CONFIG:
		return "default (no config file)"
	case DEFAULT_NO_KEY:
		return "default (no key)"
	}
	return fmt.Sprintf("Source(%d)", int(source))
}

// Resolution is the interpreter the entry point will be run with.
type Resolution struct {
	Interpreter string
	Source      Source
}

// Resolve reads the interpreter from the key=value file at path.
//
// A missing file resolves to fallback with DEFAULT_NO_CONFIG. When the file
// exists, every line starting with "key=" is a candidate and the last one
// wins; a missing or empty value resolves to fallback with DEFAULT_NO_KEY.
// An unreadable file also falls back with DEFAULT_NO_KEY, the read error is
// returned alongside the usable resolution.
func Resolve(path string, key string, fallback string) (resolution Resolution, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Resolution{Interpreter: fallback, Source: DEFAULT_NO_CONFIG}, nil
		}
		return Resolution{Interpreter: fallback, Source: DEFAULT_NO_KEY}, fmt.Errorf("%w: %v", ErrUnreadableConfig, err)
	}
	defer file.Close()

	value, err := Scan(file, key)
	if err != nil {
		return Resolution{Interpreter: fallback, Source: DEFAULT_NO_KEY}, fmt.Errorf("%w: %v", ErrUnreadableConfig, err)
	}
	if value == "" {
		return Resolution{Interpreter: fallback, Source: DEFAULT_NO_KEY}, nil
	}
	return Resolution{Interpreter: value, Source: FROM_CONFIG}, nil
}

// Scan returns the value of the last "key=" line in reader, or an empty
// string when there is none. Values are kept verbatim, only the line
// terminator is dropped.
func Scan(reader io.Reader, key string) (value string, err error) {
	prefix := key + "="
	scanner := bufio.NewScanner(reader)
	// Lines of any length are scanned, not only the default 64 KiB
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, prefix) {
			value = line[strings.Index(line, "=")+1:]
		}
	}
	err = scanner.Err()
	return
}
