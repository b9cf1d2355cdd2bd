package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"guestbook/internal/domain/entity"

	"github.com/pkg/errors"
)

// collectGuests merges the single guest flag with the guest list file.
func collectGuests(guest, path string) ([]string, error) {
	var guests []string
	if guest = strings.TrimSpace(guest); guest != "" {
		guests = append(guests, guest)
	}

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open guest list")
		}
		defer file.Close()

		listed, err := readGuests(file)
		if err != nil {
			return nil, err
		}
		guests = append(guests, listed...)
	}

	if len(guests) == 0 {
		return nil, errors.New("--guest or --guests is required")
	}

	return guests, nil
}

// readGuests returns one guest per non-blank line. Lines starting with # are
// skipped, as are names whose key was already listed.
func readGuests(r io.Reader) ([]string, error) {
	var guests []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key := entity.NormalizeNameKey(line)
		if _, dup := seen[key]; dup && key != "" {
			continue
		}
		seen[key] = struct{}{}
		guests = append(guests, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read guest list")
	}

	return guests, nil
}

// pngName returns the file name of a guest's share code.
func pngName(guest string) string {
	key := entity.NormalizeNameKey(guest)
	if key == "" {
		key = "guest"
	}

	return key + ".png"
}
