// Package utils holds small local-repository conveniences that don't
// belong to any one engine package. Config here is local-only — there
// is no global or system scope, unlike this project's teacher lineage.
package utils

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kassahun-b/svec/core"
)

// ReadConfig parses a flat "key=value" file, one entry per line. Blank
// lines and lines starting with # are ignored.
func ReadConfig(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	defer f.Close()

	values := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return values, scanner.Err()
}

// WriteConfig writes values back out sorted by key, so repeated writes
// produce a stable diff.
func WriteConfig(path string, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, values[k])
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// GetConfigValue reads a single key from repo's local config.
func GetConfigValue(repo *core.Repository, key string) (string, bool, error) {
	values, err := ReadConfig(repo.ConfigPath())
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// SetConfigValue sets a single key in repo's local config.
func SetConfigValue(repo *core.Repository, key, value string) error {
	values, err := ReadConfig(repo.ConfigPath())
	if err != nil {
		return err
	}
	values[key] = value
	return WriteConfig(repo.ConfigPath(), values)
}

// Author formats the "user.name <user.email>" string commits are
// stamped with. Either field falls back to "unknown" if unset.
func Author(repo *core.Repository) (string, error) {
	values, err := ReadConfig(repo.ConfigPath())
	if err != nil {
		return "", err
	}
	name := values["user.name"]
	if name == "" {
		name = "unknown"
	}
	email := values["user.email"]
	if email == "" {
		email = "unknown"
	}
	return fmt.Sprintf("%s <%s>", name, email), nil
}
