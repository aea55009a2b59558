// Package secrets materializes the application's runtime environment file.
//
// The deployed application reads its configuration from a KEY=VALUE file in
// its working directory. The file is rewritten from scratch on every run so
// its contents always match the current inputs exactly; values from a prior
// run never survive.
package secrets

import (
	"fmt"
	"strings"

	"github.com/TEAM-AKIRU/BOT-HOSTING-WEB/internal/platform/host"
)

// Binding is one KEY=VALUE entry in the environment file.
type Binding struct {
	Key   string
	Value string
}

// Encode renders bindings as KEY=VALUE lines in declaration order.
// It rejects keys or values that would corrupt the line-oriented format.
func Encode(bindings []Binding) ([]byte, error) {
	var sb strings.Builder
	for _, b := range bindings {
		if b.Key == "" {
			return nil, fmt.Errorf("empty key in secrets bindings")
		}
		if strings.ContainsAny(b.Key, "=\n ") {
			return nil, fmt.Errorf("invalid secrets key %q", b.Key)
		}
		if strings.Contains(b.Value, "\n") {
			return nil, fmt.Errorf("value for %s contains a newline", b.Key)
		}
		sb.WriteString(b.Key)
		sb.WriteString("=")
		sb.WriteString(b.Value)
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}

// Write overwrites the environment file at path with exactly the given
// bindings, readable only by its owner.
func Write(h host.Host, path string, bindings []Binding) error {
	data, err := Encode(bindings)
	if err != nil {
		return err
	}
	if err := h.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write secrets file: %w", err)
	}
	return nil
}
