// Package export writes a full snapshot of the journal as JSON or YAML.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/entry"
	"tableflip.dev/meditary/pkg/errs"
	"tableflip.dev/meditary/pkg/question"
	"tableflip.dev/meditary/pkg/session"
	"tableflip.dev/meditary/pkg/settings"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Snapshot mirrors the stored keys, using the same field names.
type Snapshot struct {
	DeviceID  string              `json:"deviceId"`
	Settings  settings.Settings   `json:"settings"`
	Questions []question.Question `json:"questions"`
	Entries   []entry.Entry       `json:"entries"`
	Sessions  []session.Session   `json:"sessions"`
}

type Export struct {
	Service *app.Service
	Format  string
	// Out defaults to stdout.
	Out io.Writer
}

func (n *Export) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("export: no service")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	snap := Snapshot{
		DeviceID:  n.Service.DeviceID(),
		Settings:  n.Service.Settings(),
		Questions: n.Service.Questions(),
		Entries:   n.Service.Entries(),
		Sessions:  n.Service.Sessions(),
	}
	data, err := Encode(snap, n.Format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// Encode renders v in format. YAML output keeps the JSON field names and key
// order by re-reading the JSON document as a YAML node tree.
func Encode(v any, format string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	switch format {
	case "", FormatJSON:
		return append(data, '\n'), nil
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		blockStyle(&node)
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, errs.Validationf("export: unknown format %q, want %s or %s", format, FormatJSON, FormatYAML)
}

// blockStyle drops the flow style the JSON parse leaves on collections and
// the quoting on plain strings.
func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		n.Style = 0
	case yaml.ScalarNode:
		if n.Style == yaml.DoubleQuotedStyle {
			n.Style = 0
		}
	}
	for _, c := range n.Content {
		blockStyle(c)
	}
}
