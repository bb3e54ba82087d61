package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/x97mdr/SpecFlow/config"

	"github.com/goccy/go-yaml"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func writeSettings(w io.Writer, format string, settings config.Settings) error {
	var (
		out []byte
		err error
	)

	switch format {
	case outputYAML:
		out, err = yaml.Marshal(settings)
	case outputJSON:
		out, err = json.MarshalIndent(settings, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputYAML, outputJSON)
	}

	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	_, err = w.Write(out)

	return err
}
