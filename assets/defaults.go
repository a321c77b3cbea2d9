package assets

import (
	_ "embed"
)

// ExampleConfigYAML contains the embedded example configuration.
//
//go:embed defaults/config.yaml
var ExampleConfigYAML []byte
