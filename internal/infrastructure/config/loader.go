package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/ctxrun/internal/domain"
	"github.com/doeshing/ctxrun/internal/pkg/filesystem"
	"github.com/doeshing/ctxrun/internal/ports"
)

// FileLoader loads settings from ~/.ctxrun/config.yaml (overridable via CTXRUN_CONFIG)
// and overlays the workspace's .vscode/settings.json and .ctxrun.yaml.
// A missing file contributes nothing; no file is ever written.
type FileLoader struct {
	fs           afero.Fs
	overridePath string
}

// NewFileLoader builds a loader on the OS filesystem.
func NewFileLoader(path string) *FileLoader {
	return NewFileLoaderFs(afero.NewOsFs(), path)
}

// NewFileLoaderFs builds a loader on an arbitrary filesystem.
func NewFileLoaderFs(fsys afero.Fs, path string) *FileLoader {
	return &FileLoader{fs: fsys, overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(_ context.Context, workspace string) (domain.Settings, error) {
	var settings domain.Settings
	for _, path := range l.Sources(workspace) {
		layer, found, err := l.readFile(path)
		if err != nil {
			return domain.Settings{}, err
		}
		if found {
			settings.Merge(layer)
		}
	}
	return settings, nil
}

// Path returns the resolved user configuration path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(domain.EnvConfig); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), domain.ConfigDirName, domain.ConfigFileName)
}

// Sources lists the files consulted, lowest precedence first.
func (l *FileLoader) Sources(workspace string) []string {
	sources := []string{l.Path()}
	if workspace != "" {
		sources = append(sources,
			filepath.Join(workspace, filepath.FromSlash(domain.VSCodeSettingsFile)),
			filepath.Join(workspace, domain.WorkspaceConfigFile),
		)
	}
	return sources
}

// SourceStatus reports whether one configuration source exists.
type SourceStatus struct {
	Path  string
	Found bool
}

// SourceStatuses lists Sources(workspace) with their existence on the loader's filesystem.
func (l *FileLoader) SourceStatuses(workspace string) []SourceStatus {
	sources := l.Sources(workspace)
	statuses := make([]SourceStatus, 0, len(sources))
	for _, path := range sources {
		found, _ := afero.Exists(l.fs, path)
		statuses = append(statuses, SourceStatus{Path: path, Found: found})
	}
	return statuses
}

func (l *FileLoader) readFile(path string) (domain.Settings, bool, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Settings{}, false, nil
		}
		return domain.Settings{}, false, fmt.Errorf("read %s: %w", path, err)
	}
	settings, err := Decode(path, data)
	if err != nil {
		return domain.Settings{}, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, true, nil
}

// vscodeSettings accepts both the VS Code layout ("contextShellRunner.commands"
// or a nested "contextShellRunner" object) and the plain settings layout.
type vscodeSettings struct {
	domain.Settings `yaml:",inline"`

	Section       *domain.Settings         `yaml:"contextShellRunner"`
	Commands      *domain.CommandsConfig   `yaml:"contextShellRunner.commands"`
	Terminal      *domain.TerminalSettings `yaml:"contextShellRunner.terminal"`
	StrictQuoting *bool                    `yaml:"contextShellRunner.strictQuoting"`
}

// Decode parses a settings document; the format is chosen by file extension.
// JSON files may contain comments and trailing commas.
func Decode(path string, data []byte) (domain.Settings, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return decodeJSON(data)
	default:
		var settings domain.Settings
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return domain.Settings{}, err
		}
		return settings, nil
	}
}

func decodeJSON(data []byte) (domain.Settings, error) {
	normalized, err := normalizeJSON(jsonc.ToJSON(data))
	if err != nil {
		return domain.Settings{}, err
	}
	// yaml.v3 keeps key order; the normalized document only uses escapes it accepts.
	var raw vscodeSettings
	if err := yaml.Unmarshal(normalized, &raw); err != nil {
		return domain.Settings{}, err
	}
	settings := raw.Settings
	if raw.Section != nil {
		settings.Merge(*raw.Section)
	}
	if raw.Commands != nil {
		settings.Commands.Merge(*raw.Commands)
	}
	if raw.Terminal != nil {
		settings.Merge(domain.Settings{Terminal: *raw.Terminal})
	}
	if raw.StrictQuoting != nil {
		settings.StrictQuoting = *raw.StrictQuoting
	}
	return settings, nil
}

// normalizeJSON re-encodes a JSON document token by token in its original key
// order. Strings are re-escaped by encoding/json, which drops escapes such as
// \/ that YAML double-quoted scalars reject.
func normalizeJSON(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var buf bytes.Buffer
	if err := reencodeValue(dec, &buf); err != nil {
		if errors.Is(err, io.EOF) {
			if buf.Len() == 0 {
				return nil, nil
			}
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return buf.Bytes(), nil
}

func reencodeValue(dec *json.Decoder, buf *bytes.Buffer) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case json.Delim:
		return reencodeContainer(dec, buf, v)
	case string:
		return writeJSONString(buf, v)
	case json.Number:
		buf.WriteString(v.String())
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case nil:
		buf.WriteString("null")
	default:
		return fmt.Errorf("unexpected JSON token %v", tok)
	}
	return nil
}

func reencodeContainer(dec *json.Decoder, buf *bytes.Buffer, open json.Delim) error {
	closing := byte('}')
	if open == '[' {
		closing = ']'
	}
	buf.WriteByte(byte(open))
	for i := 0; dec.More(); i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		if open == '{' {
			key, err := dec.Token()
			if err != nil {
				return err
			}
			if err := writeJSONString(buf, fmt.Sprint(key)); err != nil {
				return err
			}
			buf.WriteString(": ")
		}
		if err := reencodeValue(dec, buf); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	buf.WriteByte(closing)
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// Marshal renders settings as YAML.
func Marshal(settings domain.Settings) ([]byte, error) {
	return yaml.Marshal(settings)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
