package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/esimov/linear"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a scene file which is neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown scene format")

// Format identifies the encoding of a scene description.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Extensions lists the file extensions recognized as scene descriptions.
var Extensions = []string{".toml", ".yaml", ".yml"}

// FormatFromFilename detects the scene format from the file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Load reads and validates the scene stored at path.
func Load(path string) (*Scene, error) {
	format, err := FormatFromFilename(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open the scene file: %w", err)
	}
	defer f.Close()

	sc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if sc.Title == "" {
		sc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Decode reads a scene from r in the given format and validates it.
func Decode(r io.Reader, format Format) (*Scene, error) {
	sc := &Scene{}

	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(sc)
		if err != nil {
			return nil, fmt.Errorf("unable to decode the TOML scene: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			linear.Logger().Warn("unknown scene keys", "keys", fmt.Sprint(undecoded))
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(sc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("unable to decode the YAML scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	linear.Logger().Debug("scene decoded", "format", format, "title", sc.Title, "children", len(sc.Children))

	return sc, nil
}

// Encode writes the scene to w in the given format.
func Encode(w io.Writer, sc *Scene, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(sc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
