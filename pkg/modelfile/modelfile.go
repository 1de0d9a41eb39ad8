package modelfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/labrig/labrig-go/pkg/device"
	"github.com/labrig/labrig-go/pkg/feature"
)

// yamlModel is the YAML structure of a model file.
type yamlModel struct {
	Model       string        `yaml:"model"`
	ModeFeature string        `yaml:"mode_feature"`
	Features    []yamlFeature `yaml:"features"`
}

// yamlFeature is one feature entry. Menu and Parameter are pointers so a
// missing coordinate can be told apart from a legitimate zero.
type yamlFeature struct {
	Name      string           `yaml:"name"`
	Doc       string           `yaml:"doc"`
	Menu      *int             `yaml:"menu"`
	Parameter *int             `yaml:"parameter"`
	Command   string           `yaml:"command"`
	Decimals  int              `yaml:"decimals"`
	Kind      string           `yaml:"kind"`
	Mode      string           `yaml:"mode"`
	Symbols   map[int16]string `yaml:"symbols"`
}

// Parse parses YAML model data and builds the device model, running the same
// construction-time checks as a model declared in code.
func Parse(data []byte) (*device.Model, error) {
	var y yamlModel
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("modelfile: YAML parse error: %w", err)
	}

	descs := make([]feature.Descriptor, 0, len(y.Features))
	for _, f := range y.Features {
		d, err := f.descriptor()
		if err != nil {
			return nil, err
		}
		descs = append(descs, d)
	}

	var opts []device.ModelOption
	if y.ModeFeature != "" {
		opts = append(opts, device.WithModeFeature(y.ModeFeature))
	}
	return device.BuildModel(y.Model, descs, opts...)
}

// Load reads and parses a YAML model file.
func Load(path string) (*device.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (f yamlFeature) descriptor() (feature.Descriptor, error) {
	var d feature.Descriptor

	switch f.Command {
	case "":
		if f.Menu == nil || f.Parameter == nil {
			return d, &feature.ConfigError{Feature: f.Name, Reason: "menu and parameter are required"}
		}
		switch {
		case len(f.Symbols) > 0:
			d = feature.Symbolic(f.Name, f.Doc, *f.Menu, *f.Parameter, f.Symbols)
		case f.Decimals > 0:
			d = feature.Scaled(f.Name, f.Doc, *f.Menu, *f.Parameter, f.Decimals)
		default:
			d = feature.Int16(f.Name, f.Doc, *f.Menu, *f.Parameter)
		}
	default:
		if f.Kind == "text" {
			d = feature.CmdText(f.Name, f.Doc, f.Command)
		} else {
			d = feature.Cmd(f.Name, f.Doc, f.Command)
		}
	}

	if f.Mode != "" {
		m, ok := feature.ParseMode(f.Mode)
		if !ok {
			return d, &feature.ConfigError{Feature: f.Name, Reason: fmt.Sprintf("unknown mode %q", f.Mode)}
		}
		d = d.RequireMode(m)
	}
	return d, nil
}
