package persistence

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
)

// WriteDefinition writes the network as a YAML definition.
func WriteDefinition(w io.Writer, n *model.Network) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Snapshot(n)); err != nil {
		return err
	}
	return enc.Close()
}

// ReadDefinition reads a YAML definition and rebuilds the network.
func ReadDefinition(r io.Reader) (*model.Network, error) {
	snapshot := &NetworkSnapshot{}
	if err := yaml.NewDecoder(r).Decode(snapshot); err != nil {
		return nil, err
	}
	return snapshot.Restore()
}

// ExportDefinition writes the network definition to a YAML file.
func ExportDefinition(path string, n *model.Network) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDefinition(f, n); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ImportDefinition reads a network definition from a YAML file.
func ImportDefinition(path string) (*model.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDefinition(f)
}
