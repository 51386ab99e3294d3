package persistence

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
)

// SnapshotVersion is the current version of the snapshot format.
const SnapshotVersion = 1

// KeyBytes is a key value serialized as a hex string, so snapshots stay
// readable and hand-editable.
type KeyBytes []byte

// MarshalJSON implements json.Marshaler.
func (k KeyBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(k))
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *KeyBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return k.decode(s)
}

// MarshalYAML implements yaml.Marshaler.
func (k KeyBytes) MarshalYAML() (interface{}, error) {
	return hex.EncodeToString(k), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *KeyBytes) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return k.decode(s)
}

func (k *KeyBytes) decode(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid key value: %w", err)
	}
	*k = b
	return nil
}

// NetworkSnapshot is the serialized form of a Network.
type NetworkSnapshot struct {
	// Version is the snapshot format version.
	Version int `json:"version" yaml:"version"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `json:"saved_at" yaml:"saved_at"`

	// Name is the network label.
	Name string `json:"name" yaml:"name"`

	// LocalAddress is the primary unicast of the local node.
	LocalAddress mesh.Address `json:"local_address" yaml:"local_address"`

	// NetKeys are the global network key records.
	NetKeys []NetworkKeyRecord `json:"net_keys,omitempty" yaml:"net_keys,omitempty"`

	// AppKeys are the global application key records.
	AppKeys []ApplicationKeyRecord `json:"app_keys,omitempty" yaml:"app_keys,omitempty"`

	// Groups are the named group and virtual addresses.
	Groups []GroupRecord `json:"groups,omitempty" yaml:"groups,omitempty"`

	// Nodes are the provisioned nodes.
	Nodes []NodeRecord `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// NetworkKeyRecord mirrors model.NetworkKey.
type NetworkKeyRecord struct {
	Index uint16   `json:"index" yaml:"index"`
	Key   KeyBytes `json:"key" yaml:"key"`
	Name  string   `json:"name,omitempty" yaml:"name,omitempty"`
}

// ApplicationKeyRecord mirrors model.ApplicationKey.
type ApplicationKeyRecord struct {
	Index            uint16   `json:"index" yaml:"index"`
	BoundNetKeyIndex uint16   `json:"bound_net_key_index" yaml:"bound_net_key_index"`
	Key              KeyBytes `json:"key" yaml:"key"`
	Name             string   `json:"name,omitempty" yaml:"name,omitempty"`
}

// GroupRecord mirrors model.Group.
type GroupRecord struct {
	Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
	Address mesh.MeshAddress `json:"address" yaml:"address,flow"`
}

// NodeRecord mirrors model.Node.
type NodeRecord struct {
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Unicast    mesh.Address    `json:"unicast" yaml:"unicast"`
	DefaultTTL *uint8          `json:"default_ttl,omitempty" yaml:"default_ttl,omitempty"`
	Info       *DeviceRecord   `json:"device,omitempty" yaml:"device,omitempty"`
	NetKeys    []model.NodeKey `json:"net_keys,omitempty" yaml:"net_keys,omitempty"`
	AppKeys    []model.NodeKey `json:"app_keys,omitempty" yaml:"app_keys,omitempty"`
	Elements   []ElementRecord `json:"elements,omitempty" yaml:"elements,omitempty"`
}

// DeviceRecord mirrors model.DeviceInfo. Its presence marks a node whose
// composition data has been applied.
type DeviceRecord struct {
	CompanyID uint16 `json:"company_id" yaml:"company_id"`
	ProductID uint16 `json:"product_id" yaml:"product_id"`
	VersionID uint16 `json:"version_id" yaml:"version_id"`
	CRPL      uint16 `json:"crpl,omitempty" yaml:"crpl,omitempty"`
	Features  uint16 `json:"features,omitempty" yaml:"features,omitempty"`
}

// ElementRecord mirrors model.Element.
type ElementRecord struct {
	Address  mesh.Address  `json:"address" yaml:"address"`
	Location uint16        `json:"location,omitempty" yaml:"location,omitempty"`
	Models   []ModelRecord `json:"models,omitempty" yaml:"models,omitempty"`
}

// ModelRecord mirrors model.Model.
type ModelRecord struct {
	ID            mesh.ModelID       `json:"id" yaml:"id"`
	Bindings      []uint16           `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	Publish       *mesh.Publish      `json:"publish,omitempty" yaml:"publish,omitempty"`
	Subscriptions []mesh.MeshAddress `json:"subscriptions,omitempty" yaml:"subscriptions,omitempty"`
}

// Snapshot captures the network's current state.
func Snapshot(n *model.Network) *NetworkSnapshot {
	s := &NetworkSnapshot{
		Version:      SnapshotVersion,
		SavedAt:      time.Now(),
		Name:         n.Name(),
		LocalAddress: n.LocalAddress(),
	}

	for _, nk := range n.NetworkKeys() {
		s.NetKeys = append(s.NetKeys, NetworkKeyRecord{Index: nk.Index, Key: KeyBytes(nk.Key), Name: nk.Name})
	}
	for _, ak := range n.ApplicationKeys() {
		s.AppKeys = append(s.AppKeys, ApplicationKeyRecord{
			Index:            ak.Index,
			BoundNetKeyIndex: ak.BoundNetKeyIndex,
			Key:              KeyBytes(ak.Key),
			Name:             ak.Name,
		})
	}
	for _, g := range n.Groups() {
		s.Groups = append(s.Groups, GroupRecord{Name: g.Name, Address: g.Address})
	}
	for _, node := range n.Nodes() {
		s.Nodes = append(s.Nodes, snapshotNode(node))
	}
	return s
}

func snapshotNode(node *model.Node) NodeRecord {
	r := NodeRecord{
		Name:    node.Name(),
		Unicast: node.PrimaryUnicast(),
		NetKeys: node.NetKeys(),
		AppKeys: node.AppKeys(),
	}
	if ttl, ok := node.DefaultTTL(); ok {
		r.DefaultTTL = &ttl
	}
	if node.HasComposition() {
		info := node.DeviceInfo()
		r.Info = &DeviceRecord{
			CompanyID: info.CompanyID,
			ProductID: info.ProductID,
			VersionID: info.VersionID,
			CRPL:      info.CRPL,
			Features:  info.Features,
		}
		for _, element := range node.Elements() {
			er := ElementRecord{Address: element.Address(), Location: element.Location()}
			for _, m := range element.Models() {
				mr := ModelRecord{
					ID:            m.ID(),
					Bindings:      m.Bindings(),
					Subscriptions: m.Subscriptions(),
				}
				if p, ok := m.Publish(); ok {
					mr.Publish = &p
				}
				er.Models = append(er.Models, mr)
			}
			r.Elements = append(r.Elements, er)
		}
	}
	return r
}

// Restore rebuilds a Network from the snapshot.
func (s *NetworkSnapshot) Restore() (*model.Network, error) {
	n := model.NewNetwork(s.Name)
	n.SetLocalAddress(s.LocalAddress)

	for _, rec := range s.NetKeys {
		nk, err := n.AddNetworkKey(rec.Index, rec.Key)
		if err != nil {
			return nil, fmt.Errorf("network key %d: %w", rec.Index, err)
		}
		nk.Name = rec.Name
	}
	for _, rec := range s.AppKeys {
		ak, err := n.AddApplicationKey(rec.Index, rec.BoundNetKeyIndex, rec.Key)
		if err != nil {
			return nil, fmt.Errorf("application key %d: %w", rec.Index, err)
		}
		ak.Name = rec.Name
	}
	for _, rec := range s.Groups {
		if err := n.AddGroup(&model.Group{Name: rec.Name, Address: rec.Address}); err != nil {
			return nil, fmt.Errorf("group %s: %w", rec.Address, err)
		}
	}
	for _, rec := range s.Nodes {
		if err := n.AddNode(restoreNode(rec)); err != nil {
			return nil, fmt.Errorf("node %s: %w", rec.Unicast, err)
		}
	}
	return n, nil
}

func restoreNode(rec NodeRecord) *model.Node {
	node := model.NewNode(rec.Name, rec.Unicast)
	if rec.DefaultTTL != nil {
		node.SetDefaultTTL(*rec.DefaultTTL)
	}

	if rec.Info != nil {
		info := model.DeviceInfo{
			CompanyID: rec.Info.CompanyID,
			ProductID: rec.Info.ProductID,
			VersionID: rec.Info.VersionID,
			CRPL:      rec.Info.CRPL,
			Features:  rec.Info.Features,
		}
		elements := make([]*model.Element, 0, len(rec.Elements))
		for _, er := range rec.Elements {
			models := make([]*model.Model, 0, len(er.Models))
			for _, mr := range er.Models {
				m := model.NewModel(mr.ID)
				m.SetBindings(mr.Bindings)
				m.SetSubscriptions(mr.Subscriptions)
				if mr.Publish != nil {
					m.SetPublish(*mr.Publish)
				}
				models = append(models, m)
			}
			elements = append(elements, model.NewElement(er.Address, er.Location, models...))
		}
		node.ApplyComposition(info, elements)
	}

	for _, k := range rec.NetKeys {
		node.AddNetKey(k.Index)
		if k.Updated {
			node.SetNetKeyUpdated(k.Index)
		}
	}
	for _, k := range rec.AppKeys {
		node.AddAppKey(k.Index)
		if k.Updated {
			node.SetAppKeyUpdated(k.Index)
		}
	}
	return node
}
