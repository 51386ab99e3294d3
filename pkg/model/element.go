package model

import "github.com/openmesh-protocol/meshcfg-go/pkg/mesh"

// Element is an addressable sub-unit of a node hosting models. Its model
// membership is fixed once composition data is applied.
type Element struct {
	address  mesh.Address
	location uint16
	models   []*Model
}

// NewElement creates an element at the given unicast address.
func NewElement(address mesh.Address, location uint16, models ...*Model) *Element {
	return &Element{address: address, location: location, models: models}
}

// Address returns the element's unicast address.
func (e *Element) Address() mesh.Address {
	return e.address
}

// Location returns the element's descriptor location.
func (e *Element) Location() uint16 {
	return e.location
}

// Models returns the element's models.
func (e *Element) Models() []*Model {
	return e.models
}

// Model returns the model with the given ID.
func (e *Element) Model(id mesh.ModelID) (*Model, error) {
	for _, m := range e.models {
		if m.ID() == id {
			return m, nil
		}
	}
	return nil, ErrModelNotFound
}
