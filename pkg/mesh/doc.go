// Package mesh provides the addressing primitives shared by every layer
// of the configuration stack.
//
// # Addresses
//
// A raw Address is 16 bits wide and falls into one of four kinds:
//
//	0x0000          unassigned
//	0x0001..0x7FFF  unicast (a single element on a node)
//	0x8000..0xBFFF  virtual (derived from a 128-bit label UUID)
//	0xC000..0xFFFF  group
//
// A MeshAddress pairs a raw address with the full virtual label when the
// address is virtual and the label is known locally. Only the 16-bit
// address travels over the radio; the label exists so that two parties
// that both know it can agree on which virtual address they mean.
//
// # Publication
//
// Publish describes a model's outbound destination together with its
// transmission parameters. It is carried verbatim in publication messages
// and stored verbatim on the model it configures.
package mesh
