package marrow

import (
	"fmt"
	"reflect"
)

// Registry holds the codecs available to a row-decode pipeline. Lookup is
// governed solely by each codec's compatibility predicate; the registry adds
// no policy of its own.
type Registry struct {
	codecs []Codec
}

// NewRegistry creates a registry with the built-in codecs registered.
func NewRegistry() *Registry {
	r := &Registry{}
	r.register(Time)
	return r
}

// Find returns the first registered codec whose CanDecode accepts the column
// and host type pair.
func (r *Registry) Find(col Column, hostType reflect.Type) (Codec, error) {
	for _, c := range r.codecs {
		if c.CanDecode(col, hostType) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no codec decodes %s into %s", col.Type, hostType)
}

// FindEncoder returns the first registered codec that can encode v.
func (r *Registry) FindEncoder(v any) (Codec, error) {
	for _, c := range r.codecs {
		if c.CanEncode(v) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no codec encodes %T", v)
}

// Register adds a codec to the registry. Codecs registered earlier win when
// several predicates accept the same column.
func (r *Registry) Register(c Codec) {
	r.codecs = append(r.codecs, c)
}

// register is the internal method for initial setup
func (r *Registry) register(c Codec) {
	r.codecs = append(r.codecs, c)
}
