package param

import (
	"slices"
)

// Parameter is a named physical or nuisance quantity.
type Parameter struct {
	Value float64 `json:"value"`
	Vary  bool    `json:"vary"`

	// Linear marks an offset that is profiled out analytically when it is not
	// varied.
	Linear bool `json:"linear,omitempty"`
}

// Default returns the parameter assigned to a freshly registered slot.
func Default() Parameter {
	return Parameter{Value: 0, Vary: true}
}

// Vector is the shared parameter table.
type Vector struct {
	indices map[string]int
	names   []string
	slots   []Parameter

	// varying caches the vary mask; nil means stale.
	varying []int
}

// NewVector returns an empty vector.
func NewVector() *Vector {
	return &Vector{
		indices: make(map[string]int),
	}
}

// Register returns the slot of name, appending a default parameter if the
// name is new.
func (v *Vector) Register(name string) int {
	if i, ok := v.indices[name]; ok {
		return i
	}
	i := len(v.slots)
	v.indices[name] = i
	v.slots = append(v.slots, Default())
	v.names = append(v.names, name)
	v.varying = nil
	return i
}

// Add registers name and assigns p to its slot.
func (v *Vector) Add(name string, p Parameter) int {
	i := v.Register(name)
	v.slots[i] = p
	v.varying = nil
	return i
}

// Len returns the number of slots.
func (v *Vector) Len() int {
	return len(v.slots)
}

// Has reports whether name is registered.
func (v *Vector) Has(name string) bool {
	_, ok := v.indices[name]
	return ok
}

// Index returns the slot of name.
func (v *Vector) Index(name string) (int, bool) {
	i, ok := v.indices[name]
	return i, ok
}

// Names returns the parameter names in slot order.
func (v *Vector) Names() []string {
	return slices.Clone(v.names)
}

// Name returns the name stored at slot i.
func (v *Vector) Name(i int) string {
	return v.names[i]
}

// Get returns the value of name.
func (v *Vector) Get(name string) (float64, error) {
	i, ok := v.indices[name]
	if !ok {
		return 0, unknown(name)
	}
	return v.slots[i].Value, nil
}

// Set writes the value of name.
func (v *Vector) Set(name string, value float64) error {
	i, ok := v.indices[name]
	if !ok {
		return unknown(name)
	}
	v.slots[i].Value = value
	return nil
}

// Param returns the full record of name.
func (v *Vector) Param(name string) (Parameter, error) {
	i, ok := v.indices[name]
	if !ok {
		return Parameter{}, unknown(name)
	}
	return v.slots[i], nil
}

// SetParam replaces the record of an already registered name.
func (v *Vector) SetParam(name string, p Parameter) error {
	i, ok := v.indices[name]
	if !ok {
		return unknown(name)
	}
	if v.slots[i].Vary != p.Vary {
		v.varying = nil
	}
	v.slots[i] = p
	return nil
}

// SetVary changes the vary flag of name.
func (v *Vector) SetVary(name string, vary bool) error {
	i, ok := v.indices[name]
	if !ok {
		return unknown(name)
	}
	if v.slots[i].Vary != vary {
		v.slots[i].Vary = vary
		v.varying = nil
	}
	return nil
}

// SetLinear changes the linear flag of name.
func (v *Vector) SetLinear(name string, linear bool) error {
	i, ok := v.indices[name]
	if !ok {
		return unknown(name)
	}
	v.slots[i].Linear = linear
	return nil
}

// Slot returns the record stored at slot i.
func (v *Vector) Slot(i int) Parameter {
	return v.slots[i]
}

// Value returns the value stored at slot i.
func (v *Vector) Value(i int) float64 {
	return v.slots[i].Value
}

// SetValue writes the value stored at slot i.
func (v *Vector) SetValue(i int, value float64) {
	v.slots[i].Value = value
}

// VaryMask returns the varying slots in slot order.
// The returned slice must not be modified.
func (v *Vector) VaryMask() []int {
	if v.varying == nil {
		mask := make([]int, 0, len(v.slots))
		for i, p := range v.slots {
			if p.Vary {
				mask = append(mask, i)
			}
		}
		v.varying = mask
	}
	return v.varying
}

// VaryNames returns the names of the varying slots in slot order.
func (v *Vector) VaryNames() []string {
	mask := v.VaryMask()
	out := make([]string, len(mask))
	for j, i := range mask {
		out[j] = v.names[i]
	}
	return out
}

// FreeValues returns the values of the varying slots in slot order.
func (v *Vector) FreeValues() []float64 {
	mask := v.VaryMask()
	out := make([]float64, len(mask))
	for j, i := range mask {
		out[j] = v.slots[i].Value
	}
	return out
}

// SetFreeValues writes values[j] into the j-th varying slot.
func (v *Vector) SetFreeValues(values []float64) error {
	mask := v.VaryMask()
	if len(values) != len(mask) {
		return &ErrShapeMismatch{Expected: len(mask), Actual: len(values)}
	}
	for j, i := range mask {
		v.slots[i].Value = values[j]
	}
	return nil
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	c := &Vector{
		indices: make(map[string]int, len(v.indices)),
		names:   slices.Clone(v.names),
		slots:   slices.Clone(v.slots),
	}
	for k, i := range v.indices {
		c.indices[k] = i
	}
	return c
}
