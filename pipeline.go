package grade

import "github.com/google/uuid"

// Pipeline is an ordered collection of filter instances. Storage order
// is newest-first, like a layer stack viewed from the top: Add
// prepends, so index 0 is always the most recently added filter and
// the last one to execute. The only place this ordering is reversed is
// ExecutionOrder; no other code walks the list backwards.
//
// All mutations validate at the boundary and report failures as
// errors; the pipeline is never left holding an instance it rejected.
// A Pipeline is owned by one caller and is not safe for concurrent
// mutation.
type Pipeline struct {
	instances []*Instance
}

// NewPipeline creates an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Add creates an enabled instance of kind with default parameters and
// prepends it, making it the last filter to run. It returns the new
// instance so the caller can keep its ID.
func (p *Pipeline) Add(kind Kind) (*Instance, error) {
	inst := NewInstance(kind)
	if err := p.AddInstance(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// AddInstance prepends a caller-built instance. The instance must have
// params matching its kind that pass validation, and an ID not already
// present; an empty ID is replaced with a fresh one.
func (p *Pipeline) AddInstance(inst *Instance) error {
	if !validKind(inst.Kind) {
		return &InvalidParamsError{ID: inst.ID, Kind: inst.Kind, Reason: "unknown kind"}
	}
	if inst.Params == nil || inst.Params.Kind() != inst.Kind {
		return &InvalidParamsError{ID: inst.ID, Kind: inst.Kind, Reason: "params shape does not match kind"}
	}
	if err := inst.Params.Validate(); err != nil {
		return err
	}
	if inst.ID == "" {
		inst.ID = uuid.NewString()
	}
	if p.Find(inst.ID) != nil {
		return ErrDuplicateID
	}
	p.instances = append([]*Instance{inst}, p.instances...)
	return nil
}

// Remove deletes the instance with the given id.
func (p *Pipeline) Remove(id string) error {
	i := p.indexOf(id)
	if i < 0 {
		return ErrInstanceNotFound
	}
	p.instances = append(p.instances[:i], p.instances[i+1:]...)
	return nil
}

// Move repositions an instance to index in storage order, where 0 is
// the top of the stack (last to execute). Indexes beyond either end
// are clamped.
func (p *Pipeline) Move(id string, index int) error {
	i := p.indexOf(id)
	if i < 0 {
		return ErrInstanceNotFound
	}
	inst := p.instances[i]
	p.instances = append(p.instances[:i], p.instances[i+1:]...)

	if index < 0 {
		index = 0
	}
	if index > len(p.instances) {
		index = len(p.instances)
	}
	p.instances = append(p.instances, nil)
	copy(p.instances[index+1:], p.instances[index:])
	p.instances[index] = inst
	return nil
}

// SetEnabled toggles an instance. Disabled instances keep their place
// and parameters but are skipped entirely during execution, not
// applied as identity.
func (p *Pipeline) SetEnabled(id string, enabled bool) error {
	inst := p.Find(id)
	if inst == nil {
		return ErrInstanceNotFound
	}
	inst.Enabled = enabled
	return nil
}

// UpdateParams replaces an instance's parameters after validating
// them. The kind is fixed at creation: params of any other kind are
// rejected, and a rejected update leaves the old parameters in place.
func (p *Pipeline) UpdateParams(id string, params Params) error {
	inst := p.Find(id)
	if inst == nil {
		return ErrInstanceNotFound
	}
	if params == nil || params.Kind() != inst.Kind {
		return &InvalidParamsError{ID: id, Kind: inst.Kind, Reason: "params shape does not match kind"}
	}
	if err := params.Validate(); err != nil {
		return err
	}
	inst.Params = params
	return nil
}

// Find returns the instance with the given id, or nil.
func (p *Pipeline) Find(id string) *Instance {
	if i := p.indexOf(id); i >= 0 {
		return p.instances[i]
	}
	return nil
}

// Len returns the number of instances, enabled or not.
func (p *Pipeline) Len() int {
	return len(p.instances)
}

// Instances returns the instances in storage order (newest first). The
// slice is a copy; the instances themselves are shared.
func (p *Pipeline) Instances() []*Instance {
	out := make([]*Instance, len(p.instances))
	copy(out, p.instances)
	return out
}

// ExecutionOrder returns the instances in the order they run: oldest
// first, so the filter at the bottom of the stack touches the raster
// first and the newest touches it last. Every consumer of execution
// order goes through this one reversal.
func (p *Pipeline) ExecutionOrder() []*Instance {
	n := len(p.instances)
	out := make([]*Instance, n)
	for i, inst := range p.instances {
		out[n-1-i] = inst
	}
	return out
}

// indexOf returns the storage index of id, or -1.
func (p *Pipeline) indexOf(id string) int {
	for i, inst := range p.instances {
		if inst.ID == id {
			return i
		}
	}
	return -1
}
