package parameter

// Collection is an ordered sequence of parameters from a single source.
// Order is insignificant for comparison but preserved for deterministic
// output.
type Collection []Parameter

// Find returns the first parameter named name, or nil when there is none.
// Parameter counts are low (150-200 per group), so a linear scan is fine.
func (c Collection) Find(name string) Parameter {
	for _, p := range c {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// Names returns the parameter names in collection order.
func (c Collection) Names() []string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name())
	}
	return names
}
