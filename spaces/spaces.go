package spaces

import "github.com/gogpu/geonym"

// All returns a fresh instance of every shipped space, in navigation order.
func All() []geonym.Space {
	return []geonym.Space{
		NewBurrito(),
		NewMandala(),
		NewZen(),
	}
}

// RegisterAll registers every shipped space with reg.
func RegisterAll(reg *geonym.Registry) error {
	for _, sp := range All() {
		if err := reg.Register(sp); err != nil {
			return err
		}
	}
	return nil
}
