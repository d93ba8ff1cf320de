package playground

import "github.com/gogpu/geonym"

// Action is a navigation request from an interactive driver.
type Action int

// Navigation actions.
const (
	None Action = iota
	Next
	Previous
	Regenerate
	Select
)

// Navigate performs a navigation action relative to the current scene and
// returns the scene to show next, or nil when nothing changes. index is the
// zero-based registration index used by Select; out of range indexes are
// ignored. Regenerate keeps the current parameters.
func (p *Playground) Navigate(a Action, index int, current *geonym.Scene) (*geonym.Scene, error) {
	var id string
	switch a {
	case Next, Previous:
		offset := 1
		if a == Previous {
			offset = -1
		}
		sp, err := p.reg.Neighbor(offset)
		if err != nil {
			return nil, err
		}
		id = sp.Descriptor().ID
	case Regenerate:
		if current == nil {
			return nil, nil
		}
		// A fresh seed even when the configuration pins one.
		return p.Show(current.Space.Descriptor().ID, p.seeds(), current.Params)
	case Select:
		all := p.reg.Spaces()
		if index < 0 || index >= len(all) {
			return nil, nil
		}
		id = all[index].Descriptor().ID
	default:
		return nil, nil
	}
	return p.Show(id, 0, nil)
}
