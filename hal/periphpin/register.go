package periphpin

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio/gpioreg"

	halgpio "avrgpio/hal/gpio"
	"avrgpio/hal/port"
)

// Register adds every pin of every port group to gpioreg under its
// datasheet name ("PB0" ... "PD7") and returns the groups. On failure the
// pins this call already added are removed again.
func Register(params halgpio.Params) ([]*Group, error) {
	groups := make([]*Group, 0, len(port.IDs()))
	var added []string
	for _, id := range port.IDs() {
		g, err := NewGroup(id, params)
		if err != nil {
			rollback(added)
			return nil, errors.Wrapf(err, "bind %s", id)
		}
		for _, p := range g.pins {
			if err := gpioreg.Register(p); err != nil {
				rollback(added)
				return nil, errors.Wrapf(err, "register %s", p.Name())
			}
			added = append(added, p.Name())
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func rollback(names []string) {
	for _, n := range names {
		_ = gpioreg.Unregister(n)
	}
}

// Unregister removes everything Register added.
func Unregister() error {
	for _, id := range port.IDs() {
		for i := uint8(0); i < port.Width; i++ {
			if err := gpioreg.Unregister(port.Name(id, i)); err != nil {
				return errors.Wrapf(err, "unregister %s", port.Name(id, i))
			}
		}
	}
	return nil
}

// Alias registers a board-level name, e.g. "LED" -> "PB5".
func Alias(alias, pinName string) error {
	return errors.Wrap(gpioreg.RegisterAlias(alias, pinName), "alias "+alias)
}
