// Package form keeps the state of a parameter form between plot requests.
package form

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/newton-rings/entity"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
	"github.com/AnkushinDaniil/newton-rings/interference"
)

type State uint8

const (
	Idle State = iota
	Plotted
	Invalid
)

func (s State) String() string {
	switch s {
	case Plotted:
		return "plotted"
	case Invalid:
		return "invalid"
	default:
		return "idle"
	}
}

// Form owns the last successfully plotted curve. A refused submission
// leaves the curve in place.
type Form struct {
	mu    sync.Mutex
	name  string
	state State
	curve *entity.Curve
}

func New(name string) *Form {
	return &Form{name: name}
}

// Submit plots p. On invalid input it returns parameters.ErrInvalidParameters
// and keeps the previous curve.
func (f *Form) Submit(p parameters.Parameters) (*entity.Curve, error) {
	curve, err := interference.NewCurve(f.name, p)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = Invalid
		log.WithError(err).Warn("Plot refused")
		return nil, err
	}
	f.state = Plotted
	f.curve = curve
	return curve, nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Curve returns the last plotted curve, nil if nothing was plotted yet.
func (f *Form) Curve() *entity.Curve {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.curve
}
