// Package geom defines the narrow geometry-kernel capability surface
// the mesh bootstrap consumes, and builds the 1-D burner domain on
// it. Mesh generation algorithms and geometry kernels proper live
// elsewhere.
package geom

import (
	"errors"
	"fmt"

	"github.com/a-gargiulo/McKenna/config"
	"github.com/a-gargiulo/McKenna/debug"
)

var (
	ErrNotInitialized = errors.New("kernel not initialized")
	ErrBadTag         = errors.New("unknown entity tag")
)

// Kernel is the capability surface a geometry backend must provide.
// Tags returned by AddPoint and AddLine identify entities in later
// calls.
type Kernel interface {
	AddPoint(x, y, z, lc float64) (int, error)
	AddLine(p1, p2 int) (int, error)
	Synchronize() error
	Run() error
}

// Lifecycle is implemented by kernels that need explicit setup and
// teardown around use.
type Lifecycle interface {
	Initialize() error
	Finalize() error
}

// Session runs f against k. When k carries a Lifecycle, it is
// initialized first and finalized on every exit path, including
// panics in f.
func Session(k Kernel, f func(Kernel) error) (err error) {
	lc, ok := k.(Lifecycle)
	if ok {
		if err := lc.Initialize(); err != nil {
			return err
		}
		defer func() {
			ferr := lc.Finalize()
			if err == nil {
				err = ferr
			}
		}()
	}
	return f(k)
}

// Domain holds the entity tags of the built 1-D burner domain.
type Domain struct {
	Inlet  int
	Outlet int
	Axis   int
}

// Build constructs the 1-D domain on k: a point at the burner
// surface, a point at the domain width, and the connecting line, all
// with the configured minimum grid size as characteristic length.
// The kernel is synchronized after construction.
func Build(k Kernel, cfg *config.Config) (*Domain, error) {
	lc := cfg.Settings.Meshing.GridMinSize
	width := cfg.Geometry.DomainWidth
	if width <= 0 {
		return nil, fmt.Errorf("domain width must be positive, got %v", width)
	}
	inlet, err := k.AddPoint(0, 0, 0, lc)
	if err != nil {
		return nil, err
	}
	outlet, err := k.AddPoint(width, 0, 0, lc)
	if err != nil {
		return nil, err
	}
	axis, err := k.AddLine(inlet, outlet)
	if err != nil {
		return nil, err
	}
	if err := k.Synchronize(); err != nil {
		return nil, err
	}
	if debug.Mesh() {
		debug.Logf("built domain: inlet %d, outlet %d, axis %d, width %v, lc %v\n",
			inlet, outlet, axis, width, lc)
	}
	return &Domain{Inlet: inlet, Outlet: outlet, Axis: axis}, nil
}
