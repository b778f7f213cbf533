package geom

import (
	"fmt"

	"github.com/a-gargiulo/McKenna/doc"
)

type Point struct {
	Tag        int
	X, Y, Z, L float64
}

type Line struct {
	Tag    int
	P1, P2 int
}

// Memory is an in-process kernel that records the entities it is
// given. It backs the mesh bootstrap when no external kernel is
// linked, and the tests.
type Memory struct {
	Points []Point
	Lines  []Line
	Synced bool

	initialized bool
	ran         bool
}

var _ Kernel = (*Memory)(nil)
var _ Lifecycle = (*Memory)(nil)

func (m *Memory) Initialize() error {
	if m.initialized {
		return fmt.Errorf("kernel already initialized")
	}
	m.initialized = true
	return nil
}

func (m *Memory) Finalize() error {
	if !m.initialized {
		return ErrNotInitialized
	}
	m.initialized = false
	return nil
}

func (m *Memory) AddPoint(x, y, z, lc float64) (int, error) {
	if !m.initialized {
		return 0, ErrNotInitialized
	}
	tag := len(m.Points) + 1
	m.Points = append(m.Points, Point{Tag: tag, X: x, Y: y, Z: z, L: lc})
	m.Synced = false
	return tag, nil
}

func (m *Memory) AddLine(p1, p2 int) (int, error) {
	if !m.initialized {
		return 0, ErrNotInitialized
	}
	for _, p := range []int{p1, p2} {
		if p < 1 || p > len(m.Points) {
			return 0, fmt.Errorf("%w: point %d", ErrBadTag, p)
		}
	}
	tag := len(m.Lines) + 1
	m.Lines = append(m.Lines, Line{Tag: tag, P1: p1, P2: p2})
	m.Synced = false
	return tag, nil
}

func (m *Memory) Synchronize() error {
	if !m.initialized {
		return ErrNotInitialized
	}
	m.Synced = true
	return nil
}

// Run is a no-op for the in-process kernel. An external kernel would
// hand control to its interactive loop here.
func (m *Memory) Run() error {
	if !m.initialized {
		return ErrNotInitialized
	}
	m.ran = true
	return nil
}

// Node renders the recorded entities as a document.
func (m *Memory) Node() *doc.Node {
	points := make([]*doc.Node, len(m.Points))
	for i, p := range m.Points {
		points[i] = doc.FromKeyVals([]doc.KeyVal{
			{Key: doc.FromString("tag"), Val: doc.FromInt(int64(p.Tag))},
			{Key: doc.FromString("x"), Val: doc.FromFloat(p.X)},
			{Key: doc.FromString("y"), Val: doc.FromFloat(p.Y)},
			{Key: doc.FromString("z"), Val: doc.FromFloat(p.Z)},
			{Key: doc.FromString("lc"), Val: doc.FromFloat(p.L)},
		})
	}
	lines := make([]*doc.Node, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = doc.FromKeyVals([]doc.KeyVal{
			{Key: doc.FromString("tag"), Val: doc.FromInt(int64(l.Tag))},
			{Key: doc.FromString("p1"), Val: doc.FromInt(int64(l.P1))},
			{Key: doc.FromString("p2"), Val: doc.FromInt(int64(l.P2))},
		})
	}
	return doc.FromKeyVals([]doc.KeyVal{
		{Key: doc.FromString("points"), Val: doc.FromSlice(points)},
		{Key: doc.FromString("lines"), Val: doc.FromSlice(lines)},
	})
}
