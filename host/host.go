// Package host defines the boundary to the image-editing host document.
//
// The host owns command execution, the document object model, and the
// serialization of document-mutating work; none of that is implemented
// here. This package only declares the narrow interfaces a host adapter
// supplies and the caller-side orchestration that compiles declarative
// outlines and submits them as one shape.
package host

import (
	"fmt"

	proxystuff "github.com/pappnu/proxy-stuff"
)

// Document is the minimal surface of a host document needed to turn
// compiled subpaths into a shape. Implementations are host adapters;
// their errors are returned unmodified.
type Document interface {
	// CreatePathItem creates a named path item from the given subpaths.
	// Subpaths in the same call merge according to their combine operation.
	CreatePathItem(name string, subpaths []*proxystuff.Subpath) (PathItem, error)
}

// PathItem is a handle to a path item created in a host document.
type PathItem interface {
	// Name returns the path item's name in the document.
	Name() string
	// Select marks the path item as the document's active selection.
	Select() error
}

// Scheduler is the host's atomic-operation gate. Run executes work as one
// undoable modal unit, serialized against all other document-mutating
// operations; queuing and cancellation are the host's business. The work
// function must not block on its own.
type Scheduler interface {
	Run(label string, work func() error) error
}

// CreateShapeLayer compiles the given outlines and submits them to the
// document as a single named shape, inside one scheduler unit. All
// outlines carry the additive combine operation, so the host merges them
// into one composite area. The created path item is left selected.
//
// Compilation errors and host errors both abort the unit and propagate
// unmodified; no retries are performed.
func CreateShapeLayer(doc Document, sched Scheduler, name string, outlines [][]proxystuff.PointSpec, opts ...proxystuff.CompileOption) (PathItem, error) {
	var item PathItem
	err := sched.Run(fmt.Sprintf("Create Shape %q", name), func() error {
		subs, err := proxystuff.CompileAll(outlines, opts...)
		if err != nil {
			return err
		}
		item, err = doc.CreatePathItem(name, subs)
		if err != nil {
			return err
		}
		proxystuff.Logger().Info("created path item", "name", name, "subpaths", len(subs))
		return item.Select()
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
