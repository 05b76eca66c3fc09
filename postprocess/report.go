package postprocess

// ChangeType identifies the kind of structural change the engine applied.
type ChangeType string

const (
	// ChangeRemovedOperation indicates an operation was removed from a path entry.
	ChangeRemovedOperation ChangeType = "removed-operation"
	// ChangeRemovedPathItem indicates a path entry with no remaining operations
	// was removed from the document.
	ChangeRemovedPathItem ChangeType = "removed-path-item"
)

// Change records a single structural change applied to the document.
// Property-phase mutations are not recorded: property visitors transform
// nodes in place and return nothing the engine can observe.
type Change struct {
	// Type identifies the category of change
	Type ChangeType
	// Path is the JSON path to the changed location (e.g., "paths./pets.get")
	Path string
	// Description is a human-readable description of the change
	Description string
}

// Report contains the structural changes applied by one Process call.
type Report struct {
	// Changes lists every removal in the order it was applied
	Changes []Change
	// RemovedOperations is the number of operations removed
	RemovedOperations int
	// RemovedPathItems is the number of path entries removed by cascade
	RemovedPathItems int
}

// HasChanges returns true if the sweep removed anything.
func (r *Report) HasChanges() bool {
	return len(r.Changes) > 0
}

func (r *Report) addOperationRemoval(path, description string) {
	r.Changes = append(r.Changes, Change{
		Type:        ChangeRemovedOperation,
		Path:        path,
		Description: description,
	})
	r.RemovedOperations++
}

func (r *Report) addPathItemRemoval(path, description string) {
	r.Changes = append(r.Changes, Change{
		Type:        ChangeRemovedPathItem,
		Path:        path,
		Description: description,
	})
	r.RemovedPathItems++
}
