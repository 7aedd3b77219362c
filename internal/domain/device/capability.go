package device

import "context"

// Capability is an optional platform query. It is either Supported with a
// query function or Unsupported, and is resolved once when the platform is
// initialized.
type Capability[T any] struct {
	query func(ctx context.Context) (*T, error)
}

// Supported wraps an available platform query
func Supported[T any](fn func(ctx context.Context) (*T, error)) Capability[T] {
	return Capability[T]{query: fn}
}

// Unsupported marks a capability the platform does not expose
func Unsupported[T any]() Capability[T] {
	return Capability[T]{}
}

// Available reports whether the capability can be queried
func (c Capability[T]) Available() bool {
	return c.query != nil
}

// Query runs the capability. ok is false when the capability is unsupported.
func (c Capability[T]) Query(ctx context.Context) (result *T, ok bool, err error) {
	if c.query == nil {
		return nil, false, nil
	}
	result, err = c.query(ctx)
	return result, true, err
}

// Capabilities groups the optional queries of a bridge
type Capabilities struct {
	Battery   Capability[BatteryInfo]
	Memory    Capability[MemoryInfo]
	DataUsage Capability[DataUsage]
}
