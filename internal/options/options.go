// Package options implements the functional-options pattern shared by
// every constructor in this module that takes optional configuration:
// cache.New (WithCapacity, WithMoveStep) and bundle.NewEncoder
// (WithCompression, WithBigEndian) are both built on Option[T].
//
// A single generic implementation here means each package only
// declares its own WithXxx constructors; the apply-in-order,
// stop-on-first-error mechanics live in one place instead of being
// reimplemented per package.
package options

// Option configures a value of type T, returning an error if the
// configuration is invalid (e.g. a capacity of zero).
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function into an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New wraps fn as an Option whose configuration may fail validation.
// Every WithXxx constructor in this module is built on it.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts against target in order, stopping at the first
// error. Constructors call this once after setting their defaults.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError wraps fn as an Option for configuration that cannot fail
// (e.g. toggling a bool flag).
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
