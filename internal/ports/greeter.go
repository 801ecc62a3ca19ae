// Package ports defines the interfaces the application layer depends on.
// Adapters and packaged greeters implement them; the application never
// imports a concrete greeter type directly.
package ports

// Greeter is implemented by every packaged greeter.
// SayHello takes no arguments, never fails, and returns the same literal on every call.
type Greeter interface {
	SayHello() string
}

// GreeterFunc adapts a plain function to the Greeter interface.
type GreeterFunc func() string

// SayHello calls f.
func (f GreeterFunc) SayHello() string {
	return f()
}
