// Package pyhello provides the pyhello greeter and its package declaration.
package pyhello

// Greeting is the literal returned by HelloPython.SayHello.
const Greeting = "Hello, Python!"

// HelloPython greets from the pyhello package.
// The zero value is ready to use and safe for concurrent use.
type HelloPython struct{}

// New returns a HelloPython greeter.
func New() HelloPython {
	return HelloPython{}
}

// SayHello returns the fixed pyhello greeting.
func (HelloPython) SayHello() string {
	return Greeting
}
