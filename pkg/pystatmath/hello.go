// Package pystatmath provides the pystatmath greeter and its package declaration.
package pystatmath

// Greeting is the literal returned by HelloStatmath.SayHello.
const Greeting = "Hello, statmath!"

// HelloStatmath greets from the pystatmath package.
type HelloStatmath struct{}

// New returns a HelloStatmath greeter.
func New() HelloStatmath {
	return HelloStatmath{}
}

// SayHello returns the fixed pystatmath greeting.
func (HelloStatmath) SayHello() string {
	return Greeting
}
