// Package domain holds the greeting value and the error taxonomy shared by
// the service, HTTP and CLI layers.
package domain

// Greeting is the fixed message a package greets with.
// It is a value: copies never share state with the greeter that produced it.
type Greeting struct {
	// Package is the distribution name of the package that greeted.
	Package string

	// Message is the greeting literal.
	Message string
}

// NewGreeting pairs a package name with its greeting message.
func NewGreeting(pkg, message string) Greeting {
	return Greeting{Package: pkg, Message: message}
}
