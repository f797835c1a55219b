// Package kernel provides the shared domain primitives of the work order service.
//
// The package includes:
//   - UUID: the identifier value object for orders, materials and time sessions
//   - Clock: the time source consulted by status duration accounting
//
// Values are immutable and safe for concurrent use.
package kernel
