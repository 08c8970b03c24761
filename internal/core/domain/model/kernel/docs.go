// Package kernel provides the value objects shared by every aggregate of the store admin
// domain.
//
// The package includes:
//   - ID: an opaque, validated identifier ("ORD-2023-001", "CUST-001", "6")
//   - Money: a non-negative decimal amount with two-digit display precision
//
// Both types reject their zero value through a constructor guard, so a value that did
// not pass validation can never reach an aggregate.
package kernel
