// Package order contains the order aggregate of the rug-cleaning workflow:
// the Order root, its Items, the closed status/material/condition
// enumerations and the business rules connecting them — measurement-driven
// pricing, the client approval gate with its escalation latch, and the
// delivery-readiness rule. Everything here is pure with respect to its
// inputs and testable without storage.
package order
