// Package kernel provides the shared identifier type used across the governance
// domain model. UUID is immutable, validates against the nil value and
// round-trips through JSON text, so payload fields, snapshots read from the
// database and aggregates all use the same identifier representation.
package kernel
