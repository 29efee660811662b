// Package lifecycle provides the building blocks shared by every entity status
// machine in the governance domain.
//
// The package includes:
//   - Kind: the closed set of entity kinds that own a status lifecycle or a rule set
//   - Table: an immutable successor table answering IsValidTransition(from, to)
//   - Names: the bidirectional mapping between a status value and its wire code
//
// Tables are declared once per entity kind as package-level values and are never
// mutated after construction, so they can be shared by concurrent requests
// without synchronization.
package lifecycle
