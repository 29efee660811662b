package rules

import "governance/internal/core/domain/model/kernel"

// countOtherActive counts active entries whose id differs from self.
func countOtherActive[T any](items []T, self *kernel.UUID, id func(T) kernel.UUID, active func(T) bool) int {
	n := 0
	for _, item := range items {
		if self != nil && id(item).IsEqual(*self) {
			continue
		}
		if active(item) {
			n++
		}
	}
	return n
}
