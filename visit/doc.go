// Package visit offers generic traversal over conversion sources.
// It provides reflection-backed iteration over slices, arrays and maps
// with simple callback-based visitors.
package visit
