// Package fs provides a small filesystem abstraction for output writers.
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test wrapper that injects create, write, sync, close and
//     rename failures
//
// [WriteAtomic] creates a temp file, writes, syncs and renames it into place:
//
//	err := fs.WriteAtomic(fs.Default, "out.csv", 0o644, func(w io.Writer) error { ... })
//
// Tests inject [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.SetFault(fs.Fault{FailAfterBytes: 16})
package fs
