// Package mmap maps whole input files read-only.
//
// Each tool decodes its .npy or Arrow input exactly once, front to back, so
// a Mapping covers the full file and is released as soon as decoding ends:
//
//	m, err := mmap.Map("optics_clustering_dataset.npy")
//	if err != nil { ... }
//	defer m.Close()
//	decode(m.Data())
package mmap
