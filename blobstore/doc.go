// Package blobstore provides read access to input files, wherever they live.
//
// BlobStore opens immutable blobs by name. Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, memory-mapped
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3, fetched with the S3 transfer manager
//
// Mux routes "scheme://name" URIs to a store; plain paths go to the local store.
//
// # Compression
//
// Open unwraps ".zst", ".gz" and ".lz4" files transparently:
//
//	blob, err := blobstore.Open(ctx, mux, "optics_clustering_dataset.npy.zst")
//	if err != nil { ... }
//	defer blob.Close()
package blobstore
