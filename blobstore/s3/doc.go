// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx)
//	mux.Handle("s3", store)
//	blob, err := mux.Open(ctx, "s3://my-bucket/exports/stops.arrow")
//
// Objects are fetched whole with the S3 transfer manager, using parallel
// ranged GETs for large files.
package s3
