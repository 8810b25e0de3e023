package optics

import "github.com/RoaringBitmap/roaring/v2"

func newBitmap(ids ...uint32) *roaring.Bitmap {
	return roaring.BitmapOf(ids...)
}
