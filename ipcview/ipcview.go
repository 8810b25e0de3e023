// Package ipcview decodes Arrow IPC files and prints them as text tables.
package ipcview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hupe1980/optics/blobstore"
)

// NullString is printed for null cells.
const NullString = "null"

// Read decodes every record batch of the IPC file in b into one table.
// Mapped blobs are read in place. The table owns copies of the buffers and
// stays valid after b is closed; the caller must Release it.
func Read(ctx context.Context, b blobstore.Blob) (arrow.Table, error) {
	data, err := blobstore.Bytes(b)
	if err != nil {
		return nil, fmt.Errorf("ipcview: read: %w", err)
	}
	fr, err := ipc.NewFileReader(bytes.NewReader(data), ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, fmt.Errorf("ipcview: open: %w", err)
	}
	defer fr.Close()

	recs := make([]arrow.Record, 0, fr.NumRecords())
	defer func() {
		for _, r := range recs {
			r.Release()
		}
	}()

	for i := 0; i < fr.NumRecords(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := fr.RecordAt(i)
		if err != nil {
			return nil, fmt.Errorf("ipcview: batch %d: %w", i, err)
		}
		recs = append(recs, rec)
	}

	return array.NewTableFromRecords(fr.Schema(), recs), nil
}

// Print writes the schema followed by every row of tbl.
func Print(w io.Writer, tbl arrow.Table) error {
	schema := tbl.Schema()
	for _, f := range schema.Fields() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", escapeCell(f.Name), f.Type); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "----"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	names := make([]string, schema.NumFields())
	for i, f := range schema.Fields() {
		names[i] = escapeCell(f.Name)
	}
	fmt.Fprintln(tw, strings.Join(names, "\t"))

	tr := array.NewTableReader(tbl, -1)
	defer tr.Release()

	cells := make([]string, len(names))
	for tr.Next() {
		rec := tr.Record()
		for row := 0; row < int(rec.NumRows()); row++ {
			for c := range cells {
				col := rec.Column(c)
				if col.IsNull(row) {
					cells[c] = NullString
				} else {
					cells[c] = escapeCell(col.ValueStr(row))
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
	}
	if err := tr.Err(); err != nil {
		return err
	}
	return tw.Flush()
}

// cellEscaper keeps every cell on one line and in one column; tabwriter
// treats \t and \v as cell breaks and \n and \f as line breaks.
var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\v", `\v`,
	"\f", `\f`,
)

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

// View opens uri from store, decodes it and prints it to w.
func View(ctx context.Context, store blobstore.BlobStore, uri string, w io.Writer) error {
	b, err := blobstore.Open(ctx, store, uri)
	if err != nil {
		return err
	}
	defer b.Close()

	tbl, err := Read(ctx, b)
	if err != nil {
		return fmt.Errorf("%s: %w", uri, err)
	}
	defer tbl.Release()

	return Print(w, tbl)
}
