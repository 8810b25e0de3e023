package ipcview

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/optics/blobstore"
)

var testSchema = arrow.NewSchema([]arrow.Field{
	{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	{Name: "name", Type: arrow.BinaryTypes.String, Nullable: true},
	{Name: "score", Type: arrow.PrimitiveTypes.Float64},
}, nil)

// writeIPC encodes one record batch per entry of batches; each batch is a
// list of ids, names derive from ids and id 3 has a null name.
func writeIPC(t *testing.T, batches [][]int64) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := ipc.NewFileWriter(&buf, ipc.WithSchema(testSchema), ipc.WithAllocator(memory.DefaultAllocator))
	require.NoError(t, err)

	b := array.NewRecordBuilder(memory.DefaultAllocator, testSchema)
	defer b.Release()

	for _, ids := range batches {
		for _, id := range ids {
			b.Field(0).(*array.Int64Builder).Append(id)
			if id == 3 {
				b.Field(1).(*array.StringBuilder).AppendNull()
			} else {
				b.Field(1).(*array.StringBuilder).Append("row" + string(rune('a'+id)))
			}
			b.Field(2).(*array.Float64Builder).Append(float64(id) / 2)
		}
		rec := b.NewRecord()
		require.NoError(t, w.Write(rec))
		rec.Release()
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestRead_ConcatenatesBatches(t *testing.T) {
	data := writeIPC(t, [][]int64{{0, 1}, {2, 3, 4}, {5}})

	tbl, err := Read(context.Background(), blobstore.NewBytesBlob(data))
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, int64(6), tbl.NumRows())
	assert.Equal(t, int64(3), tbl.NumCols())
	assert.True(t, tbl.Schema().Equal(testSchema))
}

func TestPrint(t *testing.T) {
	data := writeIPC(t, [][]int64{{0, 1}, {2, 3}})

	tbl, err := Read(context.Background(), blobstore.NewBytesBlob(data))
	require.NoError(t, err)
	defer tbl.Release()

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, tbl))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3+1+1+4)
	assert.Equal(t, "id: int64", lines[0])
	assert.Equal(t, "name: utf8", lines[1])
	assert.Equal(t, "score: float64", lines[2])
	assert.Equal(t, "----", lines[3])
	assert.Equal(t, []string{"id", "name", "score"}, strings.Fields(lines[4]))

	assert.Equal(t, []string{"0", "rowa", "0"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{"1", "rowb", "0.5"}, strings.Fields(lines[6]))
	assert.Equal(t, []string{"2", "rowc", "1"}, strings.Fields(lines[7]))
	assert.Equal(t, []string{"3", NullString, "1.5"}, strings.Fields(lines[8]))
}

func TestPrint_RowCountIndependentOfBatching(t *testing.T) {
	ids := []int64{0, 1, 2, 3, 4, 5, 6, 7}
	layouts := [][][]int64{
		{ids},
		{ids[:1], ids[1:]},
		{ids[:3], ids[3:5], ids[5:]},
	}

	var outputs []string
	for _, layout := range layouts {
		tbl, err := Read(context.Background(), blobstore.NewBytesBlob(writeIPC(t, layout)))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Print(&buf, tbl))
		tbl.Release()
		outputs = append(outputs, buf.String())
	}
	assert.Equal(t, outputs[0], outputs[1])
	assert.Equal(t, outputs[0], outputs[2])
}

func TestRead_Invalid(t *testing.T) {
	_, err := Read(context.Background(), blobstore.NewBytesBlob([]byte("definitely not arrow")))
	assert.Error(t, err)
}

func TestRead_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Read(ctx, blobstore.NewBytesBlob(writeIPC(t, [][]int64{{1}})))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestView(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.Put("table.arrow", writeIPC(t, [][]int64{{0}}))

	var buf bytes.Buffer
	require.NoError(t, View(context.Background(), store, "table.arrow", &buf))
	assert.Contains(t, buf.String(), "rowa")

	buf.Reset()
	err := View(context.Background(), store, "missing.arrow", &buf)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
	assert.Empty(t, buf.String())
}

func TestPrint_EscapesControlCharacters(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	b.Field(0).(*array.StringBuilder).AppendValues([]string{"Hbf\nNord", "a\tb", `c:\tmp`}, nil)
	b.Field(1).(*array.Int64Builder).AppendValues([]int64{1, 2, 3}, nil)
	rec := b.NewRecord()
	defer rec.Release()

	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, tbl))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2+1+1+3)
	assert.Equal(t, []string{`Hbf\nNord`, "1"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{`a\tb`, "2"}, strings.Fields(lines[5]))
	assert.Equal(t, []string{`c:\\tmp`, "3"}, strings.Fields(lines[6]))
}

func TestRead_MappedBlobOutlivesClose(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "t.arrow"), writeIPC(t, [][]int64{{0, 1}, {2}}), 0o644))

	b, err := blobstore.NewLocalStore(dir).Open(context.Background(), "t.arrow")
	require.NoError(t, err)
	_, ok := b.(blobstore.Mappable)
	require.True(t, ok)

	tbl, err := Read(context.Background(), b)
	require.NoError(t, err)
	defer tbl.Release()
	require.NoError(t, b.Close())

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, tbl))
	assert.Contains(t, buf.String(), "rowc")
}
