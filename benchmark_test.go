package txtar

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jmgilman/go/fs/billy"
)

func largeArchive(entries int) string {
	var sb strings.Builder
	sb.WriteString("benchmark fixture\n")
	for i := 0; i < entries; i++ {
		fmt.Fprintf(&sb, "-- dir%d/file%d.txt --\n", i%10, i)
		for j := 0; j < 20; j++ {
			fmt.Fprintf(&sb, "line %d of entry %d\n", j, i)
		}
	}
	return sb.String()
}

// BenchmarkParse measures parsing an archive with many entries.
func BenchmarkParse(b *testing.B) {
	data := []byte(largeArchive(500))
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Parse(data)
	}
}

// BenchmarkFormat measures serializing an archive with many entries.
func BenchmarkFormat(b *testing.B) {
	a := ParseString(largeArchive(500))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Format(a)
	}
}

// BenchmarkMaterialize measures writing an archive to an in-memory filesystem.
func BenchmarkMaterialize(b *testing.B) {
	a := ParseString(largeArchive(100))
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := a.Materialize(ctx, "out", WithFS(billy.NewMemory())); err != nil {
			b.Fatal(err)
		}
	}
}
