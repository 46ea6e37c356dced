package jsontree

import (
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "nested.json"))
	if err != nil {
		b.Fatalf("read: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data, nil); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	v, err := DecodeFile(filepath.Join("testdata", "nested.json"), nil)
	if err != nil {
		b.Fatalf("parse: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Format(v, nil); err != nil {
			b.Fatalf("format: %v", err)
		}
	}
}

func BenchmarkBeautify(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "nested.json"))
	if err != nil {
		b.Fatalf("read: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Beautify(data, nil); err != nil {
			b.Fatalf("beautify: %v", err)
		}
	}
}
