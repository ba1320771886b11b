package vjson_test

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/creachadair/vjson"
	"github.com/creachadair/vjson/golit"
	"github.com/tailscale/hujson"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/sample.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	text := string(input)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Valid", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if !json.Valid(input) {
				b.Fatal("Input is not valid")
			}
		}
	})

	b.Run("HuJSON", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := hujson.Parse(input); err != nil {
				b.Fatalf("Parse: %v", err)
			}
		}
	})

	b.Run("Strict", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			// Conversion is part of the cost of analyzing a literal.
			tree := vjson.Parse(vjson.FromString(text, 0), true)
			if len(tree.Diagnostics) != 0 {
				b.Fatalf("Parse: %v", tree.Diagnostics)
			}
		}
	})

	b.Run("Loose", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			vjson.Parse(vjson.FromString(text, 0), false)
		}
	})

	b.Run("GoLiteral", func(b *testing.B) {
		lit := "`" + strings.ReplaceAll(text, "`", "") + "`"
		for i := 0; i < b.N; i++ {
			if _, err := golit.ParseLiteral(lit, 0, vjson.Strict); err != nil {
				b.Fatalf("ParseLiteral: %v", err)
			}
		}
	})
}
