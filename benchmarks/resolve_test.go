package benchmarks

import (
	"testing"

	"github.com/propkit/propkit/pkg/propkit"
	"github.com/propkit/propkit/pkg/propkit/schema"
)

func benchConfig(b *testing.B) *propkit.Configuration {
	b.Helper()
	defs, err := schema.New([]schema.Definition{
		{Key: "single"},
		{Key: "multi", MultiValues: true},
	})
	if err != nil {
		b.Fatal(err)
	}
	return propkit.New(defs, map[string]string{
		"single": "foo",
		"multi":  `"a,b",c, d ,"e ""f"""`,
	})
}

// BenchmarkGet measures scalar resolution overhead.
func BenchmarkGet(b *testing.B) {
	cfg := benchConfig(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := cfg.Get("single"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGetAbsent measures resolution of a missing key.
func BenchmarkGetAbsent(b *testing.B) {
	cfg := benchConfig(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := cfg.Get("missing"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGetStringArray measures multi-value parsing overhead.
func BenchmarkGetStringArray(b *testing.B) {
	cfg := benchConfig(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cfg.GetStringArray("multi"); err != nil {
			b.Fatal(err)
		}
	}
}
