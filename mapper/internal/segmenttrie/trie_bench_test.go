/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// genSegment returns a valid segment: [A-Z][A-Z0-9]*
func genSegment(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	var b strings.Builder
	b.WriteByte(byte('A' + rng.Intn(26)))
	for i := 1; i < n; i++ {
		if rng.Intn(4) == 0 {
			b.WriteByte(byte('0' + rng.Intn(10)))
			continue
		}
		b.WriteByte(byte('A' + rng.Intn(26)))
	}
	return b.String()
}

// makePrefix builds a prefix of depth segments with a wildcard every k
// segments (if k>0).
func makePrefix(rng *rand.Rand, depth, wildcardEveryK int) string {
	segs := make([]string, depth)
	for i := range segs {
		if wildcardEveryK > 0 && (i+1)%wildcardEveryK == 0 {
			segs[i] = Wildcard
			continue
		}
		segs[i] = genSegment(rng, 3, 8)
	}
	return strings.Join(segs, string(Sep))
}

// buildTrie inserts n prefixes and returns codes that extend each of them
// by two segments.
func buildTrie(b *testing.B, n, depth, wildcardEveryK int) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1))
	tr := New[int]()
	codes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		p := makePrefix(rng, depth, wildcardEveryK)
		if err := tr.Insert(p, 100+i); err != nil {
			b.Fatalf("insert failed for %q: %v", p, err)
		}
		parts := strings.Split(p, string(Sep))
		for j := range parts {
			if parts[j] == Wildcard {
				parts[j] = genSegment(rng, 3, 8)
			}
		}
		parts = append(parts, genSegment(rng, 3, 8), genSegment(rng, 3, 8))
		codes = append(codes, strings.Join(parts, string(Sep)))
	}
	return tr, codes
}

func BenchmarkTrieMatch(b *testing.B) {
	for _, n := range []int{16, 1024} {
		for _, k := range []int{0, 2} {
			b.Run(fmt.Sprintf("N=%d/wcEvery=%d", n, k), func(b *testing.B) {
				tr, codes := buildTrie(b, n, 3, k)
				b.ReportAllocs()
				b.ResetTimer()
				var sum int
				for i := 0; i < b.N; i++ {
					if v, ok := tr.Match(codes[i%len(codes)]); ok {
						sum += v
					}
				}
				if sum == 0 {
					b.Fatalf("no matches")
				}
			})
		}
	}
}

func BenchmarkTrieMatchParallel(b *testing.B) {
	tr, codes := buildTrie(b, 1024, 3, 2)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = tr.Match(codes[i%len(codes)])
			i++
		}
	})
}
