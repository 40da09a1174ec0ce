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

package mapper

import (
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
)

func TestDefaults_Basic(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c code.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(c)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.NotFound, 404, codes.NotFound)
	check(code.ServiceUnavailable, 503, codes.Unavailable)
	check(code.TooManyRequests, 429, codes.ResourceExhausted)
	check(code.InvalidArgument, 400, codes.InvalidArgument)
	check(code.DeadlineExceeded, 504, codes.DeadlineExceeded)
	check(code.UpstreamError, 502, codes.Unavailable)
	check("USER_NOT_FOUND", 500, codes.Internal)
	check(code.Empty, 500, codes.Internal)
}

func TestDefaults_CoverEveryDerivedCode(t *testing.T) {
	for status := 400; status < 600; status++ {
		c := code.ForStatus(status)
		if _, ok := defaultHTTP[c]; !ok {
			continue
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Fatalf("code %q has an HTTP default but no gRPC default", c)
		}
		if defaultHTTP[c] != status {
			t.Fatalf("code %q maps to HTTP %d, want %d", c, defaultHTTP[c], status)
		}
	}
	for g := codes.Canceled; g <= codes.Unauthenticated; g++ {
		c := code.Code(code.Normalize(g.String()))
		if got := defaultGRPC[c]; got != g {
			t.Fatalf("code %q maps to %v, want %v", c, got, g)
		}
		if _, ok := defaultHTTP[c]; !ok {
			t.Fatalf("code %q has no HTTP default", c)
		}
	}
}

func TestPriority_OverrideOverPrefixOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault("USER_NOT_FOUND", 404), // default
		WithHTTPPrefix("USER", 410),            // prefix
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status("USER_NOT_FOUND"); st.HTTP != 410 {
		t.Fatalf("prefix must beat default; got %d, want 410", st.HTTP)
	}

	m, err = New(
		WithHTTPDefault("USER_NOT_FOUND", 404),
		WithHTTPPrefix("USER", 410),
		WithHTTPOverride("USER_NOT_FOUND", 418), // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status("USER_NOT_FOUND"); st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
}

func TestPriority_OverrideOverPrefixOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(code.Unavailable, int(codes.Unavailable)),
		WithGRPCPrefix("UNAVAILABLE", int(codes.Internal)),
		WithGRPCOverride(code.Unavailable, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status(code.Unavailable); st.GRPC != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Aborted)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("BILLING", 402),
		WithHTTPPrefix("BILLING_CARD", 409),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status("BILLING_CARD_DECLINED"); st.HTTP != 409 {
		t.Fatalf("LPM failed: got %d, want 409", st.HTTP)
	}
	if st := m.Status("BILLING_OVERDUE"); st.HTTP != 402 {
		t.Fatalf("family prefix failed: got %d, want 402", st.HTTP)
	}
	// "BILLING" must not match "BILLINGS_X"
	if st := m.Status("BILLINGS_X"); st.HTTP == 402 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("*_NOT_FOUND", 404),
		WithHTTPPrefix("ORDER_NOT_FOUND", 410), // exact should win at same depth
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status("ORDER_NOT_FOUND"); st.HTTP != 410 {
		t.Fatalf("exact must beat wildcard; got %d", st.HTTP)
	}
	if st := m.Status("USER_NOT_FOUND"); st.HTTP != 404 {
		t.Fatalf("wildcard match failed; got %d, want 404", st.HTTP)
	}
	// NOT_FOUND itself keeps its default through the zero-segment miss
	if st := m.Status(code.NotFound); st.HTTP != 404 {
		t.Fatalf("default lost; got %d", st.HTTP)
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(WithHTTPPrefix("  user_profile  ", 404))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := m.Status("USER_PROFILE_MISSING"); st.HTTP != 404 {
		t.Fatalf("normalized prefix should match; got %d", st.HTTP)
	}
}

func TestInvalidPrefixes(t *testing.T) {
	for _, p := range []string{"", "   ", "USER__X", "*", "USER-X", "_USER"} {
		if _, err := New(WithHTTPPrefix(p, 404)); err == nil {
			t.Fatalf("HTTP prefix %q must be rejected", p)
		}
		if _, err := New(WithGRPCPrefix(p, int(codes.NotFound))); err == nil {
			t.Fatalf("gRPC prefix %q must be rejected", p)
		}
	}
}

func TestFallback(t *testing.T) {
	m, err := New(WithFallback(502, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status("SOMETHING_ODD")
	if st.HTTP != 502 || st.GRPC != codes.Unavailable {
		t.Fatalf("fallback got %+v", st)
	}

	m, _ = New(WithFallback(0, codes.Unknown))
	if st := m.Status("SOMETHING_ODD"); st.HTTP != 500 || st.GRPC != codes.Unknown {
		t.Fatalf("zero HTTP fallback must be ignored; got %+v", st)
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("USER", 404),
		WithGRPCPrefix("USER", int(codes.NotFound)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain("USER_SUSPENDED")
	if !strings.Contains(exp, `source=prefix`) {
		t.Fatalf("Explain must include source=prefix:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="USER"`) {
		t.Fatalf("Explain must include matched pattern:\n%s", exp)
	}
	if !strings.Contains(exp, `grpc:`) || !strings.Contains(exp, `http:`) {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("USER", 404),
		WithHTTPOverride(code.Canceled, 408),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status("USER_NOT_FOUND")
				_ = m.Status(code.Canceled)
				_ = m.Status(code.BadRequest)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m := Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.BadRequest)
	}
}

func BenchmarkMapperStatus_PrefixHit(b *testing.B) {
	m, _ := New(
		WithHTTPPrefix("USER", 404),
		WithGRPCPrefix("USER", int(codes.NotFound)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status("USER_NOT_FOUND")
	}
}

func BenchmarkMapperStatus_Override(b *testing.B) {
	m, _ := New(
		WithHTTPOverride(code.Unavailable, 418),
		WithGRPCOverride(code.Unavailable, int(codes.Aborted)),
	)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(code.Unavailable)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
