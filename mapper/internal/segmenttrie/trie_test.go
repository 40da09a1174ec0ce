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

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("USER", 404))
	must(t, tr.Insert("AUTH_TOKEN", 401))
	must(t, tr.Insert("BILLING_CARD_DECLINED", 402))

	if v, ok, p := tr.MatchWithPattern("USER_NOT_FOUND"); !ok || v != 404 || p != "USER" {
		t.Fatalf("match USER_NOT_FOUND => ok=%v v=%v p=%q; want ok=true v=404 p=USER", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("AUTH_TOKEN"); !ok || v != 401 || p != "AUTH_TOKEN" {
		t.Fatalf("match AUTH_TOKEN => ok=%v v=%v p=%q; want ok=true v=401 p=AUTH_TOKEN", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("BILLING_CARD_DECLINED_3DS"); !ok || v != 402 || p != "BILLING_CARD_DECLINED" {
		t.Fatalf("match BILLING_CARD_DECLINED_3DS => ok=%v v=%v p=%q; want 402, BILLING_CARD_DECLINED", ok, v, p)
	}
	if _, ok := tr.Match("ORDER_NOT_FOUND"); ok {
		t.Fatalf("unrelated code must not match")
	}
}

func TestSegmentBoundary(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("USER_NOT", 1))

	if _, ok := tr.Match("USER_NOTE_MISSING"); ok {
		t.Fatalf("prefix must not match inside a segment")
	}
	if v, ok := tr.Match("USER_NOT_FOUND"); !ok || v != 1 {
		t.Fatalf("segment prefix must match: ok=%v v=%v", ok, v)
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("*_NOT_FOUND", 404))
	must(t, tr.Insert("USER_NOT_FOUND", 410)) // exact should beat wildcard at same depth

	if v, ok, p := tr.MatchWithPattern("USER_NOT_FOUND"); !ok || v != 410 || p != "USER_NOT_FOUND" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("ORDER_NOT_FOUND"); !ok || v != 404 || p != "*_NOT_FOUND" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	// wildcard matches exactly one segment, not zero and not two
	if _, ok := tr.Match("NOT_FOUND"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
	if _, ok := tr.Match("ORDER_ITEM_NOT_FOUND"); ok {
		t.Fatalf("wildcard should not match two segments")
	}
}

func TestLPM_PrefersDeeperEvenIfExactBranchExists(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("A_*_C", 7))
	must(t, tr.Insert("A_B", 1))

	if v, ok, p := tr.MatchWithPattern("A_B_C"); !ok || v != 7 || p != "A_*_C" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("USER", 1))
	must(t, tr.Insert("USER", 2))
	if v, _ := tr.Match("USER_X"); v != 2 {
		t.Fatalf("re-insert must replace value, got %d", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "lower", "USER__X", "_USER", "USER_", "USER-X", "*", "*_*"} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must be invalid", p)
		}
	}

	must(t, tr.Insert("USER", 1))
	for _, c := range []string{"", "user_x", "_USER"} {
		if _, ok := tr.Match(c); ok {
			t.Fatalf("Match(%q) should be false", c)
		}
	}

	var nilTrie *Trie[int]
	if err := nilTrie.Insert("USER", 1); err == nil {
		t.Fatalf("nil trie insert must fail")
	}
	if _, ok := nilTrie.Match("USER"); ok {
		t.Fatalf("nil trie must not match")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
