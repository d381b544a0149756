// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package std holds the stateful, concurrency-bearing machinery built on top
// of the pure primitives in generic: the deduplicating hash set and the
// growth stage driver that turns one generation of canonical polycubes into
// the next.
package std

import (
	"bytes"
	"sync"

	"github.com/nicholasngai/cubes/generic"
)

// djb2 computes the DJB2 hash of key, the same hash the reference
// implementation's compute_hash uses.
func djb2(key []byte) uint64 {
	h := uint64(5381)
	for _, b := range key {
		h = (h << 5) + h + uint64(b)
	}
	return h
}

// compareKeys orders two keys by length first, then lexicographically by
// byte, matching the reference implementation's key_comp.
func compareKeys(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	return bytes.Compare(a, b)
}

// entry is one node of a bucket's sorted singly-linked chain.
type entry struct {
	key   []byte
	value *generic.Polycube
	next  *entry
}

// bucket is one independently-locked slot of a DedupSet. Its shape mirrors
// CopyControl in the teacher's generic package: a small piece of shared
// state guarded by its own embedded mutex, rather than one lock for the
// whole structure.
type bucket struct {
	sync.Mutex
	head *entry
}

// DedupSet is a fixed-size chained hash table keyed by variable-length byte
// strings, with one mutex per bucket so unrelated keys never contend.
type DedupSet struct {
	buckets []bucket
}

// NewDedupSet allocates a set with the given number of buckets.
func NewDedupSet(bucketCount int) *DedupSet {
	if bucketCount < 1 {
		bucketCount = 1
	}
	return &DedupSet{buckets: make([]bucket, bucketCount)}
}

// BucketCountFor picks a bucket count appropriate for an expected input
// population of n polycubes: a larger table for the bigger generations,
// where collisions would otherwise dominate insert cost.
func BucketCountFor(n int) int {
	if n > 4096 {
		return 4096
	}
	if n < 256 {
		return 256
	}
	return n
}

// InsertOrGet inserts value under key if no entry with that key exists yet,
// and returns (value, true). Otherwise it returns the pre-existing entry's
// value, unmodified, and false. Safe for concurrent use by many goroutines;
// only the target bucket's mutex is held, so unrelated keys never block each
// other.
func (s *DedupSet) InsertOrGet(key []byte, value *generic.Polycube) (*generic.Polycube, bool) {
	idx := djb2(key) % uint64(len(s.buckets))
	b := &s.buckets[idx]

	b.Lock()
	defer b.Unlock()

	slot := &b.head
	for *slot != nil {
		cur := *slot
		cmp := compareKeys(cur.key, key)
		if cmp == 0 {
			return cur.value, false
		}
		if cmp > 0 {
			break
		}
		slot = &cur.next
	}

	*slot = &entry{key: key, value: value, next: *slot}
	return value, true
}

// Drain walks every bucket once, calling consumer for each stored entry,
// then releases the chains so the set's memory can be reclaimed. Drain must
// not be called concurrently with InsertOrGet.
func (s *DedupSet) Drain(consumer func(key []byte, value *generic.Polycube)) {
	for i := range s.buckets {
		b := &s.buckets[i]
		for e := b.head; e != nil; e = e.next {
			consumer(e.key, e.value)
		}
		b.head = nil
	}
}
