// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"fmt"
	"iter"
	"strings"
)

// Map is a hashtable keyed by Hasher implementations.  Keys sharing a hashcode
// are held together in a bucket and distinguished by equality.
type Map[K Hasher[K], V any] struct {
	buckets map[uint64]bucket[K, V]
	// number of entries across all buckets
	size uint
}

// NewMap creates a new map with a given initial capacity (in buckets).
func NewMap[K Hasher[K], V any](capacity uint) *Map[K, V] {
	return &Map[K, V]{make(map[uint64]bucket[K, V], capacity), 0}
}

// Size returns the number of entries in this map.
func (p *Map[K, V]) Size() uint {
	if p == nil {
		return 0
	}
	//
	return p.size
}

// All returns an iterator over all entries of this map.  The order in which
// entries are seen is unspecified.
func (p *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if p == nil {
			return
		}
		//
		for _, b := range p.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Get the value associated with a key, or return false if there is none.
func (p *Map[K, V]) Get(key K) (V, bool) {
	var empty V
	//
	if i, ok := p.buckets[key.Hash()].find(key); ok {
		return p.buckets[key.Hash()][i].value, true
	}
	//
	return empty, false
}

// ContainsKey checks whether a key has an associated value in this map.
func (p *Map[K, V]) ContainsKey(key K) bool {
	_, ok := p.buckets[key.Hash()].find(key)
	return ok
}

// Insert associates a value with a key, returning true if the key was already
// present (in which case its value is replaced).
func (p *Map[K, V]) Insert(key K, value V) bool {
	present := false
	//
	p.Update(key, func(_ V, ok bool) (V, bool) {
		present = ok
		return value, true
	})
	//
	return present
}

// Remove a key from this map, returning true if it was present.
func (p *Map[K, V]) Remove(key K) bool {
	present := false
	//
	p.Update(key, func(v V, ok bool) (V, bool) {
		present = ok
		return v, false
	})
	//
	return present
}

// Update the entry for a key with a single lookup.  The function is given the
// current value (if any) and returns the new value, along with whether the
// key should be retained (true) or removed (false).
func (p *Map[K, V]) Update(key K, fn func(V, bool) (V, bool)) {
	var (
		current V
		hash    = key.Hash()
		b       = p.buckets[hash]
		i, ok   = b.find(key)
	)
	//
	if ok {
		current = b[i].value
	}
	//
	value, keep := fn(current, ok)
	//
	switch {
	case keep && ok:
		b[i].value = value
	case keep:
		b = append(b, entry[K, V]{key, value})
		p.size++
	case ok:
		b = append(b[:i:i], b[i+1:]...)
		p.size--
	default:
		return
	}
	//
	if len(b) == 0 {
		delete(p.buckets, hash)
	} else {
		p.buckets[hash] = b
	}
}

// Clone returns a shallow copy of this map.  Keys and values are copied by
// value, hence they should themselves be immutable.
func (p *Map[K, V]) Clone() *Map[K, V] {
	nmap := NewMap[K, V](uint(len(p.buckets)))
	//
	for h, b := range p.buckets {
		nmap.buckets[h] = append(bucket[K, V](nil), b...)
	}
	//
	nmap.size = p.size
	//
	return nmap
}

func (p *Map[K, V]) String() string {
	var entries []string
	//
	for k, v := range p.All() {
		entries = append(entries, fmt.Sprintf("%v:=%v", any(k), any(v)))
	}
	//
	return "{" + strings.Join(entries, ",") + "}"
}

type entry[K any, V any] struct {
	key   K
	value V
}

// A bucket holds the entries whose keys share a hashcode, in insertion order.
type bucket[K Hasher[K], V any] []entry[K, V]

// Find the position of a key in this bucket.
func (b bucket[K, V]) find(key K) (int, bool) {
	for i, e := range b {
		if key.Equals(e.key) {
			return i, true
		}
	}
	//
	return 0, false
}
