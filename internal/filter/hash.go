package filter

import (
	"hash/fnv"
	"hash/maphash"
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HashFunc maps an item to a 32-bit hash value. It is the capability a
// BloomFilter uses as its secondary hash.
type HashFunc[T any] func(item T) int32

// ComputeIndex derives the i-th bit index from a primary and secondary hash:
//
//	index = |(h1 + i*h2) mod m|
//
// The sum wraps around in 32 bits. If h2 is a multiple of m every i yields
// the same index.
func ComputeIndex(primary, secondary int32, i, m int) int {
	idx := (primary + int32(i)*secondary) % int32(m)
	if idx < 0 {
		idx = -idx
	}
	return int(idx)
}

// JenkinsOneAtATime is the default secondary hash for strings, computed over
// the string's UTF-16 code units with 32-bit signed arithmetic.
// See http://burtleburtle.net/bob/hash/doobs.html
func JenkinsOneAtATime(s string) int32 {
	var hash int32
	mix := func(c int32) {
		hash += c
		hash += hash << 10
		hash ^= hash >> 6
	}
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			mix(int32(hi))
			mix(int32(lo))
			continue
		}
		mix(int32(r))
	}
	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return hash
}

// StringHash is the intrinsic hash of a string: xxh3 folded to 32 bits.
func StringHash(s string) int32 {
	return fold(xxh3.HashString(s))
}

// FNV1a32 hashes s with 32-bit FNV-1a.
func FNV1a32(s string) int32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int32(h.Sum32())
}

// Murmur3 hashes s with 32-bit MurmurHash3.
func Murmur3(s string) int32 {
	return int32(murmur3.Sum32([]byte(s)))
}

// XXHash hashes s with 64-bit xxHash folded to 32 bits.
func XXHash(s string) int32 {
	return fold(xxhash.Sum64String(s))
}

// stringHashes lists the secondary hashes selectable by name.
var stringHashes = map[string]HashFunc[string]{
	"jenkins": JenkinsOneAtATime,
	"fnv":     FNV1a32,
	"murmur3": Murmur3,
	"xxhash":  XXHash,
}

// LookupStringHash returns the named string hash. Known names are jenkins,
// fnv, murmur3 and xxhash.
func LookupStringHash(name string) (HashFunc[string], bool) {
	h, ok := stringHashes[name]
	return h, ok
}

// fold xors the halves of a 64-bit hash together.
func fold(h uint64) int32 {
	return int32(uint32(h) ^ uint32(h>>32))
}

// defaultSecondary returns the built-in secondary hash for T. Only string has
// one.
func defaultSecondary[T comparable]() (HashFunc[T], bool) {
	h, ok := any(HashFunc[string](JenkinsOneAtATime)).(HashFunc[T])
	return h, ok
}

// primaryHash returns the intrinsic hash for T. Strings use StringHash so
// indices are stable across processes. Other types hash with maphash under a
// seed private to the caller, which is consistent with == for that seed.
func primaryHash[T comparable]() HashFunc[T] {
	if h, ok := any(HashFunc[string](StringHash)).(HashFunc[T]); ok {
		return h
	}
	seed := maphash.MakeSeed()
	return func(item T) int32 {
		return fold(maphash.Comparable(seed, item))
	}
}
