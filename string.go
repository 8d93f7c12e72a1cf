package pds

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vecspine/pds/internal/finger"
)

// stringFragmentSoftLimit and stringFragmentMergeThreshold mirror base
// spec §4.5: fragments target ≤16 bytes of payload; an append that
// would grow the current back fragment only merges into it while that
// fragment still has fewer than 8 bytes, so fragments don't grow
// without bound on a long run of single-character appends.
const (
	stringFragmentSoftLimit      = 16
	stringFragmentMergeThreshold = 8
)

// strFrag is a String's leaf: a run of whole UTF-8 codepoints. Len
// reports the codepoint count, which is what the spine caches and what
// every codepoint-indexed String operation navigates by; byte length is
// tracked per-fragment only; bytes is never mutated once built, and
// every String operation that "grows" a fragment builds a fresh one.
type strFrag struct {
	codepoints int
	bytes      []byte
}

func (f strFrag) Len() int { return f.codepoints }

// String is a persistent sequence of Unicode codepoints, backed by a
// finger-tree spine of UTF-8 byte fragments. The zero value is the
// empty string.
type String struct {
	spine *finger.Node[strFrag]
}

func chunkUTF8(op, s string) []strFrag {
	var out []strFrag
	var buf []byte
	cps := 0
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			malformed(op, "invalid UTF-8 byte at offset %d", i)
		}
		if len(buf) > 0 && len(buf)+size > stringFragmentSoftLimit {
			out = append(out, strFrag{codepoints: cps, bytes: buf})
			buf, cps = nil, 0
		}
		buf = append(buf, s[i:i+size]...)
		cps++
		i += size
	}
	if len(buf) > 0 {
		out = append(out, strFrag{codepoints: cps, bytes: buf})
	}
	return out
}

// FromString builds a String from a Go string. Panics with
// MalformedInputError if s is not valid UTF-8.
func FromString(s string) String {
	return String{spine: finger.BuildBalanced(chunkUTF8("FromString", s))}
}

// FromChar builds a single-codepoint String.
func FromChar(r rune) String {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return String{spine: finger.Single(strFrag{codepoints: 1, bytes: append([]byte(nil), buf[:n]...)})}
}

// Size returns xs's codepoint count. O(1).
func (xs String) Size() int { return finger.Len(xs.spine) }

func (xs String) toGoString() string {
	var b strings.Builder
	it := finger.NewIter(xs.spine)
	for {
		frag, ok := it.Next()
		if !ok {
			return b.String()
		}
		b.Write(frag.bytes)
	}
}

// AppendRune appends a single codepoint, merging into the back fragment
// when it has room and is still under the merge threshold, else pushing
// a new fragment. Amortized O(1).
func (xs String) AppendRune(r rune) String {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	back, ok := finger.PeekBack(xs.spine)
	if ok && len(back.bytes) < stringFragmentMergeThreshold && len(back.bytes)+n <= stringFragmentSoftLimit {
		merged := strFrag{codepoints: back.codepoints + 1, bytes: append(append([]byte(nil), back.bytes...), buf[:n]...)}
		return String{spine: finger.ReplaceBack(xs.spine, merged)}
	}
	return String{spine: finger.PushBack(xs.spine, strFrag{codepoints: 1, bytes: append([]byte(nil), buf[:n]...)})}
}

// AppendGo appends a Go string, merging its first chunk into xs's back
// fragment when there's room, else chunking and pushing. Amortized
// O(1) plus O(len(s)) to chunk it.
func (xs String) AppendGo(s string) String {
	frags := chunkUTF8("AppendGo", s)
	if len(frags) == 0 {
		return xs
	}
	spine, start := xs.spine, 0
	if back, ok := finger.PeekBack(spine); ok &&
		len(back.bytes) < stringFragmentMergeThreshold &&
		len(back.bytes)+len(frags[0].bytes) <= stringFragmentSoftLimit {
		merged := strFrag{codepoints: back.codepoints + frags[0].codepoints, bytes: append(append([]byte(nil), back.bytes...), frags[0].bytes...)}
		spine = finger.ReplaceBack(spine, merged)
		start = 1
	}
	return String{spine: finger.Append(spine, finger.BuildBalanced(frags[start:]))}
}

// ConcatStrings joins a and b via a spine append. O(log min(len(a),len(b))).
func ConcatStrings(a, b String) String {
	return String{spine: finger.Append(a.spine, b.spine)}
}

func decodeNth(b []byte, n int) rune {
	i := 0
	for c := 0; c < n; c++ {
		_, size := utf8.DecodeRune(b[i:])
		i += size
	}
	r, _ := utf8.DecodeRune(b[i:])
	return r
}

func splitFragAt(f strFrag, n int) (left, right strFrag) {
	i := 0
	for c := 0; c < n; c++ {
		_, size := utf8.DecodeRune(f.bytes[i:])
		i += size
	}
	return strFrag{codepoints: n, bytes: append([]byte(nil), f.bytes[:i]...)},
		strFrag{codepoints: f.codepoints - n, bytes: append([]byte(nil), f.bytes[i:]...)}
}

// Lookup returns the codepoint at index i. Panics if i is out of range.
// O(log n).
func (xs String) Lookup(i int) rune {
	inner, frag, ok := finger.Locate(xs.spine, i)
	if !ok {
		precondition("String.Lookup", "index %d out of range [0,%d)", i, xs.Size())
	}
	return decodeNth(frag.bytes, inner)
}

// Split partitions xs at codepoint index i into (left, right), where
// left has i codepoints. Panics if i is out of range. O(log n).
func (xs String) Split(i int) (String, String) {
	n := xs.Size()
	if i < 0 || i > n {
		precondition("String.Split", "index %d out of range [0,%d]", i, n)
	}
	if i == 0 {
		return String{}, xs
	}
	if i == n {
		return xs, String{}
	}
	left, frag, inner, right, _ := finger.Split(xs.spine, i)
	if inner == 0 {
		return String{spine: left}, String{spine: finger.PushFront(right, frag)}
	}
	fragLeft, fragRight := splitFragAt(frag, inner)
	return String{spine: finger.PushBack(left, fragLeft)}, String{spine: finger.PushFront(right, fragRight)}
}

// Left returns xs's first i codepoints.
func (xs String) Left(i int) String { left, _ := xs.Split(i); return left }

// Right returns xs's codepoints from i onward.
func (xs String) Right(i int) String { _, right := xs.Split(i); return right }

// Between returns xs's codepoints in [i, j).
func (xs String) Between(i, j int) String {
	if i < 0 || j < i || j > xs.Size() {
		precondition("String.Between", "invalid range [%d,%d)", i, j)
	}
	_, rest := xs.Split(i)
	left, _ := rest.Split(j - i)
	return left
}

// Insert splices t into xs starting at codepoint index i.
func (xs String) Insert(i int, t String) String {
	left, right := xs.Split(i)
	return ConcatStrings(ConcatStrings(left, t), right)
}

// Delete removes xs's codepoints in [i, j).
func (xs String) Delete(i, j int) String {
	left, _ := xs.Split(i)
	_, right := xs.Split(j)
	return ConcatStrings(left, right)
}

// Find returns the first index at which c occurs, scanning forward from
// the start. O(n), codepoint scan, no substring machinery.
func Find(xs String, c rune) (int, bool) {
	idx := 0
	it := finger.NewIter(xs.spine)
	for {
		frag, ok := it.Next()
		if !ok {
			return 0, false
		}
		i := 0
		for i < len(frag.bytes) {
			r, size := utf8.DecodeRune(frag.bytes[i:])
			if r == c {
				return idx, true
			}
			i += size
			idx++
		}
	}
}

// FindString returns the first index at or after pos where t occurs in
// xs, via a naive (non-KMP) codepoint comparison, matching base spec
// §4.5's explicit no-KMP design note.
func FindString(xs, t String, pos int) (int, bool) {
	n, m := xs.Size(), t.Size()
	if m == 0 {
		return pos, true
	}
	for start := pos; start+m <= n; start++ {
		match := true
		for k := 0; k < m; k++ {
			if xs.Lookup(start+k) != t.Lookup(k) {
				match = false
				break
			}
		}
		if match {
			return start, true
		}
	}
	return 0, false
}

// Replace replaces the first occurrence of t in xs with r, if any.
func Replace(xs, t, r String) String {
	idx, ok := FindString(xs, t, 0)
	if !ok {
		return xs
	}
	left, rest := xs.Split(idx)
	_, right := rest.Split(t.Size())
	return ConcatStrings(ConcatStrings(left, r), right)
}

// ReplaceAll replaces every non-overlapping occurrence of t in xs with r.
func ReplaceAll(xs, t, r String) String {
	out, pos := xs, 0
	for {
		idx, ok := FindString(out, t, pos)
		if !ok {
			return out
		}
		left, rest := out.Split(idx)
		_, right := rest.Split(t.Size())
		out = ConcatStrings(ConcatStrings(left, r), right)
		pos = idx + r.Size()
	}
}

// CompareStrings lexicographically compares a and b by codepoint. This
// flattens both to their underlying byte sequence and delegates to
// strings.Compare rather than the base algorithm's offset-paired
// frag_cmp_at traversal (which independently walks each string's
// per-fragment byte offset to cope with the two strings having
// differently-shaped fragments for equal content): byte-lexicographic
// order coincides with codepoint-lexicographic order for valid UTF-8,
// so flattening first is just as correct and immune to fragment-
// boundary misalignment between two equal but differently-chunked
// strings.
func CompareStrings(a, b String) int {
	return strings.Compare(a.toGoString(), b.toGoString())
}

// Show renders xs double-quoted, escaping control characters as \xNN
// (or the standard short escapes for \n, \t, \r, \\, \").
func (xs String) Show() string {
	var b strings.Builder
	b.WriteByte('"')
	it := finger.NewIter(xs.spine)
	for {
		frag, ok := it.Next()
		if !ok {
			break
		}
		i := 0
		for i < len(frag.bytes) {
			r, size := utf8.DecodeRune(frag.bytes[i:])
			writeEscapedRune(&b, r)
			i += size
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeEscapedRune(b *strings.Builder, r rune) {
	switch r {
	case '\n':
		b.WriteString(`\n`)
		return
	case '\t':
		b.WriteString(`\t`)
		return
	case '\r':
		b.WriteString(`\r`)
		return
	case '"':
		b.WriteString(`\"`)
		return
	case '\\':
		b.WriteString(`\\`)
		return
	}
	if r < 0x20 || r == 0x7f {
		fmt.Fprintf(b, `\x%02x`, r)
		return
	}
	b.WriteRune(r)
}

// VerifyString checks xs's spine balance plus this layer's own
// invariants: every fragment non-empty, valid UTF-8, and its cached
// codepoint count accurate.
func VerifyString(xs String) bool {
	if !finger.Verify(xs.spine) {
		return false
	}
	it := finger.NewIter(xs.spine)
	for {
		frag, ok := it.Next()
		if !ok {
			return true
		}
		if len(frag.bytes) == 0 || !utf8.Valid(frag.bytes) {
			return false
		}
		if utf8.RuneCount(frag.bytes) != frag.codepoints {
			return false
		}
	}
}
