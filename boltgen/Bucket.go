// Package boltgen adapts a bolt bucket into a pushgen generator.
//
// It serves as the reference for turning a foreign, cursor-based sequence
// into a generator: the bucket cursor supports both directions, so the
// generator implements the full ReverseGenerator contract with a single
// completion boundary shared between the two ends.
package boltgen

import (
	"bytes"

	"github.com/boltdb/bolt"

	"github.com/adamluzsi/pushgen"
)

// KV is a single key/value pair of a bucket.
//
// The byte slices alias bolt managed memory and are only valid for the
// duration of the transaction and the current Sink.Call.
// A consumer that wants to keep them must copy.
type KV struct {
	Key   []byte
	Value []byte
}

// Bucket returns a generator over the key/value pairs of the named bucket, in key order.
//
// The generator must be consumed within the given transaction,
// and the bucket must not be mutated while the generator is in use.
// A missing bucket behaves as an empty, already Complete generator.
func Bucket(tx *bolt.Tx, name []byte) *BucketGen {
	bucket := tx.Bucket(name)
	return &BucketGen{bucket: bucket, done: bucket == nil}
}

type BucketGen struct {
	bucket *bolt.Bucket

	// front is the next key to deliver forward, once frontStarted is set.
	front        []byte
	frontStarted bool
	// back is the smallest key the backward direction has delivered,
	// it acts as an exclusive upper boundary for the forward direction.
	back []byte
	done bool
}

func (g *BucketGen) Run(sink pushgen.Sink[KV]) pushgen.GeneratorResult {
	if g.done {
		return pushgen.Complete
	}

	cursor := g.bucket.Cursor()
	var k, v []byte
	if !g.frontStarted {
		k, v = cursor.First()
		g.frontStarted = true
	} else {
		k, v = cursor.Seek(g.front)
	}

	for k != nil && (g.back == nil || bytes.Compare(k, g.back) < 0) {
		stop := sink.Call(KV{Key: k, Value: v}) == pushgen.Stop
		k, v = cursor.Next()
		if stop {
			if k == nil || (g.back != nil && bytes.Compare(k, g.back) >= 0) {
				g.done = true
			} else {
				g.front = append([]byte(nil), k...)
			}
			return pushgen.Stopped
		}
	}
	g.done = true
	return pushgen.Complete
}

func (g *BucketGen) RunBack(sink pushgen.Sink[KV]) pushgen.GeneratorResult {
	if g.done {
		return pushgen.Complete
	}

	cursor := g.bucket.Cursor()
	var k, v []byte
	if g.back == nil {
		k, v = cursor.Last()
	} else {
		cursor.Seek(g.back)
		k, v = cursor.Prev()
	}

	for k != nil && (!g.frontStarted || bytes.Compare(k, g.front) >= 0) {
		stop := sink.Call(KV{Key: k, Value: v}) == pushgen.Stop
		g.back = append([]byte(nil), k...)
		k, v = cursor.Prev()
		if stop {
			if k == nil || (g.frontStarted && bytes.Compare(k, g.front) < 0) {
				g.done = true
			}
			return pushgen.Stopped
		}
	}
	g.done = true
	return pushgen.Complete
}

func (g *BucketGen) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[KV](g, n)
}

func (g *BucketGen) TryAdvanceBack(n int) (int, pushgen.GeneratorResult) {
	return pushgen.AdvanceBack[KV](g, n)
}
