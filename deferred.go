package cbor

import "github.com/cbor-go/bridge/internal/wire"

// future is one pending slot in a deferred array or map: either an
// already-literal value, a nested array/map handle opened but not yet
// finalized, or a sub-encoder whose EncodeCBOR method runs lazily at
// finalization time.
type futureKind uint8

const (
	futureConcrete futureKind = iota
	futureArray
	futureMap
	futureEncoder
)

type future struct {
	kind     futureKind
	concrete wire.Encoded
	arr      *deferredArray
	mp       *deferredMap
	enc      *Encoder
}

func (f future) finalize(path CodingPath) (wire.Encoded, error) {
	switch f.kind {
	case futureArray:
		return f.arr.finalize(path)
	case futureMap:
		return f.mp.finalize(path)
	case futureEncoder:
		return f.enc.finalize()
	default:
		return f.concrete, nil
	}
}

// deferredArray is the arena backing an UnkeyedEncoder: an append-only
// sequence of futures, resolved depth-first at finalization.
type deferredArray struct {
	items []future
}

func (a *deferredArray) finalize(path CodingPath) (wire.Encoded, error) {
	items := make([]wire.Encoded, 0, len(a.items))
	for i, f := range a.items {
		v, err := f.finalize(path.append(indexElement(i)))
		if err != nil {
			return wire.Encoded{}, err
		}
		items = append(items, v)
	}
	return wire.Encoded{Kind: wire.EncodedArray, Items: items}, nil
}

func (a *deferredArray) push(f future) { a.items = append(a.items, f) }

// deferredMap is the arena backing a KeyedEncoder: an insertion-ordered
// set of named slots. Overwriting a scalar slot with another scalar, or
// re-requesting the same container kind, is allowed; swapping a slot's
// container kind (array<->map), or touching a slot once it holds a
// sub-encoder, is a programmer error.
type deferredMap struct {
	order []string
	slots map[string]future
}

func newDeferredMap() *deferredMap { return &deferredMap{slots: make(map[string]future)} }

func (m *deferredMap) finalize(path CodingPath) (wire.Encoded, error) {
	items := make([]wire.Encoded, 0, len(m.order)*2)
	for _, k := range m.order {
		f := m.slots[k]
		v, err := f.finalize(path.append(PathElement{Key: k}))
		if err != nil {
			return wire.Encoded{}, err
		}
		items = append(items, wire.Encoded{Kind: wire.EncodedLiteral, Literal: wire.AppendString(nil, k)}, v)
	}
	return wire.Encoded{Kind: wire.EncodedMap, Items: items}, nil
}

func (m *deferredMap) setValue(key string, v wire.Encoded) {
	existing, ok := m.slots[key]
	if ok && existing.kind == futureEncoder {
		panicContract("key \"" + key + "\" already holds a sub-encoder")
	}
	if !ok {
		m.order = append(m.order, key)
	}
	m.slots[key] = future{kind: futureConcrete, concrete: v}
}

func (m *deferredMap) openArray(key string) *deferredArray {
	existing, ok := m.slots[key]
	if ok {
		switch existing.kind {
		case futureArray:
			return existing.arr
		case futureMap, futureEncoder:
			panicContract("key \"" + key + "\" already holds an incompatible container")
		}
	} else {
		m.order = append(m.order, key)
	}
	arr := &deferredArray{}
	m.slots[key] = future{kind: futureArray, arr: arr}
	return arr
}

func (m *deferredMap) openMap(key string) *deferredMap {
	existing, ok := m.slots[key]
	if ok {
		switch existing.kind {
		case futureMap:
			return existing.mp
		case futureArray, futureEncoder:
			panicContract("key \"" + key + "\" already holds an incompatible container")
		}
	} else {
		m.order = append(m.order, key)
	}
	mp := newDeferredMap()
	m.slots[key] = future{kind: futureMap, mp: mp}
	return mp
}

func (m *deferredMap) setEncoder(key string, enc *Encoder) {
	if _, ok := m.slots[key]; ok {
		panicContract("key \"" + key + "\" already has a value")
	}
	m.order = append(m.order, key)
	m.slots[key] = future{kind: futureEncoder, enc: enc}
}
