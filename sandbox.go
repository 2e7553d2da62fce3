package muda

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"

	"github.com/zaidbabid/muda/internal/types"
)

// SandboxKey is the name of the entry muda owns inside a JAMS sandbox.
const SandboxKey = "muda"

// Reserved keys of the muda sandbox.
const (
	KeyHistory = "history"
	KeyState   = "state"
	KeySignal  = "y"
	KeyRate    = "sr"
)

// reservedKeys records which reserved fields hold a value.
type reservedKeys uint8

const (
	hasHistory reservedKeys = 1 << iota
	hasState
	hasSignal
	hasRate
)

func reservedBit(key string) reservedKeys {
	switch key {
	case KeyHistory:
		return hasHistory
	case KeyState:
		return hasState
	case KeySignal:
		return hasSignal
	case KeyRate:
		return hasRate
	default:
		return 0
	}
}

// Sandbox is the typed contents of jam.Sandbox["muda"].
//
// The reserved keys map onto typed fields; every other key lives in Extra.
// Presence of a reserved key is tracked separately from its value, so a
// packed rate of 0 or an empty history can still be popped.
//
// Use Get, Set and Delete to work with keys by name. The typed fields may be
// read directly; writing them directly does not mark them present.
type Sandbox struct {
	// History is an ordered, append-only record.
	History []any

	// State is an ordered sequence of state records.
	State []any

	// Signal holds channel-major samples ("y").
	Signal [][]float32

	// Rate is the sample rate of Signal ("sr").
	Rate int

	// Extra holds caller-defined keys, and reserved keys whose value does
	// not have the typed field's type.
	Extra map[string]any

	present reservedKeys
}

// NewSandbox returns a sandbox holding empty history and state.
func NewSandbox() *Sandbox {
	return &Sandbox{
		History: []any{},
		State:   []any{},
		Extra:   map[string]any{},
		present: hasHistory | hasState,
	}
}

// Has reports whether key is present.
func (s *Sandbox) Has(key string) bool {
	if bit := reservedBit(key); bit != 0 && s.present&bit != 0 {
		return true
	}
	_, ok := s.Extra[key]
	return ok
}

// Get returns the value stored under key. Reserved keys return their typed
// value: []any for history and state, [][]float32 for y, int for sr.
func (s *Sandbox) Get(key string) (any, bool) {
	bit := reservedBit(key)
	if bit != 0 && s.present&bit != 0 {
		switch bit {
		case hasHistory:
			return s.History, true
		case hasState:
			return s.State, true
		case hasSignal:
			return s.Signal, true
		case hasRate:
			return s.Rate, true
		}
	}
	v, ok := s.Extra[key]
	return v, ok
}

// Set stores value under key, replacing any previous value. Set never
// rejects a value: a reserved key is held in its typed field only when value
// already has that field's type ([]any for history and state, [][]float32
// for y, int for sr), and is otherwise kept verbatim in Extra.
func (s *Sandbox) Set(key string, value any) {
	s.assign(key, value, s.setReserved)
}

// setDecoded is Set for values decoded from JSON, converting the shapes
// encoding/json produces into the typed fields.
func (s *Sandbox) setDecoded(key string, value any) {
	s.assign(key, value, s.convertReserved)
}

func (s *Sandbox) assign(key string, value any, store func(reservedKeys, any) bool) {
	bit := reservedBit(key)
	if bit != 0 && store(bit, value) {
		delete(s.Extra, key)
		s.present |= bit
		return
	}
	if bit != 0 {
		s.clearReserved(bit)
	}
	if s.Extra == nil {
		s.Extra = map[string]any{}
	}
	s.Extra[key] = value
}

// Delete removes key and returns its previous value.
func (s *Sandbox) Delete(key string) (any, bool) {
	v, ok := s.Get(key)
	if !ok {
		return nil, false
	}
	if bit := reservedBit(key); bit != 0 && s.present&bit != 0 {
		s.clearReserved(bit)
	} else {
		delete(s.Extra, key)
	}
	return v, true
}

// Keys returns the present keys: reserved keys first in a fixed order, then
// the remaining keys sorted.
func (s *Sandbox) Keys() []string {
	var keys []string
	for _, k := range []string{KeyHistory, KeyState, KeySignal, KeyRate} {
		if s.present&reservedBit(k) != 0 {
			keys = append(keys, k)
		}
	}
	return append(keys, slices.Sorted(maps.Keys(s.Extra))...)
}

// Len returns the number of present keys.
func (s *Sandbox) Len() int {
	return len(s.Keys())
}

// Audio returns the packed signal, if both y and sr are present and hold
// (or convert to) channel samples and an integer rate.
func (s *Sandbox) Audio() (*types.Signal, bool) {
	if !s.Has(KeySignal) || !s.Has(KeyRate) {
		return nil, false
	}
	samples := s.Signal
	if s.present&hasSignal == 0 {
		var ok bool
		if samples, ok = toChannels(s.Extra[KeySignal]); !ok {
			return nil, false
		}
	}
	rate := s.Rate
	if s.present&hasRate == 0 {
		var ok bool
		if rate, ok = toRate(s.Extra[KeyRate]); !ok {
			return nil, false
		}
	}
	return &types.Signal{Samples: samples, Rate: rate}, true
}

func (s *Sandbox) clearReserved(bit reservedKeys) {
	s.present &^= bit
	switch bit {
	case hasHistory:
		s.History = nil
	case hasState:
		s.State = nil
	case hasSignal:
		s.Signal = nil
	case hasRate:
		s.Rate = 0
	}
}

func (s *Sandbox) setReserved(bit reservedKeys, value any) bool {
	switch bit {
	case hasHistory:
		v, ok := value.([]any)
		if ok {
			s.History = v
		}
		return ok
	case hasState:
		v, ok := value.([]any)
		if ok {
			s.State = v
		}
		return ok
	case hasSignal:
		v, ok := value.([][]float32)
		if ok {
			s.Signal = v
		}
		return ok
	case hasRate:
		v, ok := value.(int)
		if ok {
			s.Rate = v
		}
		return ok
	}
	return false
}

func (s *Sandbox) convertReserved(bit reservedKeys, value any) bool {
	switch bit {
	case hasHistory:
		v, ok := toList(value)
		if ok {
			s.History = v
		}
		return ok
	case hasState:
		v, ok := toList(value)
		if ok {
			s.State = v
		}
		return ok
	case hasSignal:
		v, ok := toChannels(value)
		if ok {
			s.Signal = v
		}
		return ok
	case hasRate:
		v, ok := toRate(value)
		if ok {
			s.Rate = v
		}
		return ok
	}
	return false
}

// toList accepts any slice or array.
func toList(value any) ([]any, bool) {
	if v, ok := value.([]any); ok {
		return v, v != nil
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// toChannels accepts channel-major float buffers, single-channel buffers,
// signals, and the []any shapes produced by encoding/json.
func toChannels(value any) ([][]float32, bool) {
	switch v := value.(type) {
	case [][]float32:
		return v, v != nil
	case []float32:
		return [][]float32{v}, v != nil
	case [][]float64:
		out := make([][]float32, len(v))
		for c, ch := range v {
			out[c] = toFloat32(ch)
		}
		return out, v != nil
	case []float64:
		return [][]float32{toFloat32(v)}, v != nil
	case *types.Signal:
		if v == nil {
			return nil, false
		}
		return v.Samples, true
	case types.Signal:
		return v.Samples, true
	case []any:
		return anyToChannels(v)
	}
	return nil, false
}

func toFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, x := range in {
		out[i] = float32(x)
	}
	return out
}

func anyToChannels(v []any) ([][]float32, bool) {
	if len(v) == 0 {
		return [][]float32{}, true
	}
	if _, nested := v[0].([]any); !nested {
		ch, ok := anyToFloats(v)
		if !ok {
			return nil, false
		}
		return [][]float32{ch}, true
	}
	out := make([][]float32, len(v))
	for c, row := range v {
		r, ok := row.([]any)
		if !ok {
			return nil, false
		}
		if out[c], ok = anyToFloats(r); !ok {
			return nil, false
		}
	}
	return out, true
}

func anyToFloats(v []any) ([]float32, bool) {
	out := make([]float32, len(v))
	for i, x := range v {
		f, ok := x.(float64)
		if !ok {
			return nil, false
		}
		out[i] = float32(f)
	}
	return out, true
}

// toRate accepts any integer, or a float with no fractional part.
func toRate(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	}
	if n, ok := value.(json.Number); ok {
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}

// MarshalJSON flattens the sandbox into a single JSON object.
func (s *Sandbox) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, s.Len())
	for _, k := range s.Keys() {
		out[k], _ = s.Get(k)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode muda sandbox: %w", err)
	}
	return data, nil
}

// UnmarshalJSON reads a flat JSON object, routing reserved keys to their
// typed fields.
func (s *Sandbox) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("decode muda sandbox: %w", err)
	}
	*s = *sandboxFromMap(m)
	return nil
}

func sandboxFromMap(m map[string]any) *Sandbox {
	s := &Sandbox{Extra: make(map[string]any, len(m))}
	for k, v := range m {
		s.setDecoded(k, v)
	}
	return s
}
