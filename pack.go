package muda

import (
	"fmt"

	"github.com/zaidbabid/muda/jams"
)

// SandboxOf returns the muda sandbox of jam.
//
// A sandbox decoded from disk is stored as a plain map; SandboxOf converts it
// to a *Sandbox and stores the result back in jam, so later calls observe the
// same value. It reports false when jam has no muda entry, or when the entry
// is not a mapping.
func SandboxOf(jam *jams.JAMS) (*Sandbox, bool) {
	if jam == nil || jam.Sandbox == nil {
		return nil, false
	}
	v, ok := jam.Sandbox.Get(SandboxKey)
	if !ok {
		return nil, false
	}

	switch sb := v.(type) {
	case *Sandbox:
		return sb, sb != nil
	case Sandbox:
		p := &sb
		jam.Sandbox.Set(SandboxKey, p)
		return p, true
	case map[string]any:
		p := sandboxFromMap(sb)
		jam.Sandbox.Set(SandboxKey, p)
		return p, true
	case jams.Sandbox:
		p := sandboxFromMap(sb)
		jam.Sandbox.Set(SandboxKey, p)
		return p, true
	}
	return nil, false
}

// JamPack merges values into the muda sandbox of jam and returns jam.
//
// If jam has no muda sandbox, one is created with empty history and state.
// Keys already present are overwritten; other keys are left alone. jam is
// modified in place. Values are not validated.
//
//	jam := jams.New()
//	muda.JamPack(jam, map[string]any{"y": sig.Samples, "sr": sig.Rate})
func JamPack(jam *jams.JAMS, values map[string]any) *jams.JAMS {
	if jam == nil {
		return nil
	}
	if jam.Sandbox == nil {
		jam.Sandbox = jams.Sandbox{}
	}

	sb, ok := SandboxOf(jam)
	if !ok {
		if v, exists := jam.Sandbox.Get(SandboxKey); exists {
			warn(Warning{
				Stage:   "sandbox",
				Message: fmt.Sprintf("replacing non-mapping muda sandbox of type %T", v),
			})
		}
		sb = NewSandbox()
		jam.Sandbox.Set(SandboxKey, sb)
	}

	for k, v := range values {
		sb.Set(k, v)
	}
	return jam
}

// JamPop removes keys from the muda sandbox of jam and returns the removed
// values by key.
//
// If jam has no muda sandbox, JamPop logs a warning and returns nil, nil.
// A key that is not present fails with *KeyError. Keys are removed in the
// order given, so keys before the missing one have already been removed
// when the error is returned.
func JamPop(jam *jams.JAMS, keys ...string) (map[string]any, error) {
	sb, ok := SandboxOf(jam)
	if !ok {
		warn(Warning{Stage: "sandbox", Message: "no muda sandbox found in jam"})
		return nil, nil
	}

	out := make(map[string]any, len(keys))
	for _, key := range keys {
		v, ok := sb.Delete(key)
		if !ok {
			return nil, &KeyError{Key: key}
		}
		out[key] = v
	}
	return out, nil
}
