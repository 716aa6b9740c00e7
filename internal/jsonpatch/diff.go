// Package jsonpatch computes RFC 6902 patches between two JSON documents.
// The engine uses it to tell a display which derived metrics changed after
// a mutation.
package jsonpatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

type Operation struct {
	Op    string
	Path  string
	Value any
}

// MarshalJSON omits "value" only for remove, so a replace with null keeps
// its value member.
func (o Operation) MarshalJSON() ([]byte, error) {
	if o.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	return json.Marshal(struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
	}{o.Op, o.Path, o.Value})
}

// Between marshals a and b to JSON and diffs the results.
func Between(a, b any) ([]Operation, error) {
	da, err := decode(a)
	if err != nil {
		return nil, fmt.Errorf("encode source: %w", err)
	}
	db, err := decode(b)
	if err != nil {
		return nil, fmt.Errorf("encode target: %w", err)
	}
	return Diff(da, db, ""), nil
}

// Marshal encodes ops, using "[]" for an empty patch.
func Marshal(ops []Operation) (json.RawMessage, error) {
	if len(ops) == 0 {
		return json.RawMessage("[]"), nil
	}
	return json.Marshal(ops)
}

func decode(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Diff computes the patch that transforms a into b. Both must be the result
// of json.Unmarshal into an interface{}; path is "" for the document root.
// Object keys are visited in sorted order so the output is stable.
func Diff(a, b any, path string) []Operation {
	if a == nil && b == nil {
		return nil
	}
	if a == nil || b == nil {
		return []Operation{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []Operation{replaceOp(path, b)}
	}
	return nil
}

func diffObjects(a, b map[string]any, path string) []Operation {
	var ops []Operation

	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
			continue
		}
		ops = append(ops, Diff(av, b[k], childPath)...)
	}
	return ops
}

func diffArrays(a, b []any, path string) []Operation {
	var ops []Operation
	common := min(len(a), len(b))

	for i := 0; i < common; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}
	// removals run backwards so earlier indexes stay valid
	for i := len(a) - 1; i >= common; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}
	for i := common; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}
	return ops
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func replaceOp(path string, value any) Operation {
	return Operation{Op: "replace", Path: path, Value: value}
}

func addOp(path string, value any) Operation {
	return Operation{Op: "add", Path: path, Value: value}
}

func removeOp(path string) Operation {
	return Operation{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
