package logfactory

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent runaway structures
const maxDumpDepth = 10

// Dump logs the contents of the provided value at debug level. Structs are
// expanded to their exported fields, maps and slices to their elements;
// pointer cycles are cut off.
func (l *Logger) Dump(v any) {
	if l == nil {
		return
	}
	if v == nil {
		l.Debug("dump: <nil>")
		return
	}

	visited := make(map[uintptr]bool)
	l.Debug("dump", Fields{
		"type":  fmt.Sprintf("%T", v),
		"value": dumpValue(reflect.ValueOf(v), visited, 0),
	})
}

func dumpValue(rv reflect.Value, visited map[uintptr]bool, depth int) any {
	if depth > maxDumpDepth {
		return "<max depth exceeded>"
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		addr := rv.Pointer()
		if visited[addr] {
			return "<cycle>"
		}
		visited[addr] = true
		return dumpValue(rv.Elem(), visited, depth+1)

	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return dumpValue(rv.Elem(), visited, depth+1)

	case reflect.Struct:
		t := rv.Type()
		out := make(map[string]any, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			out[t.Field(i).Name] = dumpValue(rv.Field(i), visited, depth+1)
		}
		return out

	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for _, k := range rv.MapKeys() {
			out[fmt.Sprintf("%v", k.Interface())] = dumpValue(rv.MapIndex(k), visited, depth+1)
		}
		return out

	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, dumpValue(rv.Index(i), visited, depth+1))
		}
		return out

	default:
		if rv.CanInterface() {
			return rv.Interface()
		}
		return rv.String()
	}
}
