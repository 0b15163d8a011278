package factory

import (
	"fmt"
	"reflect"
	"sync"
)

// Factory creates test fixtures. Every object that is created is kept so
// that tests can look them up later.
type Factory struct {
	mu      sync.Mutex
	objects []any
}

// New returns a new factory.
func New() *Factory {
	return &Factory{}
}

func (f *Factory) newObject(obj any) any {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.objects = append(f.objects, obj)
	return obj
}

// factoryLookup returns the first object of type T.
func factoryLookup[T any](f *Factory) *T {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, obj := range f.objects {
		if v, ok := obj.(*T); ok {
			return v
		}
	}

	return nil
}

// merge sets the fields named in the map on the struct pointed by dst.
func merge(dst any, overwrites map[string]any) {
	v := reflect.ValueOf(dst).Elem()

	for name, value := range overwrites {
		field := v.FieldByName(name)

		if !field.IsValid() {
			panic(fmt.Sprintf("factory: unknown field %s", name))
		}

		if value == nil {
			field.Set(reflect.Zero(field.Type()))
			continue
		}

		val := reflect.ValueOf(value)

		if !val.Type().AssignableTo(field.Type()) {
			val = val.Convert(field.Type())
		}

		field.Set(val)
	}
}
