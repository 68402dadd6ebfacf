package bind

import "reflect"

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
