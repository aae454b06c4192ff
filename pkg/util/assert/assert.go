package assert

import (
	"reflect"
	"testing"
)

// Equal errors if actual is not equal to expected.  Integers of differing
// (integer) types are compared by value, so an untyped constant can be checked
// against a uint result.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || intEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	report(t, msg)
	t.FailNow()
}

// True errors if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if condition {
		return
	}

	t.Errorf("condition is false")
	report(t, msg)
	t.FailNow()
}

// False errors if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()
	//
	if !condition {
		return
	}

	t.Errorf("condition is true")
	report(t, msg)
	t.FailNow()
}

func report(t *testing.T, msg []any) {
	t.Helper()
	//
	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
}

// intEqual returns whether expected and actual are both integers holding the
// same value.
func intEqual(expected, actual any) bool {
	a, aok := asInt(expected)
	b, bok := asInt(actual)
	//
	return aok && bok && a.neg == b.neg && a.mag == b.mag
}

type integer struct {
	neg bool
	mag uint64
}

func asInt(x any) (integer, bool) {
	v := reflect.ValueOf(x)
	//
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i := v.Int(); i < 0 {
			return integer{true, uint64(-i)}, true
		} else {
			return integer{false, uint64(i)}, true
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return integer{false, v.Uint()}, true
	default:
		return integer{}, false
	}
}
