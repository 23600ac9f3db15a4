package key

import "math"

// Of is the validation boundary where untyped values enter. It accepts
// Go scalars (all integer widths, floats, complex numbers, bools,
// strings), nil for None, and Key values, which are revalidated.
// Everything else, notably Go slices and maps, is rejected with a
// *BadKeyErr naming the value.
func Of(v any) (Key, error) {
	switch x := v.(type) {
	case Key:
		if !x.Valid() {
			return Key{}, &BadKeyErr{Value: v}
		}
		return x, nil
	case nil:
		return None(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return Key{}, &BadKeyErr{Value: v}
		}
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return Key{}, &BadKeyErr{Value: v}
		}
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case complex64:
		return Complex(complex128(x)), nil
	case complex128:
		return Complex(x), nil
	default:
		return Key{}, &BadKeyErr{Value: v}
	}
}
