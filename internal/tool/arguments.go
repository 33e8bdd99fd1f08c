package tool

import (
	"encoding/json"
	"math"
	"strconv"

	apperrors "github.com/spec-kit/support-mesh/pkg/util"
)

// Argument coercion for untyped caller input. Unknown extra arguments are
// ignored; only declared arguments are read at all.

func requireInt(args map[string]any, name string) (int64, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, apperrors.NewInvalidArgument(name, "required integer argument is missing")
	}
	return coerceInt(name, raw)
}

func optionalInt(args map[string]any, name string, fallback int64) (int64, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return fallback, nil
	}
	return coerceInt(name, raw)
}

func coerceInt(name string, raw any) (int64, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		// JSON numbers decode as float64; only integral values qualify.
		if v != math.Trunc(v) {
			return 0, apperrors.NewInvalidArgument(name, "expected an integer")
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, apperrors.NewInvalidArgument(name, "expected an integer")
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, apperrors.NewInvalidArgument(name, "expected an integer")
		}
		return n, nil
	default:
		return 0, apperrors.NewInvalidArgument(name, "expected an integer")
	}
}

func requireString(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", apperrors.NewInvalidArgument(name, "required string argument is missing")
	}
	s, ok := raw.(string)
	if !ok {
		return "", apperrors.NewInvalidArgument(name, "expected a string")
	}
	return s, nil
}

func optionalString(args map[string]any, name string) (*string, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, apperrors.NewInvalidArgument(name, "expected a string")
	}
	return &s, nil
}

func requireObject(args map[string]any, name string) (map[string]any, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return nil, apperrors.NewInvalidArgument(name, "required object argument is missing")
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, apperrors.NewInvalidArgument(name, "expected an object")
	}
	return obj, nil
}
