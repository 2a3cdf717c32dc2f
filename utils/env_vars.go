package utils

import (
	"fmt"
	"os"
	"strconv"
)

func GetEnv[T int | string | bool](name string, defaultValue T) T {
	value, found := os.LookupEnv(name)
	if !found {
		return defaultValue
	}

	parsed, err := parseEnv[T](name, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func GetRequiredEnv[T int | string | bool](name string) T {
	value, found := os.LookupEnv(name)
	if !found {
		panic(fmt.Sprintf("required environment variable %s is not set", name))
	}

	parsed, err := parseEnv[T](name, value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func parseEnv[T int | string | bool](name, value string) (T, error) {
	var zero T

	switch any(zero).(type) {
	case string:
		return any(value).(T), nil
	case int:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s is not an int: %w", name, err)
		}
		return any(parsed).(T), nil
	case bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s is not a bool: %w", name, err)
		}
		return any(parsed).(T), nil
	}
	return zero, fmt.Errorf("unsupported type for environment variable %s", name)
}
