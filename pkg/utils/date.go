package utils

import (
	"strconv"
	"time"
)

// ParseDate interpreta YYYY-MM-DD; string vazia resulta em nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseOptionalInt converte parâmetros numéricos de query; string vazia resulta em nil
func ParseOptionalInt(value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}

	return &n, nil
}
