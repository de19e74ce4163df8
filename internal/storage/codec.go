package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"lottogen/internal/model"
)

var ErrMalformedArchive = errors.New("malformed combination archive")

// EncodeArchive renders the archive as a JSON array. A nil archive encodes as [].
func EncodeArchive(combinations []model.Combination) (string, error) {
	if combinations == nil {
		combinations = []model.Combination{}
	}
	data, err := json.Marshal(combinations)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func DecodeArchive(data string) ([]model.Combination, error) {
	var combinations []model.Combination
	if err := json.Unmarshal([]byte(data), &combinations); err != nil {
		return nil, err
	}
	for i, c := range combinations {
		if err := checkCombination(c); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedArchive, i, err)
		}
	}
	if combinations == nil {
		combinations = []model.Combination{}
	}
	return combinations, nil
}

func checkCombination(c model.Combination) error {
	if len(c.Numbers) == 0 {
		return errors.New("no numbers")
	}
	for i := 1; i < len(c.Numbers); i++ {
		if c.Numbers[i] <= c.Numbers[i-1] {
			return fmt.Errorf("numbers not strictly ascending: %v", c.Numbers)
		}
	}
	if c.Numbers[0] < 1 {
		return fmt.Errorf("number out of range: %d", c.Numbers[0])
	}
	if c.Bonus < 1 {
		return fmt.Errorf("bonus out of range: %d", c.Bonus)
	}
	return nil
}
