package session

import (
	"errors"
	"fmt"

	"keycalc/internal/domain"
)

// ErrUnknownKey is returned for keys that are not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

type keyKind int

const (
	keyDigit keyKind = iota
	keyPoint
	keyOperator
	keyEquals
	keyPercent
	keyToggleSign
	keyClearEntry
	keyClearAll
)

// Keys lists every key label the keypad accepts, keyboard aliases last.
var Keys = []domain.Key{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".",
	"+", "-", "–", "−", "*", "×", "/", "÷",
	"=", "%", "+/-", "C", "AC",
	"Enter", "Backspace",
}

func classify(k domain.Key) (keyKind, error) {
	switch k {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return keyDigit, nil
	case ".":
		return keyPoint, nil
	case "+", "-", "–", "−", "*", "×", "/", "÷":
		return keyOperator, nil
	case "=", "Enter":
		return keyEquals, nil
	case "%":
		return keyPercent, nil
	case "+/-":
		return keyToggleSign, nil
	case "C", "Backspace":
		return keyClearEntry, nil
	case "AC":
		return keyClearAll, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, string(k))
}
