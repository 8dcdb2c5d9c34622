package model

import (
	"fmt"
	"strings"
)

// Reserved characters: ';' separates store fields and '#' separates
// protocol fields, so neither may appear in stored values.
const reserved = ";#\n\r"

// ValidateAlias checks that alias can be stored and matched.
func ValidateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("%w: empty alias", ErrInvalidArgument)
	}
	if strings.ContainsAny(alias, reserved+" \t") {
		return fmt.Errorf("%w: alias %q contains a reserved character", ErrInvalidArgument, alias)
	}
	return nil
}

// ValidatePath checks that path can be stored and emitted.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	if strings.ContainsAny(path, reserved) {
		return fmt.Errorf("%w: path %q contains a reserved character", ErrInvalidArgument, path)
	}
	return nil
}

// ValidateOpener checks an opener; empty is allowed.
func ValidateOpener(opener string) error {
	if strings.ContainsAny(opener, reserved) {
		return fmt.Errorf("%w: opener %q contains a reserved character", ErrInvalidArgument, opener)
	}
	return nil
}
