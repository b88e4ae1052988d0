package treediff

import (
	"fmt"
	"strings"

	"github.com/asttools/treediff/tree"
)

func kindMismatch(expected, actual tree.Kind) string {
	return fmt.Sprintf("expected %s but found %s", expected, actual)
}

func nameMismatch(what, expected, actual string) string {
	return fmt.Sprintf("%s differs: expected %q but found %q", what, expected, actual)
}

func valueMismatch(expected, actual any) string {
	return fmt.Sprintf("expected literal %s but found %s",
		tree.FormatValue(expected), tree.FormatValue(actual))
}

func labelMismatch(expected, actual string) string {
	switch {
	case expected == "":
		return fmt.Sprintf("expected no label but found %q", actual)
	case actual == "":
		return fmt.Sprintf("expected label %q but found none", expected)
	default:
		return nameMismatch("label", expected, actual)
	}
}

func modifiersMismatch(expected, actual []string) string {
	return fmt.Sprintf("modifiers differ: expected [%s] but found [%s]",
		strings.Join(expected, " "), strings.Join(actual, " "))
}

func shapeMismatch(kind tree.Kind, role tree.Role, expectedHas bool) string {
	if expectedHas {
		return fmt.Sprintf("%s shape differs: expected side has %s, actual side has none", kind, role)
	}
	return fmt.Sprintf("%s shape differs: actual side has %s, expected side has none", kind, role)
}

func onlyOnSide(side Side) string {
	return fmt.Sprintf("present only in %s tree", side)
}

func unpairedMember(key memberKey) string {
	return fmt.Sprintf("no %s in actual tree", key)
}
