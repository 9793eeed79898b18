package test

import (
	"fmt"
	"math/rand"
	"strings"
)

var operators = []string{"+", "-", "*", "/"}

// GetRandomProgram returns a valid program with size variables. Every
// variable is declared before any assignment, and every assignment only
// reads variables that were declared.
func GetRandomProgram(size int) string {
	return GetRandomProgramWithSep(size, "\n")
}

func GetRandomProgramWithSep(size int, sep string) string {
	if size < 1 {
		size = 1
	}

	var stmts []string
	names := make([]string, size)
	for i := range names {
		names[i] = fmt.Sprintf("v%d", i)

		typ := "int"
		if rand.Intn(2) == 0 {
			typ = "float"
		}

		stmts = append(stmts, fmt.Sprintf("var %s: %s;", names[i], typ))
	}

	for _, name := range names {
		stmts = append(stmts, fmt.Sprintf("%s = %s;", name, randomOperand(names)))
	}

	for _, name := range names {
		// Only a variable may start a binary expression
		stmts = append(stmts, fmt.Sprintf("%s = %s %s %s;",
			name,
			names[rand.Intn(len(names))],
			operators[rand.Intn(len(operators))],
			randomOperand(names),
		))
	}

	return strings.Join(stmts, sep)
}

func randomOperand(names []string) string {
	switch rand.Intn(3) {
	case 0:
		return fmt.Sprintf("%d", rand.Intn(1000))
	case 1:
		return fmt.Sprintf("%d.%d", rand.Intn(100), rand.Intn(100))
	default:
		return names[rand.Intn(len(names))]
	}
}
