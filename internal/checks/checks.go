// Package checks holds table helpers shared by the gocheck suites.
package checks

import (
	"fmt"

	. "gopkg.in/check.v1"
)

type TestData struct {
	Obtained    interface{}
	Checker     Checker
	Expected    interface{}
	Description string
}

type TestSlice []TestData

// Test runs every row. Single parameter checkers such as IsNil ignore Expected.
func (s TestSlice) Test(c *C) {
	for i, t := range s {
		comment := Commentf("Test: %d Description: %s", i, t.Description)
		if len(t.Checker.Info().Params) == 1 {
			c.Check(t.Obtained, t.Checker, comment)
			continue
		}
		c.Check(t.Obtained, t.Checker, t.Expected, comment)
	}
}

func ErrorCheck(_ interface{}, err error) error {
	return err
}

func HexCheck(b []byte) string {
	return fmt.Sprintf("%X", b)
}
