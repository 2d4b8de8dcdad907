//go:build gofuzz

package bencode

import (
	"crypto/sha1"
	"fmt"
	"log"
	"os"
	"testing"
)

// TestFuzzGenerate is not a test - it's a program that puts the well-formed
// inputs of the main tests (parseTests) into fuzz/corpus. It is implemented as test because we
// need *_test.go files to be linked in to get to test data defined there.
//
// It is triggered to be run by go:generate from bencode_test.go .
func TestFuzzGenerate(t *testing.T) {
	for _, test := range parseTests {
		err := os.WriteFile(
			fmt.Sprintf("fuzz/corpus/test-%x.bencode", sha1.Sum([]byte(test.input))),
			[]byte(test.input), 0666)
		if err != nil {
			log.Fatal(err)
		}
	}
}
