// Package golden runs table-driven tests whose table lives in the file
// system: every input file under a root directory is a test case, and the
// expected outputs are stored next to it.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// Root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a glob. Test cases whose
	// path matches it have their output files rewritten instead of checked.
	Refresh string

	// Extension (without a dot) of the files that define a test case.
	Extension string

	// Outputs of each test case. A missing output file is treated as empty.
	Outputs []Output
}

// Output is one output of a test case, stored in a file named after the
// test case plus "." plus Extension.
type Output struct {
	Extension string

	// Compare may be nil, in which case outputs are compared byte for byte.
	Compare Compare
}

// Compare compares two outputs. It returns an empty string if they match,
// or a description of the mismatch.
type Compare func(got, want string) string

// Run executes test once per test case. test receives the contents of the
// case and must fill outputs, which has one element per Output.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking test data:", err)
	}
	if len(tests) == 0 {
		t.Fatalf("golden: no .%s files found in %q", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("golden: refreshing test data because %s=%s", c.Refresh, refresh)
	}

	for _, path := range tests {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)

		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", path, err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(input), outputs)

			refreshing := false
			if refresh != "" {
				refreshing, _ = doublestar.Match(refresh, name)
			}

			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)

				if refreshing {
					if err := c.write(path, outputs[i]); err != nil {
						t.Errorf("golden: error while refreshing %q: %v", path, err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: error while loading output file %q: %v", path, err)
					continue
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = defaultCompare
				}
				if diff := cmp(outputs[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

func (c Corpus) write(path, output string) error {
	if output == "" {
		err := os.Remove(path)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.WriteFile(path, []byte(output), 0o644)
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	if diff == "" {
		// Same lines, different line endings or trailing newline.
		return fmt.Sprintf("want %q\ngot  %q", want, got)
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
