package miniopt

import (
	"errors"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	results, err := Parse([]string{"prog", "-ab", "--key=v", "file", "--", "-c"}, flagTable)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []Result{
		{Index: 0},
		{Index: 1},
		{Index: 5, Arg: "v", HasArg: true},
		{Index: flagPositional, Arg: "file", HasArg: true},
		{Index: flagPositional, Arg: "-c", HasArg: true},
	}
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %d: %+v", len(want), len(results), results)
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("result %d: expected %+v, got %+v", i, want[i], results[i])
		}
	}
	if !results[3].Positional(flagTable) || results[2].Positional(flagTable) {
		t.Error("Positional reported the wrong results")
	}
}

func TestParseKeepsResultsBeforeError(t *testing.T) {
	results, err := Parse([]string{"prog", "-a", "pos", "--nope", "-b"}, flagTable)
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("Expected ErrUnknownOption, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results before the error, got %+v", results)
	}
}

func TestParseInvalidTable(t *testing.T) {
	results, err := Parse([]string{"prog", "-a"}, []Option{{}})
	if !errors.Is(err, ErrInvalidTable) {
		t.Fatalf("Expected ErrInvalidTable, got %v", err)
	}
	if results != nil {
		t.Errorf("Expected no results, got %+v", results)
	}
}

func TestParseErrorSurvivesSessionReuse(t *testing.T) {
	_, first := Parse([]string{"prog", "-z"}, flagTable)
	_, second := Parse([]string{"prog", "--key"}, flagTable)

	if first == nil || second == nil {
		t.Fatal("Expected both parses to fail")
	}
	if first.Error() != "option -z is unknown." {
		t.Errorf("First error was overwritten: %q", first.Error())
	}
	if second.Error() != "option --key argument is missing." {
		t.Errorf("Unexpected second error: %q", second.Error())
	}
}

func TestParseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				results, err := Parse([]string{"prog", "-abc", "--extra", "x"}, flagTable)
				if err != nil {
					t.Errorf("Parse failed: %v", err)
					return
				}
				if len(results) != 4 || results[3].Arg != "x" {
					t.Errorf("Unexpected results %+v", results)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkParse(b *testing.B) {
	args := []string{"prog", "-abc", "--key=value", "-xarg", "pos", "--", "-a"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(args, flagTable); err != nil {
			b.Fatal(err)
		}
	}
}
