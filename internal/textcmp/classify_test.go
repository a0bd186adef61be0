package textcmp

import (
	"testing"

	"github.com/verte-zerg/recite/internal/model"
)

func TestClassifyLengthMatchesRawWords(t *testing.T) {
	marks := Classify("One, two three!", "", model.Options{IgnorePunctuation: true})
	if len(marks) != 3 {
		t.Fatalf("expected 3 marks, got %d", len(marks))
	}
	for i, mark := range marks {
		if mark.State != model.WordPending {
			t.Fatalf("expected pending at %d, got %v", i, mark.State)
		}
	}
}

func TestClassifyKeepsRawDisplayWords(t *testing.T) {
	marks := Classify("Hello, World!", "hello world", model.Options{IgnoreCase: true, IgnorePunctuation: true})
	if marks[0].Word != "Hello," || marks[1].Word != "World!" {
		t.Fatalf("expected raw display words, got %+v", marks)
	}
	if marks[0].State != model.WordMatched || marks[1].State != model.WordMatched {
		t.Fatalf("expected all matched, got %+v", marks)
	}
}

func TestClassifyStates(t *testing.T) {
	marks := Classify("one two three", "one too", model.Options{})
	want := []model.WordState{model.WordMatched, model.WordMismatched, model.WordPending}
	for i, state := range want {
		if marks[i].State != state {
			t.Fatalf("position %d: expected %v, got %v", i, state, marks[i].State)
		}
	}
}

func TestClassifyFullMatch(t *testing.T) {
	reference := "the quick brown fox"
	marks := Classify(reference, reference, model.Options{})
	for i, mark := range marks {
		if mark.State != model.WordMatched {
			t.Fatalf("position %d: expected matched, got %v", i, mark.State)
		}
	}
}

func TestClassifyExtraAttemptBeyondReference(t *testing.T) {
	marks := Classify("one", "one two", model.Options{})
	if len(marks) != 1 {
		t.Fatalf("expected 1 mark, got %d", len(marks))
	}
	if marks[0].State != model.WordMatched {
		t.Fatalf("expected matched, got %v", marks[0].State)
	}
}
