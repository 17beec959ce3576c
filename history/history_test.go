package history

import "testing"

func TestRetrieveBeforeSave(t *testing.T) {
	h := New()

	rec, ok := h.Retrieve()
	if ok {
		t.Error("Retrieve should report false before any Save")
	}
	if rec.Kind != None {
		t.Error("empty history should have Kind None")
	}
}

func TestSaveAndRetrieve(t *testing.T) {
	h := New()

	h.Save(Record{
		Kind:            Choose,
		Options:         []string{"a", "b"},
		LastOptionClose: true,
	})

	rec, ok := h.Retrieve()
	if !ok {
		t.Fatal("Retrieve should report true after Save")
	}
	if rec.Kind != Choose {
		t.Errorf("Kind = %v, want Choose", rec.Kind)
	}
	if len(rec.Options) != 2 || rec.Options[0] != "a" || rec.Options[1] != "b" {
		t.Errorf("Options = %v, want [a b]", rec.Options)
	}
	if !rec.LastOptionClose {
		t.Error("LastOptionClose should survive the round trip")
	}
}

func TestSaveOverwrites(t *testing.T) {
	h := New()

	h.Save(Record{Kind: Choose, Options: []string{"a"}})
	h.Save(Record{Kind: Question, Text: "Q", Newline: true})

	rec, _ := h.Retrieve()
	if rec.Kind != Question {
		t.Errorf("Kind = %v, want Question", rec.Kind)
	}
	if rec.Text != "Q" {
		t.Errorf("Text = %q, want %q", rec.Text, "Q")
	}
	if rec.Options != nil {
		t.Error("overwritten record should not keep the old options")
	}
}

func TestSaveCopiesOptions(t *testing.T) {
	h := New()

	opts := []string{"a", "b"}
	h.Save(Record{Kind: Choose, Options: opts})

	opts[0] = "mutated"

	rec, _ := h.Retrieve()
	if rec.Options[0] != "a" {
		t.Error("Save should copy the option list")
	}
}
