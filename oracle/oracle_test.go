package oracle

import "testing"

func TestAcceptAll(t *testing.T) {
	for _, s := range []string{"", "a", "anything at all"} {
		if !AcceptAll.Query(s) {
			t.Errorf("AcceptAll.Query(%q) = false, want true", s)
		}
	}
}

func TestEquals(t *testing.T) {
	o := Equals("abc")
	if !o.Query("abc") {
		t.Error("Equals(\"abc\").Query(\"abc\") = false, want true")
	}
	if o.Query("abcd") {
		t.Error("Equals(\"abc\").Query(\"abcd\") = true, want false")
	}
}
