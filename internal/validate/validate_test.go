package validate

import "testing"

func TestEmail(t *testing.T) {
	valid := []string{
		"owner@example.com",
		"first.last@sub.domain.co",
		"user+tag@mail.io",
	}
	for _, e := range valid {
		if !Email(e) {
			t.Errorf("Email(%q) = false, want true", e)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@nouser.com",
		"user@nodot",
		"user @space.com",
	}
	for _, e := range invalid {
		if Email(e) {
			t.Errorf("Email(%q) = true, want false", e)
		}
	}
}

func TestDuration(t *testing.T) {
	if !Duration(30) {
		t.Error("Duration(30) should be valid")
	}
	if Duration(0) {
		t.Error("Duration(0) should be rejected")
	}
	if Duration(-15) {
		t.Error("Duration(-15) should be rejected")
	}
}

func TestPrice(t *testing.T) {
	if !Price(0) {
		t.Error("Price(0) should be valid")
	}
	if !Price(29.90) {
		t.Error("Price(29.90) should be valid")
	}
	if Price(-1) {
		t.Error("Price(-1) should be rejected")
	}
}
