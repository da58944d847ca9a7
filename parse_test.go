package yelphelp

import "testing"

func TestExtractCommand(t *testing.T) {
	data := []struct {
		text     string
		expected string
		ok       bool
	}{
		{text: "SearchByPhone 19055555555", expected: "searchbyphone", ok: true},
		{text: "  nearby 1 Main St", expected: "nearby", ok: true},
		{text: "HELP", expected: "help", ok: true},
		{text: "", ok: false},
		{text: "   ", ok: false},
		{text: "!! hello", ok: false},
	}

	for _, datum := range data {
		keyword, ok := ExtractCommand(datum.text)
		if ok != datum.ok {
			t.Errorf("Unexpected result for %q: %t.", datum.text, ok)
			continue
		}

		if keyword != datum.expected {
			t.Errorf("Unexpected keyword is returned for %q: %s.", datum.text, keyword)
		}
	}
}

func TestExtractPhoneNumber(t *testing.T) {
	data := []struct {
		text     string
		expected string
		ok       bool
	}{
		{text: "SearchByPhone 19055555555", expected: "19055555555", ok: true},
		{text: "searchbyphone 5", expected: "5", ok: true},
		{text: "searchbyphone 19055555555 please", expected: "19055555555", ok: true},
		{text: "SearchByPhone 19055555555.", expected: "19055555555", ok: true},
		{text: "searchbyphone 19055555555, thanks", expected: "19055555555", ok: true},
		{text: "searchbyphone 123456789012", ok: false},
		{text: "searchbyphone 19055555555abc", ok: false},
		{text: "searchbyphone +19055555555", ok: false},
		{text: "searchbyphone abc", ok: false},
		{text: "searchbyphone", ok: false},
		{text: "19055555555", ok: false},
	}

	for _, datum := range data {
		phoneNumber, ok := ExtractPhoneNumber(datum.text)
		if ok != datum.ok {
			t.Errorf("Unexpected result for %q: %t.", datum.text, ok)
			continue
		}

		if phoneNumber != datum.expected {
			t.Errorf("Unexpected phone number is returned for %q: %s.", datum.text, phoneNumber)
		}
	}
}

func TestStripCommand(t *testing.T) {
	data := []struct {
		text     string
		expected string
	}{
		{text: "Nearby 1 Main St", expected: "1 Main St"},
		{text: "  top   Hamilton  ", expected: "Hamilton"},
		{text: "closest", expected: ""},
	}

	for _, datum := range data {
		stripped := StripCommand(datum.text)
		if stripped != datum.expected {
			t.Errorf("Unexpected text is returned for %q: %q.", datum.text, stripped)
		}
	}
}
