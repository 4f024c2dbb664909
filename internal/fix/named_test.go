package fix

import "testing"

func TestNamedPrefixesName(t *testing.T) {
	cases := map[string]string{
		"attributes_new_line":    "Custom/attributes_new_line",
		`Vendor\Fixer\SomeFixer`: "Custom/vendor_fixer_somefixer",
		"PhpdocAboveAttribute":   "Custom/phpdocaboveattribute",
	}
	for in, want := range cases {
		if got := CustomName(in); got != want {
			t.Errorf("CustomName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNamedForwards(t *testing.T) {
	inner := NewPhpdocAboveAttribute()
	w := Named(inner)
	if w.Name() != "Custom/phpdoc_above_attribute" {
		t.Fatalf("Name = %q", w.Name())
	}
	if w.Priority() != inner.Priority() || w.IsRisky() != inner.IsRisky() {
		t.Fatal("priority/risky not forwarded")
	}
	if w.Definition().Summary != inner.Definition().Summary {
		t.Fatal("definition not forwarded")
	}
	if !w.Supports("x.php") {
		t.Fatal("supports not forwarded")
	}
}

func TestNamedForwardsWhitespaces(t *testing.T) {
	inner := NewAttributesNewLine()
	w := Named(inner)
	aware, ok := w.(WhitespacesAware)
	if !ok {
		t.Fatal("Named must be whitespace-aware")
	}
	aware.SetWhitespaces(Whitespaces{Indent: "\t", LineEnding: "\r\n"})
	if inner.ws.LineEnding != "\r\n" {
		t.Fatal("whitespace config not forwarded")
	}
	// не падает на фиксере без настроек пробелов
	Named(NewPhpdocAboveAttribute()).(WhitespacesAware).SetWhitespaces(DefaultWhitespaces())
}

func TestDefinitionOptions(t *testing.T) {
	d := NewDefinition("s", WithVersionedSample("a", 70400), WithVersionedSample("b", 80000), WithDescription("long"), nil)
	if len(d.Samples) != 2 || d.Samples[1].MinPHP != 80000 || d.Description != "long" {
		t.Fatalf("definition = %+v", d)
	}
}
