package fix_test

import (
	"testing"

	"phpfix/internal/fix"
)

func TestPhpdocAboveAttribute(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "doc between attribute and class",
			in:   "<?php\n\n#[AsAlias]\n/**\n * This is a class comment.\n */\nclass MyClass {}\n",
			want: "<?php\n\n/**\n * This is a class comment.\n */\n#[AsAlias]\nclass MyClass {}\n",
		},
		{
			name: "several attributes and a modifier",
			in:   "<?php\n#[A]\n#[B(1)]\n/** d */\nfinal class C {}\n",
			want: "<?php\n/** d */\n#[A]\n#[B(1)]\nfinal class C {}\n",
		},
		{
			name: "attributes on both sides keep their order",
			in:   "<?php\n#[A(['x' => [1, 2]])]\n/** d */\n#[B] readonly class C {}\n",
			want: "<?php\n/** d */\n#[A(['x' => [1, 2]])]\n#[B] readonly class C {}\n",
		},
		{
			name: "after a statement without whitespace",
			in:   "<?php\n$x = Foo::class;#[A]\n/** d */\nclass E {}\n",
			want: "<?php\n$x = Foo::class;/** d */\n#[A]\nclass E {}\n",
		},
		{
			name: "every class in the file",
			in:   "<?php\n#[A]\n/** a */\nclass A {}\n#[B]\n/** b */\nclass B {}\n",
			want: "<?php\n/** a */\n#[A]\nclass A {}\n/** b */\n#[B]\nclass B {}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectFixed(t, fix.NewPhpdocAboveAttribute(), tc.in, tc.want)
		})
	}
}

func TestPhpdocAboveAttributeNoop(t *testing.T) {
	cases := map[string]string{
		"already above":       "<?php\n/** d */\n#[A]\nclass B {}\n",
		"function":            "<?php\n#[A]\n/** d */\nfunction f() {}\n",
		"interface":           "<?php\n#[A]\n/** d */\ninterface I {}\n",
		"no attribute":        "<?php\n/** d */\nclass B {}\n",
		"two doc comments":    "<?php\n#[A]\n/** x */\n/** y */\nclass B {}\n",
		"class constant name": "<?php\n#[A]\n/** d */\n$x = Foo::class;\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			got, res := run(t, src, fix.NewPhpdocAboveAttribute())
			if got != src || res.Changed() {
				t.Fatalf("expected no change, got %q", got)
			}
		})
	}
}

func TestPhpdocAboveAttributeRunsFirst(t *testing.T) {
	if fix.NewPhpdocAboveAttribute().Priority() <= fix.NewAttributesNewLine().Priority() {
		t.Fatal("phpdoc_above_attribute must outrank attributes_new_line")
	}
}

// Doc comments interleaved with attributes settle over two passes: each pass
// lifts only the doc comment closest to the class keyword.
func TestPhpdocAboveAttributeInterleavedDocs(t *testing.T) {
	const (
		in     = "<?php\n#[A]\n/** d */\n#[B]\n/** e */\nclass W {}\n"
		first  = "<?php\n/** e */\n#[A]\n/** d */\n#[B]\nclass W {}\n"
		second = "<?php\n/** e */\n/** d */\n#[A]\n#[B]\nclass W {}\n"
	)
	expectFixed(t, fix.NewPhpdocAboveAttribute(), in, first)
	expectFixed(t, fix.NewPhpdocAboveAttribute(), first, second)
	expectFixed(t, fix.NewPhpdocAboveAttribute(), second, second)
}
