package fuzztests

import (
	"testing"

	"phpfix/internal/fix"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var handSeeds = []string{
	"",
	"<?php\n",
	"<html><?= $x ?></html>",
	"<?php\n#[Foo] #[Bar] class Baz {}\n",
	"<?php\n#[A]\n/** doc */\nfinal class B {}\n",
	"<?php\n/** doc */\n#[A] abstract readonly class B {}\n",
	"<?php\n#[A(1, [2, 3])] function f(#[SensitiveParameter] $p) {}\n",
	"<?php\nclass A {\n    #[Test] /** d */ public function f() {}\n}\n",
	"<?php\r\n#[A] class B {}\r\n",
	"<?php\n#[A class B {}",
	"<?php\n$s = <<<EOT\n#[not] an attribute\nEOT;\n",
	"<?php\n$x = Foo::class; #[A] enum E {}\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range handSeeds {
		f.Add([]byte(s))
	}
	// примеры из описаний правил
	for _, fx := range []fix.Fixer{fix.NewAttributesNewLine(), fix.NewPhpdocAboveAttribute()} {
		for _, sample := range fx.Definition().Samples {
			f.Add(clampSeed([]byte(sample.Code)))
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return src
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
