package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addMarkupSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.wiki файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".wiki" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addMarkupSeeds покрывает каждую конструкцию разметки хотя бы одним образцом.
func addMarkupSeeds(f *testing.F) {
	seeds := []string{
		"",
		"plain paragraph\n",
		"= Heading =\ncontent\n",
		"====== Deep ======\n",
		"* one\n** two\n* three\n",
		"# first\n# second\n",
		"; term\n: meaning\n",
		"''italic'' and '''bold''' and '''''both'''''\n",
		"{{template|anon|name=value|{{nested}}}}\n",
		"[[target|caption ''styled'']]\n",
		"<!-- comment -->text\n",
		"= A =\n\nparagraph\n\n== B ==\n* item\n",
		"'''''\n",
		"{{|}}\n",
		"[[]]\n",
		"\uFEFF= BOM =\r\ncrlf line\r\n",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
