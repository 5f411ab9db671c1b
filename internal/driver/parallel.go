package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"wikitext/internal/ast"
	"wikitext/internal/diag"
	"wikitext/internal/grammar"
	"wikitext/internal/source"
	"wikitext/internal/transform"
)

// FileResult содержит результат разбора одного файла
type FileResult struct {
	Path    string        // Относительный путь к файлу
	Tree    ast.Element   // Нормализованное дерево (nil при ошибке)
	Err     error         // *diag.ParseError, *diag.TransformationError или ошибка I/O
	Elapsed time.Duration // Полное время от чтения до нормализации
}

// BatchResult содержит результаты разбора директории в детерминированном
// порядке (пути отсортированы)
type BatchResult struct {
	Dir     string
	Results []FileResult
}

// ErrorCount возвращает число файлов, завершившихся ошибкой.
func (b *BatchResult) ErrorCount() int {
	n := 0
	for _, r := range b.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// ListFiles возвращает отсортированный список всех файлов с расширением ext
// в директории (рекурсивно)
func ListFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir разбирает все файлы с расширением ext в директории параллельно.
// Ошибки отдельных файлов не прерывают остальных: они оседают в FileResult.
// Отмена контекста прерывает весь пакет.
func ParseDir(ctx context.Context, dir, ext string, jobs int, sink ProgressSink) (*BatchResult, error) {
	files, err := ListFiles(dir, ext)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{Dir: dir, Results: make([]FileResult, len(files))}
	if len(files) == 0 {
		return batch, nil
	}

	for _, path := range files {
		emit(sink, Event{File: path, Stage: StageParse, Status: StatusQueued})
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты пишутся по уникальному индексу i, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			tree, err := parseFileStaged(path, sink)
			batch.Results[i] = FileResult{
				Path:    path,
				Tree:    tree,
				Err:     err,
				Elapsed: time.Since(started),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return batch, err
	}
	return batch, nil
}

// parseFileStaged прогоняет файл через обе стадии, сообщая о границах стадий
// в sink.
func parseFileStaged(path string, sink ProgressSink) (ast.Element, error) {
	emit(sink, Event{File: path, Stage: StageParse, Status: StatusWorking})
	started := time.Now()

	input, err := Load(path)
	if err != nil {
		emit(sink, Event{File: path, Stage: StageParse, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return nil, err
	}
	ix := source.NewIndex(input)
	doc, failure := grammar.Parse(input, ix)
	if failure != nil {
		perr := diag.NewParseError(failure, ix)
		emit(sink, Event{File: path, Stage: StageParse, Status: StatusError, Err: perr, Elapsed: time.Since(started)})
		return nil, perr
	}

	emit(sink, Event{File: path, Stage: StageTransform, Status: StatusWorking, Elapsed: time.Since(started)})
	tree, err := transform.Pipeline(doc, &transform.Settings{})
	if err != nil {
		emit(sink, Event{File: path, Stage: StageTransform, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return nil, err
	}

	emit(sink, Event{File: path, Stage: StageTransform, Status: StatusDone, Elapsed: time.Since(started)})
	return tree, nil
}
