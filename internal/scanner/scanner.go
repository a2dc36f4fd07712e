// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、任务分发、并发执行和结果聚合，不负责单文件分析细节。
package scanner

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tiktokei/internal/analyzer"
	"tiktokei/internal/classify"
	"tiktokei/internal/model"
	"tiktokei/internal/tokenizer"
)

// Service 是扫描服务对象。
type Service struct {
	analyzer *analyzer.Analyzer
	logger   *zap.Logger
	workers  int
}

// scanTask 表示一个待分析文件任务。
// index 记录目录遍历的发现顺序，聚合阶段按该顺序回放，保证结果与 worker 数无关。
type scanTask struct {
	index int
	path  string
}

// scanOutcome 表示 worker 的执行产物。
type scanOutcome struct {
	index int
	path  string
	stats model.FileStats
	ok    bool
}

// NewService 创建扫描服务。
func NewService(counter tokenizer.Counter, logger *zap.Logger, workers int) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		analyzer: analyzer.New(counter, logger),
		logger:   logger,
		workers:  workers,
	}
}

// AnalyzePath 扫描目录或单文件并返回按语言聚合的统计。
// 路径不存在时返回空统计而不报错；单个文件的失败同样不会让整体扫描失败。
func (s *Service) AnalyzePath(ctx context.Context, targetPath string) (*model.ProjectStats, error) {
	stats := model.NewProjectStats()

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return stats, errors.New("scan path is empty")
	}

	info, err := os.Stat(trimmedPath)
	if err != nil {
		s.logger.Error("path does not exist or is not accessible",
			zap.String("path", trimmedPath),
			zap.Error(err),
		)
		return stats, nil
	}

	if !info.IsDir() {
		fileStats, ok := s.analyzer.Analyze(trimmedPath)
		if ok {
			stats.AddFileStats(classify.Classify(trimmedPath), fileStats)
		}
		return stats, nil
	}

	return s.analyzeDirectory(ctx, trimmedPath, stats)
}

// analyzeDirectory 并发分析目录树下的全部文件。
func (s *Service) analyzeDirectory(ctx context.Context, root string, stats *model.ProjectStats) (*model.ProjectStats, error) {
	tasks := make(chan scanTask, s.workers*4)
	outcomes := make(chan scanOutcome, s.workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, outcomes)
		}()
	}

	go func() {
		defer close(tasks)
		walkErrChan <- s.enqueueFileTasks(ctx, root, tasks)
	}()

	go func() {
		workerGroup.Wait()
		close(outcomes)
	}()

	collected := make([]scanOutcome, 0)
	for outcome := range outcomes {
		if outcome.ok {
			collected = append(collected, outcome)
		}
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return stats, walkErr
	}

	sort.Slice(collected, func(i int, j int) bool {
		return collected[i].index < collected[j].index
	})

	for _, outcome := range collected {
		stats.AddFileStats(classify.Classify(outcome.path), outcome.stats)
	}

	return stats, nil
}

// enqueueFileTasks 遍历目录，过滤忽略项后把文件推入任务队列。
// 忽略匹配使用相对扫描根的路径；单个目录项的遍历错误只记日志，不终止扫描。
func (s *Service) enqueueFileTasks(ctx context.Context, root string, tasks chan<- scanTask) error {
	index := 0
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if walkErr != nil {
			s.logger.Warn("walk entry failed, skipping",
				zap.String("path", path),
				zap.Error(walkErr),
			)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}

		if entry.IsDir() {
			if path != root && classify.ShouldIgnore(relativePath) {
				return fs.SkipDir
			}
			return nil
		}

		if classify.ShouldIgnore(relativePath) {
			return nil
		}

		tasks <- scanTask{index: index, path: path}
		index++
		return nil
	})
}

// runWorker 执行真实的单文件分析。
func (s *Service) runWorker(tasks <-chan scanTask, outcomes chan<- scanOutcome) {
	for task := range tasks {
		fileStats, ok := s.analyzer.Analyze(task.path)
		outcomes <- scanOutcome{
			index: task.index,
			path:  task.path,
			stats: fileStats,
			ok:    ok,
		}
	}
}
