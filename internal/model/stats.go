// Package model 定义 tiktokei 的核心统计模型。
// 这些结构会被分析器、扫描器、输出层和命令层共同使用。
package model

// FileStats 表示单个文件的分析结果。
//
// 注意：
// - Tokens 在分词失败时记为 0，永远不会是负数
// - Lines 在文件不是合法 UTF-8 时记为 0（静默降级，不代表空文件）
// - 创建之后不再修改，由所属的 LanguageStats 独占持有
type FileStats struct {
	Path   string `json:"path" yaml:"path"`
	Lines  int64  `json:"lines" yaml:"lines"`
	Tokens int64  `json:"tokens" yaml:"tokens"`
	Size   int64  `json:"size" yaml:"size"`
}

// LanguageStats 表示某个语言标签下的聚合结果。
// Files 的顺序即发现顺序，四个 Total 字段必须始终等于 Files 的逐字段求和。
type LanguageStats struct {
	Name        string      `json:"name" yaml:"name"`
	Files       []FileStats `json:"files" yaml:"files"`
	TotalFiles  int64       `json:"total_files" yaml:"total_files"`
	TotalLines  int64       `json:"total_lines" yaml:"total_lines"`
	TotalTokens int64       `json:"total_tokens" yaml:"total_tokens"`
	TotalSize   int64       `json:"total_size" yaml:"total_size"`
}

// AddFile 把一个文件的统计追加到当前语言，并一次性更新全部总计。
func (s *LanguageStats) AddFile(file FileStats) {
	s.Files = append(s.Files, file)
	s.TotalFiles++
	s.TotalLines += file.Lines
	s.TotalTokens += file.Tokens
	s.TotalSize += file.Size
}

// ProjectStats 是一次分析运行的根聚合结果。
// Languages 以语言标签为键，项目级总计必须始终等于所有语言的总计之和。
// 返回给输出层之后视为只读，不会跨运行保留任何状态。
type ProjectStats struct {
	Languages   map[string]*LanguageStats `json:"languages" yaml:"languages"`
	TotalFiles  int64                     `json:"total_files" yaml:"total_files"`
	TotalLines  int64                     `json:"total_lines" yaml:"total_lines"`
	TotalTokens int64                     `json:"total_tokens" yaml:"total_tokens"`
	TotalSize   int64                     `json:"total_size" yaml:"total_size"`
}

// NewProjectStats 创建空的项目统计。
func NewProjectStats() *ProjectStats {
	return &ProjectStats{
		Languages: make(map[string]*LanguageStats),
	}
}

// AddFileStats 把一个文件的统计按语言标签折叠进项目统计。
// 首次遇到某个标签时会自动创建对应的 LanguageStats。
func (p *ProjectStats) AddFileStats(language string, file FileStats) {
	bucket, ok := p.Languages[language]
	if !ok {
		bucket = &LanguageStats{Name: language}
		p.Languages[language] = bucket
	}

	bucket.AddFile(file)
	p.TotalFiles++
	p.TotalLines += file.Lines
	p.TotalTokens += file.Tokens
	p.TotalSize += file.Size
}
