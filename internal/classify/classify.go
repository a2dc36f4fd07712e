// Package classify 提供路径到语言标签的映射和忽略路径判定。
// 全部查表都是进程级只读常量，启动后不会再发生任何变更。
package classify

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// OtherLabel 是扩展名表没有命中时使用的兜底标签。
const OtherLabel = "Other"

// languageExtensions 把小写文件后缀映射到语言标签。
var languageExtensions = map[string]string{
	// 编程语言
	".py":    "Python",
	".js":    "JavaScript",
	".jsx":   "JavaScript",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".java":  "Java",
	".c":     "C",
	".cpp":   "C++",
	".cc":    "C++",
	".cxx":   "C++",
	".h":     "C Header",
	".hpp":   "C++ Header",
	".cs":    "C#",
	".php":   "PHP",
	".rb":    "Ruby",
	".go":    "Go",
	".rs":    "Rust",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",
	".r":     "R",
	".m":     "Objective-C",
	".pl":    "Perl",
	".sh":    "Shell",
	".bash":  "Shell",
	".zsh":   "Shell",
	".fish":  "Shell",
	".ps1":   "PowerShell",
	".lua":   "Lua",
	".dart":  "Dart",
	".elm":   "Elm",
	".clj":   "Clojure",
	".hs":    "Haskell",
	".ml":    "OCaml",
	".fs":    "F#",
	".jl":    "Julia",
	".nim":   "Nim",
	".zig":   "Zig",
	".v":     "V",
	".cr":    "Crystal",

	// Web 相关
	".html":   "HTML",
	".htm":    "HTML",
	".xml":    "XML",
	".css":    "CSS",
	".scss":   "SCSS",
	".sass":   "Sass",
	".less":   "Less",
	".vue":    "Vue",
	".svelte": "Svelte",

	// 数据与配置
	".json":    "JSON",
	".yaml":    "YAML",
	".yml":     "YAML",
	".toml":    "TOML",
	".ini":     "INI",
	".cfg":     "Config",
	".conf":    "Config",
	".sql":     "SQL",
	".graphql": "GraphQL",
	".gql":     "GraphQL",

	// 文档
	".md":       "Markdown",
	".markdown": "Markdown",
	".rst":      "reStructuredText",
	".txt":      "Text",
	".tex":      "LaTeX",
	".org":      "Org",

	// 构建工具
	".dockerfile": "Dockerfile",
	".makefile":   "Makefile",
	".cmake":      "CMake",
	".gradle":     "Gradle",
	".mvn":        "Maven",
}

// wellKnownFilenames 是没有后缀但应当被识别的固定文件名（小写形式）。
var wellKnownFilenames = map[string]struct{}{
	"dockerfile":     {},
	"makefile":       {},
	"cmakelists.txt": {},
}

// ignoreNames 是需要整体排除的路径组件名。
// 匹配规则是按组件精确相等，不做任何通配或子串匹配。
var ignoreNames = map[string]struct{}{
	// 版本控制
	".git": {}, ".svn": {}, ".hg": {}, ".bzr": {},
	// 依赖与构建产物
	"node_modules": {}, "__pycache__": {}, ".pytest_cache": {},
	"target": {}, "build": {}, "dist": {},
	// 编辑器与 IDE
	".vscode": {}, ".idea": {}, ".vs": {}, ".atom": {}, ".sublime-workspace": {},
	// 操作系统产物
	".DS_Store": {}, "Thumbs.db": {},
	// 其他
	".env": {}, ".cache": {}, ".tmp": {}, "tmp": {}, "temp": {},
}

// LanguageDescriptor 用于对外展示语言标签及其后缀清单。
type LanguageDescriptor struct {
	Name       string
	Extensions []string
}

// Classify 根据路径推断语言标签。
// 该函数是纯函数且对任意输入都有结果，永远不会失败。
func Classify(path string) string {
	base := filepath.Base(path)

	if _, ok := wellKnownFilenames[strings.ToLower(base)]; ok {
		return titleCase(base)
	}

	if label, ok := languageExtensions[pathSuffix(base)]; ok {
		return label
	}
	return OtherLabel
}

// ShouldIgnore 判断路径中是否存在任何一个被忽略的组件。
// 组件可以出现在路径的任意层级，不限于最后一段。
func ShouldIgnore(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if _, ok := ignoreNames[part]; ok {
			return true
		}
	}
	return false
}

// Languages 返回按标签排序的「标签 -> 后缀列表」清单。
func Languages() []LanguageDescriptor {
	byLabel := make(map[string][]string)
	for ext, label := range languageExtensions {
		byLabel[label] = append(byLabel[label], ext)
	}

	result := make([]LanguageDescriptor, 0, len(byLabel))
	for label, extensions := range byLabel {
		sort.Strings(extensions)
		result = append(result, LanguageDescriptor{
			Name:       label,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// WellKnownFilenames 返回无后缀也能识别的固定文件名（展示用写法）。
func WellKnownFilenames() []string {
	return []string{"CMakeLists.txt", "Dockerfile", "Makefile"}
}

// pathSuffix 提取文件名最后一个点号后缀并转为小写。
// 隐藏文件的前导点（如 .env）和结尾点都不算后缀。
func pathSuffix(base string) string {
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[idx:])
}

// titleCase 把名称转成每个单词首字母大写的形式。
// 单词边界以非字母字符划分，因此 "cmakelists.txt" 会变成 "Cmakelists.Txt"。
func titleCase(name string) string {
	var builder strings.Builder
	builder.Grow(len(name))

	previousIsLetter := false
	for _, current := range name {
		if unicode.IsLetter(current) {
			if previousIsLetter {
				builder.WriteRune(unicode.ToLower(current))
			} else {
				builder.WriteRune(unicode.ToUpper(current))
			}
			previousIsLetter = true
			continue
		}
		builder.WriteRune(current)
		previousIsLetter = false
	}

	return builder.String()
}
