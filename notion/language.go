package notion

// Language is a code block language name as Notion spells it.
type Language string

// LanguagePlainText is the fallback for fences with no language hint or
// a hint Notion does not support.
const LanguagePlainText Language = "plain text"

// languages is the closed set of code block languages the Notion API
// accepts.
var languages = map[Language]struct{}{
	"abap":          {},
	"arduino":       {},
	"bash":          {},
	"basic":         {},
	"c":             {},
	"clojure":       {},
	"coffeescript":  {},
	"c++":           {},
	"c#":            {},
	"css":           {},
	"dart":          {},
	"diff":          {},
	"docker":        {},
	"elixir":        {},
	"elm":           {},
	"erlang":        {},
	"flow":          {},
	"fortran":       {},
	"f#":            {},
	"gherkin":       {},
	"glsl":          {},
	"go":            {},
	"graphql":       {},
	"groovy":        {},
	"haskell":       {},
	"html":          {},
	"java":          {},
	"javascript":    {},
	"json":          {},
	"julia":         {},
	"kotlin":        {},
	"latex":         {},
	"less":          {},
	"lisp":          {},
	"livescript":    {},
	"lua":           {},
	"makefile":      {},
	"markdown":      {},
	"markup":        {},
	"matlab":        {},
	"mermaid":       {},
	"nix":           {},
	"objective-c":   {},
	"ocaml":         {},
	"pascal":        {},
	"perl":          {},
	"php":           {},
	"plain text":    {},
	"powershell":    {},
	"prolog":        {},
	"protobuf":      {},
	"python":        {},
	"r":             {},
	"reason":        {},
	"ruby":          {},
	"rust":          {},
	"sass":          {},
	"scala":         {},
	"scheme":        {},
	"scss":          {},
	"shell":         {},
	"sql":           {},
	"swift":         {},
	"typescript":    {},
	"vb.net":        {},
	"verilog":       {},
	"vhdl":          {},
	"visual basic":  {},
	"webassembly":   {},
	"xml":           {},
	"yaml":          {},
	"java/c/c++/c#": {},
}

// SupportedLanguage reports whether name is in Notion's language set.
func SupportedLanguage(name string) bool {
	_, ok := languages[Language(name)]
	return ok
}
