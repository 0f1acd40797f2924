package consts

const (
	Slash     = "/"
	SlashByte = '/'
)

// Matcher kinds, as reported by ReverseBuildError and used as keys in
// declarative definitions.
const (
	KindRaw = "raw"
	KindStr = "str"
	KindNum = "num"
)

const (
	SuffixReverse = "reverse"
	StrReverse    = KindStr + " " + SuffixReverse
	NumReverse    = KindNum + " " + SuffixReverse
)

const (
	// TemplateInt is the type hint rendered for numeric segments, e.g. {id:int}
	TemplateInt   = "int"
	TemplateOpen  = "{"
	TemplateClose = "}"
)
