package tree

// Kind is the closed tag over all syntax-node variants. Comparison logic
// switches over Kind, so adding a variant means revisiting every switch.
type Kind uint8

const (
	KindCompilationUnit Kind = iota
	KindPackage
	KindImport
	KindClass
	KindInterface
	KindEnum
	KindMethod
	KindVariable
	KindTypeParameter
	KindAnnotation

	KindBlock
	KindIf
	KindFor
	KindForEach
	KindWhile
	KindDoWhile
	KindSwitch
	KindCase
	KindBreak
	KindContinue
	KindReturn
	KindThrow
	KindTry
	KindCatch
	KindSynchronized
	KindLabeled
	KindExpressionStatement
	KindEmptyStatement
	KindAssert

	KindLiteral
	KindIdentifier
	KindMemberSelect
	KindMethodInvocation
	KindNewClass
	KindAnonymousClass
	KindNewArray
	KindLambda
	KindMethodReference
	KindBinary
	KindUnary
	KindAssignment
	KindConditional
	KindInstanceOf
	KindTypeCast
	KindParenthesized
	KindArrayAccess

	KindPrimitiveType
	KindArrayType
	KindParameterizedType
	KindUnionType
	KindWildcard
	KindAnnotatedType

	kindCount
)

var kindNames = [...]string{
	KindCompilationUnit: "compilation-unit",
	KindPackage:         "package",
	KindImport:          "import",
	KindClass:           "class",
	KindInterface:       "interface",
	KindEnum:            "enum",
	KindMethod:          "method",
	KindVariable:        "variable",
	KindTypeParameter:   "type-parameter",
	KindAnnotation:      "annotation",

	KindBlock:               "block",
	KindIf:                  "if",
	KindFor:                 "for",
	KindForEach:             "for-each",
	KindWhile:               "while",
	KindDoWhile:             "do-while",
	KindSwitch:              "switch",
	KindCase:                "case",
	KindBreak:               "break",
	KindContinue:            "continue",
	KindReturn:              "return",
	KindThrow:               "throw",
	KindTry:                 "try",
	KindCatch:               "catch",
	KindSynchronized:        "synchronized",
	KindLabeled:             "labeled",
	KindExpressionStatement: "expression-statement",
	KindEmptyStatement:      "empty-statement",
	KindAssert:              "assert",

	KindLiteral:          "literal",
	KindIdentifier:       "identifier",
	KindMemberSelect:     "member-select",
	KindMethodInvocation: "method-invocation",
	KindNewClass:         "new-class",
	KindAnonymousClass:   "anonymous-class",
	KindNewArray:         "new-array",
	KindLambda:           "lambda",
	KindMethodReference:  "method-reference",
	KindBinary:           "binary",
	KindUnary:            "unary",
	KindAssignment:       "assignment",
	KindConditional:      "conditional",
	KindInstanceOf:       "instance-of",
	KindTypeCast:         "type-cast",
	KindParenthesized:    "parenthesized",
	KindArrayAccess:      "array-access",

	KindPrimitiveType:     "primitive-type",
	KindArrayType:         "array-type",
	KindParameterizedType: "parameterized-type",
	KindUnionType:         "union-type",
	KindWildcard:          "wildcard",
	KindAnnotatedType:     "annotated-type",
}

func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown-kind"
	}
	return kindNames[k]
}

// Valid reports whether k names a known node kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// KindByName maps a textual kind name back to its Kind. Used by the tree
// codec; ok is false for names outside the taxonomy.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// IsTypeDeclaration reports whether k declares a named type whose members
// participate in member pairing.
func (k Kind) IsTypeDeclaration() bool {
	switch k {
	case KindClass, KindInterface, KindEnum:
		return true
	}
	return false
}
