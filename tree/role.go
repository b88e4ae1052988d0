package tree

// Role names the relationship between a node and one of its child slots.
type Role uint8

const (
	RolePackage Role = iota
	RoleImports
	RoleTypes
	RoleAnnotations
	RoleTypeParams
	RoleExtends
	RoleImplements
	RoleMembers
	RoleReturnType
	RoleParams
	RoleThrows
	RoleBody
	RoleType
	RoleInitializer
	RoleDimensions
	RoleElements
	RoleCondition
	RoleThen
	RoleElse
	RoleExpression
	RoleTarget
	RoleIndex
	RoleLeft
	RoleRight
	RoleArgs
	RoleTypeArgs
	RoleInit
	RoleUpdate
	RoleStatements
	RoleResources
	RoleCatches
	RoleFinally
	RoleCases
	RoleAlternatives
	RoleBounds
	RoleVariable
	RoleIterable
	RoleMessage

	roleCount
)

var roleNames = [...]string{
	RolePackage:      "package",
	RoleImports:      "imports",
	RoleTypes:        "types",
	RoleAnnotations:  "annotations",
	RoleTypeParams:   "typeParams",
	RoleExtends:      "extends",
	RoleImplements:   "implements",
	RoleMembers:      "members",
	RoleReturnType:   "returnType",
	RoleParams:       "params",
	RoleThrows:       "throws",
	RoleBody:         "body",
	RoleType:         "type",
	RoleInitializer:  "initializer",
	RoleDimensions:   "dimensions",
	RoleElements:     "elements",
	RoleCondition:    "condition",
	RoleThen:         "then",
	RoleElse:         "else",
	RoleExpression:   "expression",
	RoleTarget:       "target",
	RoleIndex:        "index",
	RoleLeft:         "left",
	RoleRight:        "right",
	RoleArgs:         "args",
	RoleTypeArgs:     "typeArgs",
	RoleInit:         "init",
	RoleUpdate:       "update",
	RoleStatements:   "statements",
	RoleResources:    "resources",
	RoleCatches:      "catches",
	RoleFinally:      "finally",
	RoleCases:        "cases",
	RoleAlternatives: "alternatives",
	RoleBounds:       "bounds",
	RoleVariable:     "variable",
	RoleIterable:     "iterable",
	RoleMessage:      "message",
}

func (r Role) String() string {
	if int(r) >= len(roleNames) {
		return "unknown-role"
	}
	return roleNames[r]
}

// RoleByName maps a textual role name back to its Role.
func RoleByName(name string) (Role, bool) {
	r, ok := rolesByName[name]
	return r, ok
}

var rolesByName = func() map[string]Role {
	m := make(map[string]Role, len(roleNames))
	for r, name := range roleNames {
		m[name] = Role(r)
	}
	return m
}()
