package tree

// RoleSpec describes one child slot a kind may carry.
//
// A sequence role holds an ordered list of children. Sequence roles marked
// Absentable distinguish "no list at all" from an empty list: a new-array in
// dimension-only form has no initializer list, which is not the same as an
// initializer list with zero elements.
type RoleSpec struct {
	Role       Role
	Seq        bool
	Required   bool
	Absentable bool
}

// Schema returns the ordered child-role schema for a kind. The order is the
// canonical traversal order used by comparison and by Walk.
func Schema(k Kind) []RoleSpec {
	return kindSchemas[k]
}

var kindSchemas = [kindCount][]RoleSpec{
	KindCompilationUnit: {
		{Role: RolePackage},
		{Role: RoleImports, Seq: true},
		{Role: RoleTypes, Seq: true},
	},
	KindPackage: {
		{Role: RoleAnnotations, Seq: true},
	},
	KindImport: nil,
	KindClass: {
		{Role: RoleAnnotations, Seq: true},
		{Role: RoleTypeParams, Seq: true},
		{Role: RoleExtends},
		{Role: RoleImplements, Seq: true},
		{Role: RoleMembers, Seq: true},
	},
	KindInterface: {
		{Role: RoleAnnotations, Seq: true},
		{Role: RoleTypeParams, Seq: true},
		{Role: RoleImplements, Seq: true},
		{Role: RoleMembers, Seq: true},
	},
	KindEnum: {
		{Role: RoleAnnotations, Seq: true},
		{Role: RoleImplements, Seq: true},
		{Role: RoleMembers, Seq: true},
	},
	KindMethod: {
		{Role: RoleAnnotations, Seq: true},
		{Role: RoleTypeParams, Seq: true},
		{Role: RoleReturnType},
		{Role: RoleParams, Seq: true},
		{Role: RoleThrows, Seq: true},
		{Role: RoleBody},
	},
	KindVariable: {
		{Role: RoleAnnotations, Seq: true},
		{Role: RoleType},
		{Role: RoleInitializer},
	},
	KindTypeParameter: {
		{Role: RoleAnnotations, Seq: true},
		{Role: RoleBounds, Seq: true},
	},
	KindAnnotation: {
		{Role: RoleArgs, Seq: true},
	},

	KindBlock: {
		{Role: RoleStatements, Seq: true},
	},
	KindIf: {
		{Role: RoleCondition, Required: true},
		{Role: RoleThen, Required: true},
		{Role: RoleElse},
	},
	KindFor: {
		{Role: RoleInit, Seq: true},
		{Role: RoleCondition},
		{Role: RoleUpdate, Seq: true},
		{Role: RoleBody, Required: true},
	},
	KindForEach: {
		{Role: RoleVariable, Required: true},
		{Role: RoleIterable, Required: true},
		{Role: RoleBody, Required: true},
	},
	KindWhile: {
		{Role: RoleCondition, Required: true},
		{Role: RoleBody, Required: true},
	},
	KindDoWhile: {
		{Role: RoleBody, Required: true},
		{Role: RoleCondition, Required: true},
	},
	KindSwitch: {
		{Role: RoleExpression, Required: true},
		{Role: RoleCases, Seq: true},
	},
	KindCase: {
		{Role: RoleExpression}, // absent for default
		{Role: RoleStatements, Seq: true},
	},
	KindBreak:    nil,
	KindContinue: nil,
	KindReturn: {
		{Role: RoleExpression},
	},
	KindThrow: {
		{Role: RoleExpression, Required: true},
	},
	KindTry: {
		{Role: RoleResources, Seq: true},
		{Role: RoleBody, Required: true},
		{Role: RoleCatches, Seq: true},
		{Role: RoleFinally},
	},
	KindCatch: {
		{Role: RoleVariable, Required: true},
		{Role: RoleBody, Required: true},
	},
	KindSynchronized: {
		{Role: RoleExpression, Required: true},
		{Role: RoleBody, Required: true},
	},
	KindLabeled: {
		{Role: RoleBody, Required: true},
	},
	KindExpressionStatement: {
		{Role: RoleExpression, Required: true},
	},
	KindEmptyStatement: nil,
	KindAssert: {
		{Role: RoleCondition, Required: true},
		{Role: RoleMessage},
	},

	KindLiteral:    nil,
	KindIdentifier: nil,
	KindMemberSelect: {
		{Role: RoleTarget, Required: true},
	},
	KindMethodInvocation: {
		{Role: RoleTypeArgs, Seq: true, Absentable: true},
		{Role: RoleTarget},
		{Role: RoleArgs, Seq: true},
	},
	KindNewClass: {
		{Role: RoleType, Required: true},
		{Role: RoleTypeArgs, Seq: true, Absentable: true},
		{Role: RoleArgs, Seq: true},
	},
	KindAnonymousClass: {
		{Role: RoleType, Required: true},
		{Role: RoleArgs, Seq: true},
		{Role: RoleMembers, Seq: true},
	},
	KindNewArray: {
		{Role: RoleType},
		{Role: RoleDimensions, Seq: true},
		{Role: RoleElements, Seq: true, Absentable: true},
	},
	KindLambda: {
		{Role: RoleParams, Seq: true},
		{Role: RoleBody, Required: true},
	},
	KindMethodReference: {
		{Role: RoleTarget, Required: true},
		{Role: RoleTypeArgs, Seq: true, Absentable: true},
	},
	KindBinary: {
		{Role: RoleLeft, Required: true},
		{Role: RoleRight, Required: true},
	},
	KindUnary: {
		{Role: RoleExpression, Required: true},
	},
	KindAssignment: {
		{Role: RoleLeft, Required: true},
		{Role: RoleRight, Required: true},
	},
	KindConditional: {
		{Role: RoleCondition, Required: true},
		{Role: RoleThen, Required: true},
		{Role: RoleElse, Required: true},
	},
	KindInstanceOf: {
		{Role: RoleExpression, Required: true},
		{Role: RoleType, Required: true},
	},
	KindTypeCast: {
		{Role: RoleType, Required: true},
		{Role: RoleExpression, Required: true},
	},
	KindParenthesized: {
		{Role: RoleExpression, Required: true},
	},
	KindArrayAccess: {
		{Role: RoleTarget, Required: true},
		{Role: RoleIndex, Required: true},
	},

	KindPrimitiveType: nil,
	KindArrayType: {
		{Role: RoleType, Required: true},
	},
	KindParameterizedType: {
		{Role: RoleType, Required: true},
		{Role: RoleTypeArgs, Seq: true},
	},
	KindUnionType: {
		{Role: RoleAlternatives, Seq: true},
	},
	KindWildcard: {
		{Role: RoleBounds, Seq: true},
	},
	KindAnnotatedType: {
		{Role: RoleAnnotations, Seq: true},
		{Role: RoleType, Required: true},
	},
}

func roleSpec(k Kind, r Role) (RoleSpec, bool) {
	for _, spec := range kindSchemas[k] {
		if spec.Role == r {
			return spec, true
		}
	}
	return RoleSpec{}, false
}
