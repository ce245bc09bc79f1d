package template

// BasicTypeEnum is the basic type of attributes valued from an
// EnumType. References of such attributes resolve against the enum
// registry; all others resolve against the DAType registry.
const BasicTypeEnum = "Enum"

// EnumValue is one literal of an EnumType.
type EnumValue struct {
	Name        string
	Description string
	Ord         string
}

// EnumType is an EnumType definition.
type EnumType struct {
	ID     string
	Values []EnumValue
}

// RefKind discriminates the target of an AttributeRef.
type RefKind int

const (
	// RefNone marks a primitive or unresolved attribute.
	RefNone RefKind = iota
	// RefAttribute marks an attribute of a composite DAType.
	RefAttribute
	// RefEnum marks an attribute valued from an EnumType.
	RefEnum
)

func (k RefKind) String() string {
	switch k {
	case RefAttribute:
		return "DAType"
	case RefEnum:
		return "EnumType"
	default:
		return "none"
	}
}

// AttributeRef is the resolved type of an attribute member: a DAType,
// an EnumType, or nothing. The zero value is RefNone.
type AttributeRef struct {
	kind      RefKind
	attribute *AttributeType
	enum      *EnumType
}

// AttributeTypeRef returns a reference to t.
func AttributeTypeRef(t *AttributeType) AttributeRef {
	return AttributeRef{kind: RefAttribute, attribute: t}
}

// EnumTypeRef returns a reference to t.
func EnumTypeRef(t *EnumType) AttributeRef {
	return AttributeRef{kind: RefEnum, enum: t}
}

func (r AttributeRef) Kind() RefKind { return r.kind }

// Attribute returns the referenced DAType, or nil unless Kind is
// RefAttribute.
func (r AttributeRef) Attribute() *AttributeType { return r.attribute }

// Enum returns the referenced EnumType, or nil unless Kind is RefEnum.
func (r AttributeRef) Enum() *EnumType { return r.enum }

// AttributeMember is a DA of a DOType or a BDA of a DAType.
type AttributeMember struct {
	Name                 string
	BasicType            string
	ValueKind            string
	FunctionalConstraint string
	// TypeID is the declared type reference; "" for primitives.
	TypeID string
	// Value is the configured initial value, if any.
	Value    string
	Resolved AttributeRef
}

// AttributeType is a DAType definition.
type AttributeType struct {
	ID                   string
	FunctionalConstraint string
	Members              []AttributeMember
}

// SubObjectMember is an SDO of a DOType.
type SubObjectMember struct {
	Name     string
	TypeID   string
	Resolved *ObjectType
}

// ObjectType is a DOType definition.
type ObjectType struct {
	ID         string
	CDC        string
	Attributes []AttributeMember
	SubObjects []SubObjectMember
}

// ObjectMember is a DO of an LNodeType.
type ObjectMember struct {
	Name     string
	TypeID   string
	Resolved *ObjectType
}

// NodeType is an LNodeType definition.
type NodeType struct {
	ID      string
	Prefix  string
	Class   string
	Inst    string
	Objects []ObjectMember
}
