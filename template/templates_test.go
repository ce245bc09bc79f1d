package template

import (
	"testing"

	"github.com/andaru/scl/sclerr"
	"github.com/andaru/scl/xmlutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTemplates(t *testing.T, body string) *Templates {
	t.Helper()
	doc, err := xmlutil.Parse(`<SCL xmlns="http://www.iec.ch/61850/2003/SCL"><DataTypeTemplates>` + body + `</DataTypeTemplates></SCL>`)
	require.NoError(t, err)
	return Build(doc.First("DataTypeTemplates"))
}

func TestEnumTypes(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		id    string
		want  []EnumValue
	}{
		{
			name: "values in document order",
			input: `<EnumType id="Health">
				<EnumVal ord="1" desc="fine">Ok</EnumVal>
				<EnumVal ord="3" desc="bad">Alarm</EnumVal>
			</EnumType>`,
			id: "Health",
			want: []EnumValue{
				{Name: "Ok", Description: "fine", Ord: "1"},
				{Name: "Alarm", Description: "bad", Ord: "3"},
			},
		},
		{
			name:  "missing attributes read as empty",
			input: `<EnumType id="Beh"><EnumVal>on</EnumVal><EnumVal/></EnumType>`,
			id:    "Beh",
			want:  []EnumValue{{Name: "on"}, {}},
		},
		{
			name:  "missing id",
			input: `<EnumType><EnumVal ord="0">x</EnumVal></EnumType>`,
			id:    "",
			want:  []EnumValue{{Name: "x", Ord: "0"}},
		},
		{
			name:  "no values",
			input: `<EnumType id="Empty"/>`,
			id:    "Empty",
			want:  []EnumValue{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			tt := buildTemplates(t, tc.input)
			check.Equal(1, tt.Enums.Len())
			et, ok := tt.Enums.Get(tc.id)
			require.True(t, ok)
			check.Equal(tc.id, et.ID)
			check.Equal(tc.want, et.Values)
		})
	}
}

func TestAttributeTypes(t *testing.T) {
	check := assert.New(t)
	tt := buildTemplates(t, `
		<DAType id="Vector">
			<BDA name="mag" bType="Struct" type="AnalogueValue"/>
			<BDA name="ang" bType="Struct" type="AnalogueValue"/>
		</DAType>
		<DAType id="AnalogueValue" fc="MX">
			<BDA name="f" bType="FLOAT32" valKind="RO"><Val>1.5</Val></BDA>
			<BDA name="i" bType="INT32" val="2"/>
		</DAType>
		<DAType id="Self">
			<BDA name="next" bType="Struct" type="Self"/>
			<BDA name="health" bType="Enum" type="Health"/>
			<BDA name="lost" bType="Struct" type="Nowhere"/>
		</DAType>
		<EnumType id="Health"><EnumVal>Ok</EnumVal></EnumType>`)

	check.Equal(3, tt.Attributes.Len())

	vector, ok := tt.Attributes.Get("Vector")
	require.True(t, ok)
	analogue, _ := tt.Attributes.Get("AnalogueValue")
	check.Equal("MX", analogue.FunctionalConstraint)
	check.Equal([]string{"mag", "ang"}, []string{vector.Members[0].Name, vector.Members[1].Name})
	for _, m := range vector.Members {
		check.Equal(RefAttribute, m.Resolved.Kind(), "forward reference %s", m.Name)
		check.Same(analogue, m.Resolved.Attribute())
		check.Nil(m.Resolved.Enum())
	}

	check.Equal("1.5", analogue.Members[0].Value)
	check.Equal("RO", analogue.Members[0].ValueKind)
	check.Equal("2", analogue.Members[1].Value)
	check.Equal(RefNone, analogue.Members[0].Resolved.Kind(), "primitive")

	self, _ := tt.Attributes.Get("Self")
	check.Same(self, self.Members[0].Resolved.Attribute(), "self reference")
	health, _ := tt.Enums.Get("Health")
	check.Equal(RefEnum, self.Members[1].Resolved.Kind())
	check.Same(health, self.Members[1].Resolved.Enum())
	check.Equal(RefNone, self.Members[2].Resolved.Kind(), "unresolved degrades to a leaf")
	check.Equal("Nowhere", self.Members[2].TypeID)
}

func TestEnumResolutionIsScopedByBasicType(t *testing.T) {
	check := assert.New(t)
	// "Mode" names both a DAType and an EnumType.
	tt := buildTemplates(t, `
		<DOType id="X" cdc="ENC">
			<DA name="stVal" bType="Enum" type="Mode" fc="ST"/>
			<DA name="cfg" bType="Struct" type="Mode" fc="CF"/>
			<DA name="other" bType="Enum" type="OnlyStruct" fc="ST"/>
		</DOType>
		<DAType id="Mode"><BDA name="v" bType="INT8"/></DAType>
		<DAType id="OnlyStruct"><BDA name="v" bType="INT8"/></DAType>
		<EnumType id="Mode"><EnumVal>on</EnumVal><EnumVal>off</EnumVal></EnumType>`)

	x, ok := tt.Objects.Get("X")
	require.True(t, ok)
	enumMode, _ := tt.Enums.Get("Mode")
	structMode, _ := tt.Attributes.Get("Mode")

	check.Equal(RefEnum, x.Attributes[0].Resolved.Kind())
	check.Same(enumMode, x.Attributes[0].Resolved.Enum())
	check.Nil(x.Attributes[0].Resolved.Attribute())

	check.Equal(RefAttribute, x.Attributes[1].Resolved.Kind())
	check.Same(structMode, x.Attributes[1].Resolved.Attribute())

	check.Equal(RefNone, x.Attributes[2].Resolved.Kind(), "Enum never resolves to a DAType")
}

func TestObjectTypes(t *testing.T) {
	check := assert.New(t)
	tt := buildTemplates(t, `
		<DOType id="A" cdc="WYE">
			<SDO name="child" type="B"/>
			<DA name="q" bType="Quality" fc="MX"/>
		</DOType>
		<DOType id="B" cdc="CMV">
			<SDO name="back" type="A"/>
			<SDO name="gone" type="Missing"/>
			<SDO name="untyped"/>
		</DOType>`)

	a, _ := tt.Objects.Get("A")
	b, _ := tt.Objects.Get("B")
	require.NotNil(t, a)
	require.NotNil(t, b)
	check.Equal("WYE", a.CDC)
	check.Same(b, a.SubObjects[0].Resolved)
	check.Same(a, b.SubObjects[0].Resolved, "cycles are stored as references")
	check.Nil(b.SubObjects[1].Resolved)
	check.Nil(b.SubObjects[2].Resolved)
	check.Equal("Quality", a.Attributes[0].BasicType)
	check.Equal("MX", a.Attributes[0].FunctionalConstraint)
}

func TestNodeTypes(t *testing.T) {
	check := assert.New(t)
	tt := buildTemplates(t, `
		<LNodeType id="XCBR_T" lnClass="XCBR" prefix="Q" inst="1">
			<DO name="Pos" type="DPC"/>
			<DO name="Beh" type="Nope"/>
		</LNodeType>
		<DOType id="DPC" cdc="DPC"/>`)

	nt, ok := tt.Nodes.Get("XCBR_T")
	require.True(t, ok)
	check.Equal("XCBR", nt.Class)
	check.Equal("Q", nt.Prefix)
	check.Equal("1", nt.Inst)
	require.Len(t, nt.Objects, 2)
	dpc, _ := tt.Objects.Get("DPC")
	check.Same(dpc, nt.Objects[0].Resolved)
	check.Nil(nt.Objects[1].Resolved)
	check.Equal("Nope", nt.Objects[1].TypeID)
}

func TestDuplicateIDsFirstWins(t *testing.T) {
	check := assert.New(t)
	tt := buildTemplates(t, `
		<DOType id="D" cdc="first"/>
		<DOType id="D" cdc="second"/>`)
	check.Equal(2, tt.Objects.Len())
	d, _ := tt.Objects.Get("D")
	check.Equal("first", d.CDC)
	check.Equal("second", tt.Objects.All()[1].CDC)
}

func TestUnresolved(t *testing.T) {
	tt := buildTemplates(t, `
		<LNodeType id="LN" lnClass="GGIO">
			<DO name="Ind" type="NoDO"/>
			<DO name="untypedDO"/>
		</LNodeType>
		<DOType id="X" cdc="SPS">
			<SDO name="sub" type="NoSDO"/>
			<SDO name="untyped"/>
			<DA name="stVal" bType="Enum" type="NoEnum" fc="ST"/>
			<DA name="q" bType="Quality" fc="ST"/>
		</DOType>
		<DAType id="T"><BDA name="b" bType="Struct" type="NoDA"/></DAType>`)

	var got []string
	for _, e := range tt.Unresolved() {
		got = append(got, e.Error())
	}
	assert.Equal(t, []string{
		"warning tag:unresolved-reference element:BDA path:DAType[T]/BDA[b] registry:DAType ref:NoDA",
		"warning tag:unresolved-reference element:SDO path:DOType[X]/SDO[sub] registry:DOType ref:NoSDO",
		"warning tag:unresolved-reference element:DA path:DOType[X]/DA[stVal] registry:EnumType ref:NoEnum",
		"warning tag:unresolved-reference element:DO path:LNodeType[LN]/DO[Ind] registry:DOType ref:NoDO",
	}, got)
	for _, e := range tt.Unresolved() {
		assert.Equal(t, sclerr.SeverityWarning, e.Severity)
	}
}

func TestBuildWithoutTemplates(t *testing.T) {
	check := assert.New(t)
	tt := Build(nil)
	check.Zero(tt.Enums.Len())
	check.Zero(tt.Attributes.Len())
	check.Zero(tt.Objects.Len())
	check.Zero(tt.Nodes.Len())
	check.Empty(tt.Unresolved())
	_, ok := tt.Nodes.Get("anything")
	check.False(ok)
}

func TestNilRegistry(t *testing.T) {
	var r *Registry[EnumType]
	_, ok := r.Get("x")
	assert.False(t, ok)
	assert.Nil(t, r.All())
	assert.Zero(t, r.Len())
}
