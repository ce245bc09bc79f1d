package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/andaru/scl/sclerr"
	"github.com/andaru/scl/tree"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testTree = []tree.Node{
	{
		Label: "IED: Relay1",
		Kind:  tree.KindDevice,
		Children: []tree.Node{
			{
				Label: "LD: LD0",
				Kind:  tree.KindLogicalDevice,
				Children: []tree.Node{
					{Label: "LN: XCBR1 (XCBR_T)", Kind: tree.KindLogicalNode, Children: []tree.Node{
						{Label: "DO: Pos (DPC)", Kind: tree.KindDataObject, Truncated: true},
					}},
				},
			},
		},
	},
}

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: " JSON ", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "Cbor", want: FormatCBOR},
		{in: "html", wantErr: true},
		{in: "", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			f, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, f)
		})
	}
}

func TestTreeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatText).Tree(&buf, testTree))
	assert.Equal(t, `IED: Relay1
  LD: LD0
    LN: XCBR1 (XCBR_T)
      DO: Pos (DPC)
`, buf.String())

	buf.Reset()
	w := &Writer{Format: FormatText, IndentWidth: 1}
	require.NoError(t, w.Tree(&buf, testTree[0].Children))
	assert.Equal(t, "LD: LD0\n LN: XCBR1 (XCBR_T)\n  DO: Pos (DPC)\n", buf.String())
}

func TestTreeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatJSON).Tree(&buf, testTree))
	assert.Contains(t, buf.String(), `"kind": "IED"`)
	assert.Contains(t, buf.String(), `"truncated": true`)

	var back []tree.Node
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, testTree, back)

	buf.Reset()
	require.NoError(t, NewWriter(FormatJSON).Tree(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestTreeYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML).Tree(&buf, testTree))
	assert.Contains(t, buf.String(), "IED: Relay1")
	assert.Contains(t, buf.String(), "kind: IED\n")

	var back []tree.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, testTree, back)
}

type labelled struct {
	Label    string     `cbor:"label"`
	Children []labelled `cbor:"children"`
}

func TestTreeCBOR(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, NewWriter(FormatCBOR).Tree(&a, testTree))
	require.NoError(t, NewWriter(FormatCBOR).Tree(&b, testTree))
	assert.Equal(t, a.Bytes(), b.Bytes(), "canonical encoding")

	var back []labelled
	require.NoError(t, cbor.Unmarshal(a.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, "IED: Relay1", back[0].Label)
	assert.Equal(t, "DO: Pos (DPC)", back[0].Children[0].Children[0].Children[0].Label)
}

func TestDiagnostics(t *testing.T) {
	diags := []*sclerr.Error{
		sclerr.UnresolvedReference(sclerr.RegistryNode, "MissingId", sclerr.WithElement("LN")),
		sclerr.MissingTemplates(),
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatText).Diagnostics(&buf, diags))
	assert.Equal(t, "warning tag:unresolved-reference element:LN registry:LNodeType ref:MissingId\n"+
		"warning tag:missing-templates element:DataTypeTemplates\n", buf.String())

	buf.Reset()
	require.NoError(t, NewWriter(FormatYAML).Diagnostics(&buf, diags))
	var back []*sclerr.Error
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, diags, back)

	buf.Reset()
	require.NoError(t, NewWriter(FormatJSON).Diagnostics(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, (&Writer{Format: "xml"}).Tree(&buf, testTree))
}
