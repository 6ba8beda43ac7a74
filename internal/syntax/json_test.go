package syntax

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAST(t *testing.T, src string) map[string]interface{} {
	t.Helper()
	m := parseModule(t, src)

	var buf bytes.Buffer
	require.NoError(t, FprintJSON(&buf, m))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestFprintJSONModule(t *testing.T) {
	out := decodeAST(t, "var x = 5;")

	assert.Equal(t, "Module", out["type"])
	assert.Equal(t, map[string]interface{}{"start": float64(0), "end": float64(10)}, out["span"])

	stmts, ok := out["stmts"].([]interface{})
	require.True(t, ok)
	require.Len(t, stmts, 1)

	vs, ok := stmts[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VarStmt", vs["type"])
	assert.Equal(t, "x", vs["name"])

	lit, ok := vs["value"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BasicLit", lit["type"])
	assert.Equal(t, "integer literal", lit["kind"])
	assert.Equal(t, float64(5), lit["value"])
}

func TestFprintJSONExpressions(t *testing.T) {
	out := decodeAST(t, "a.b(c + 1)++;")

	stmts := out["stmts"].([]interface{})
	require.Len(t, stmts, 1)
	es := stmts[0].(map[string]interface{})
	assert.Equal(t, "ExprStmt", es["type"])

	post := es["expr"].(map[string]interface{})
	assert.Equal(t, "PostfixExpr", post["type"])
	assert.Equal(t, "`++`", post["op"])

	call := post["left"].(map[string]interface{})
	assert.Equal(t, "CallExpr", call["type"])
	require.Len(t, call["args"], 1)

	sel := call["fun"].(map[string]interface{})
	assert.Equal(t, "SelectorExpr", sel["type"])
	assert.Equal(t, "b", sel["sel"])
}

func TestFprintJSONFuncLit(t *testing.T) {
	out := decodeAST(t, "fun (x, y) { return true; };")

	es := out["stmts"].([]interface{})[0].(map[string]interface{})
	fn := es["expr"].(map[string]interface{})
	assert.Equal(t, "FuncLit", fn["type"])
	assert.Equal(t, []interface{}{"x", "y"}, fn["params"])

	body := fn["body"].(map[string]interface{})
	assert.Equal(t, "BlockStmt", body["type"])

	ret := body["stmts"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "ReturnStmt", ret["type"])
	lit := ret["result"].(map[string]interface{})
	assert.Equal(t, "bool literal", lit["kind"])
	assert.Equal(t, "true", lit["value"])
}
