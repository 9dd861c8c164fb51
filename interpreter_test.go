package gallivant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sullyy9/gallivant"
	"github.com/sullyy9/gallivant/request"
)

func TestInterpreterRunsStatementsInOrder(t *testing.T) {
	script := `
COMMENT "one"
WAIT 10
COMMENT "two"
`
	interp, diags := gallivant.New("script.gv", script)
	require.Empty(t, diags)
	require.NotNil(t, interp)

	req, err, ok := interp.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, request.GUIPrint{Message: "one"}, req)

	req, err, ok = interp.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.IsType(t, request.Wait{}, req)

	req, err, ok = interp.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, request.GUIPrint{Message: "two"}, req)

	_, _, ok = interp.Next()
	assert.False(t, ok)
}

func TestInterpreterNewReturnsDiagnosticsOnSyntaxError(t *testing.T) {
	interp, diags := gallivant.New("script.gv", `FROBNICATE 1`)
	assert.Nil(t, interp)
	assert.Len(t, diags, 1)
}

func TestInterpreterHPModePersistsAcrossStatements(t *testing.T) {
	interp, diags := gallivant.New("script.gv", "HPMODE\nSETTIMEFORMAT 5\n")
	require.Empty(t, diags)

	_, err, ok := interp.Next()
	require.NoError(t, err)
	require.True(t, ok)

	req, err, ok := interp.Next()
	require.NoError(t, err)
	require.True(t, ok)

	tx, isTx := req.(request.TCUTransact)
	require.True(t, isTx)
	assert.Equal(t, []byte("P051B007466"+"05"+"\r"), tx.Tx.Bytes())
}

func TestInterpreterRestartResetsCursorAndState(t *testing.T) {
	interp, diags := gallivant.New("script.gv", "HPMODE\nCOMMENT \"hi\"\n")
	require.Empty(t, diags)

	_, _, _ = interp.Next()
	_, _, _ = interp.Next()
	_, _, ok := interp.Next()
	require.False(t, ok)

	interp.Restart()

	req, err, ok := interp.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, request.None{}, req)
}
